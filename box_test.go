package manim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxExtend(t *testing.T) {
	b := emptyBox()
	assert.True(t, b.IsEmpty())

	b = b.extend(Pt(1, -2, 3)).extend(Pt(-1, 2, 0))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Box{Min: Pt(-1, -2, 0), Max: Pt(1, 2, 3)}, b)
	assert.Equal(t, 2.0, b.Width())
	assert.Equal(t, 4.0, b.Height())
	assert.Equal(t, 3.0, b.Depth())
	assert.Equal(t, Pt(0, 0, 1.5), b.Center())
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: Pt(0, 0, 0), Max: Pt(1, 1, 1)}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(0.5, 0.5, 0.5), true},
		{"corner", Pt(1, 1, 1), true},
		{"outside z", Pt(0.5, 0.5, 2), false},
		{"outside x", Pt(-0.1, 0.5, 0.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.p))
		})
	}
}
