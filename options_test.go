package manim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	m := NewMobject()
	assert.Equal(t, DefaultColor, m.Color())
	assert.Equal(t, 1.0, m.Opacity())
	assert.False(t, m.IsFixedInFrame())
	assert.False(t, m.DepthTest())
	assert.Zero(t, m.ZIndex())

	v := NewVMobject()
	assert.Equal(t, DefaultColor, v.StrokeColor())
	assert.Equal(t, DefaultColor, v.FillColor())
	assert.Equal(t, 1.0, v.StrokeOpacity())
	assert.Equal(t, DefaultStrokeWidth, v.StrokeWidth())
	assert.Equal(t, 0.0, v.FillOpacity())
}

func TestMobjectOptions(t *testing.T) {
	m := NewMobject(
		WithColor(Red),
		WithOpacity(0.25),
		WithShading(0.1, 0.2, 0.3),
		WithFixedInFrame(true),
		WithDepthTest(true),
		WithZIndex(3),
	)
	assert.Equal(t, Red, m.Color())
	assert.Equal(t, 0.25, m.Opacity())
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, m.Shading())
	assert.True(t, m.IsFixedInFrame())
	assert.True(t, m.DepthTest())
	assert.Equal(t, 3, m.ZIndex())

	m.SetPoints([]Point{Origin})
	assert.Equal(t, RGBA{1, 0, 0, 0.25}, m.RGBAs()[0])
}

func TestVMobjectOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantStroke Color
		wantFill   Color
	}{
		{"color sets both", []Option{WithColor(Blue)}, Blue, Blue},
		{"stroke overrides color", []Option{WithColor(Blue), WithStrokeColor(Yellow)}, Yellow, Blue},
		{"fill overrides color", []Option{WithFillColor(Green), WithColor(Blue)}, Blue, Green},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVMobject(tt.opts...)
			assert.Equal(t, tt.wantStroke, v.StrokeColor())
			assert.Equal(t, tt.wantFill, v.FillColor())
		})
	}

	v := NewVMobject(WithStrokeOpacity(0.5), WithStrokeWidth(2), WithFillOpacity(0.7))
	assert.Equal(t, 0.5, v.StrokeOpacity())
	assert.Equal(t, 2.0, v.StrokeWidth())
	assert.Equal(t, 0.7, v.FillOpacity())
}

func TestStrokeOptionsIgnoredByMobject(t *testing.T) {
	m := NewMobject(WithStrokeColor(Red), WithFillOpacity(1))
	assert.Equal(t, DefaultColor, m.Color())
	assert.Equal(t, 1.0, m.Opacity())
}
