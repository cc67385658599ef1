package manim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointBufferResize(t *testing.T) {
	var b PointBuffer
	b.Resize(2)
	assert.Equal(t, []Point{{}, {}}, b.Points())
	assert.Equal(t, []RGBA{{}, {}}, b.RGBAs())

	b.Set([]Point{Pt(1, 0, 0), Pt(2, 0, 0)})
	b.Fill(RGBA{1, 0, 0, 1})
	b.Resize(4)
	assert.Equal(t, Pt(2, 0, 0), b.At(3))
	assert.Equal(t, RGBA{1, 0, 0, 1}, b.RGBAs()[3])

	b.Resize(-1)
	assert.Zero(t, b.Len())
	assert.Empty(t, b.RGBAs())
}

func TestPointBufferShrinkDoesNotAlias(t *testing.T) {
	var b PointBuffer
	b.Set([]Point{Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)})
	b.Resize(1)
	b.Append(Pt(9, 0, 0))
	assert.Equal(t, []Point{Pt(1, 0, 0), Pt(9, 0, 0)}, b.Points())
}

func TestPointBufferAppendAndFillFrom(t *testing.T) {
	var b PointBuffer
	b.Append(Pt(1, 0, 0), Pt(2, 0, 0))
	b.fillFrom(1, RGBA{0, 1, 0, 1})
	assert.Equal(t, []RGBA{{}, {0, 1, 0, 1}}, b.RGBAs())
	assert.Equal(t, 2, b.Len())
}
