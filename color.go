package manim

import (
	"image/color"
	"math"
	"regexp"
	"strings"

	"github.com/gogpu/manim/internal/cache"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a color written as "#RGB", "#RRGGBB" or a CSS color name.
type Color string

// Common colors.
const (
	White  Color = "#FFFFFF"
	Black  Color = "#000000"
	Gray   Color = "#888888"
	Red    Color = "#FF0000"
	Green  Color = "#00FF00"
	Blue   Color = "#0000FF"
	Yellow Color = "#FFFF00"
	Orange Color = "#FF862F"
	Teal   Color = "#5CD0B3"
	Purple Color = "#9A72AC"

	DefaultColor = White
)

// maxGradientLength caps ColorGradient output.
const maxGradientLength = 10000

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{3}|[A-Fa-f0-9]{6})$`)

// parsedColors memoizes well-formed colors; malformed ones are not stored
// so every use keeps logging.
var parsedColors = cache.New[Color, colorful.Color](512)

// ParseColor converts c to normalized RGB. Malformed input never fails:
// it yields black and logs a warning.
func ParseColor(c Color) colorful.Color {
	if rgb, ok := parsedColors.Get(c); ok {
		return rgb
	}
	rgb, ok := parseColor(string(c))
	if !ok {
		Logger().Warn("manim: invalid color, using black", "color", string(c))
		return colorful.Color{}
	}
	parsedColors.Set(c, rgb)
	return rgb
}

func parseColor(s string) (colorful.Color, bool) {
	if hexColorPattern.MatchString(s) {
		if rgb, err := colorful.Hex(s); err == nil {
			return rgb, true
		}
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return fromImageColor(named), true
	}
	return colorful.Color{}, false
}

// ColorToHex formats rgb as an upper-case "#RRGGBB" color.
// Components outside [0, 1] are clamped.
func ColorToHex(rgb colorful.Color) Color {
	return Color(strings.ToUpper(rgb.Clamped().Hex()))
}

// ColorGradient returns length colors evenly blended through colors.
// A non-positive length yields nil; lengths above 10000 are truncated.
// With no input colors the result is all black.
func ColorGradient(colors []Color, length int) []Color {
	if length <= 0 {
		return nil
	}
	if length > maxGradientLength {
		Logger().Warn("manim: color gradient truncated", "length", length, "max", maxGradientLength)
		length = maxGradientLength
	}

	out := make([]Color, length)
	switch {
	case len(colors) == 0:
		for i := range out {
			out[i] = Black
		}
		return out
	case len(colors) == 1 || length == 1:
		for i := range out {
			out[i] = colors[0]
		}
		return out
	}

	rgbs := make([]colorful.Color, len(colors))
	for i, c := range colors {
		rgbs[i] = ParseColor(c)
	}
	last := float64(len(colors) - 1)
	for i := range out {
		v := last * float64(i) / float64(length-1)
		idx := int(math.Floor(v))
		if idx >= len(colors)-1 {
			out[i] = ColorToHex(rgbs[len(rgbs)-1])
			continue
		}
		out[i] = ColorToHex(rgbs[idx].BlendRgb(rgbs[idx+1], v-float64(idx)))
	}
	return out
}

// rgbaOf returns the per-point record for c at the given opacity.
func rgbaOf(c Color, opacity float64) RGBA {
	rgb := ParseColor(c)
	return RGBA{rgb.R, rgb.G, rgb.B, opacity}
}

func fromImageColor(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
