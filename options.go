package manim

// Option configures a Mobject or VMobject during creation.
// Stroke and fill options are ignored by plain Mobjects.
//
// Example:
//
//	// Default white mobject
//	m := manim.NewMobject()
//
//	// Half transparent red path with a thick stroke
//	v := manim.NewVMobject(manim.WithColor(manim.Red), manim.WithOpacity(0.5),
//	    manim.WithStrokeWidth(8))
type Option func(*options)

// options holds optional configuration for mobject creation.
type options struct {
	color        Color
	opacity      float64
	shading      [3]float64
	fixedInFrame bool
	depthTest    bool
	zIndex       int

	strokeColor   *Color
	strokeOpacity float64
	strokeWidth   float64
	fillColor     *Color
	fillOpacity   float64
}

// DefaultStrokeWidth is the stroke width of a new VMobject.
const DefaultStrokeWidth = 4.0

// defaultOptions returns the default mobject options.
func defaultOptions() options {
	return options{
		color:         DefaultColor,
		opacity:       1.0,
		strokeOpacity: 1.0,
		strokeWidth:   DefaultStrokeWidth,
		fillOpacity:   0.0,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColor sets the base color. Stroke and fill default to it.
func WithColor(c Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithOpacity sets the base opacity written to every point's alpha.
func WithOpacity(opacity float64) Option {
	return func(o *options) {
		o.opacity = opacity
	}
}

// WithShading sets the reflectiveness, gloss and shadow parameters
// passed through to renderers.
func WithShading(reflectiveness, gloss, shadow float64) Option {
	return func(o *options) {
		o.shading = [3]float64{reflectiveness, gloss, shadow}
	}
}

// WithFixedInFrame marks the mobject as unaffected by camera motion.
func WithFixedInFrame(fixed bool) Option {
	return func(o *options) {
		o.fixedInFrame = fixed
	}
}

// WithDepthTest enables depth testing for renderers.
func WithDepthTest(enabled bool) Option {
	return func(o *options) {
		o.depthTest = enabled
	}
}

// WithZIndex sets the draw-order index.
func WithZIndex(z int) Option {
	return func(o *options) {
		o.zIndex = z
	}
}

// WithStrokeColor sets the stroke color of a VMobject.
func WithStrokeColor(c Color) Option {
	return func(o *options) {
		o.strokeColor = &c
	}
}

// WithStrokeOpacity sets the stroke opacity of a VMobject.
func WithStrokeOpacity(opacity float64) Option {
	return func(o *options) {
		o.strokeOpacity = opacity
	}
}

// WithStrokeWidth sets the stroke width of a VMobject.
func WithStrokeWidth(width float64) Option {
	return func(o *options) {
		o.strokeWidth = width
	}
}

// WithFillColor sets the fill color of a VMobject.
func WithFillColor(c Color) Option {
	return func(o *options) {
		o.fillColor = &c
	}
}

// WithFillOpacity sets the fill opacity of a VMobject.
// New VMobjects are unfilled.
func WithFillOpacity(opacity float64) Option {
	return func(o *options) {
		o.fillOpacity = opacity
	}
}
