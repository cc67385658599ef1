package manim

import (
	"fmt"
	"slices"
)

// Node is anything that can live in the scene graph. Every node is backed
// by a *Mobject, which holds the points, style and graph links; VMobject
// and Group embed it.
type Node interface {
	Base() *Mobject
}

// Updater is called once per tick with the node it was registered on and
// the elapsed time in seconds.
type Updater func(n Node, dt float64)

// Mobject is a node of the scene graph: a buffer of 3D points with
// per-point colors, a base style and links to children and parents.
//
// Children are ordered and a node may have several parents, but a node can
// never reach itself by descent. Transform and color operations apply
// eagerly to the whole family.
type Mobject struct {
	// self is the outermost value embedding this Mobject; family lists
	// report it so callers can recover the concrete type.
	self Node

	color        Color
	opacity      float64
	shading      [3]float64
	fixedInFrame bool
	depthTest    bool
	zIndex       int

	buf PointBuffer

	submobjects []Node
	parents     []*Mobject

	// family is nil when stale.
	family []Node

	box      Box
	boxValid bool

	updaters []Updater
}

// NewMobject creates an empty mobject with the given style.
func NewMobject(opts ...Option) *Mobject {
	m := &Mobject{}
	m.init(m, buildOptions(opts))
	return m
}

// NewGroup creates an empty mobject holding children.
func NewGroup(children ...Node) (*Mobject, error) {
	g := NewMobject()
	if err := g.Add(children...); err != nil {
		return nil, err
	}
	return g, nil
}

func (m *Mobject) init(self Node, o options) {
	m.self = self
	m.color = o.color
	m.opacity = o.opacity
	m.shading = o.shading
	m.fixedInFrame = o.fixedInFrame
	m.depthTest = o.depthTest
	m.zIndex = o.zIndex
}

// Base returns m.
func (m *Mobject) Base() *Mobject {
	return m
}

// node returns the value callers should see for m in family listings.
func (m *Mobject) node() Node {
	if m.self == nil {
		return m
	}
	return m.self
}

// Dim returns the dimension of the point space.
func (m *Mobject) Dim() int {
	return 3
}

// -------------------------------------------------------------------
// Graph structure
// -------------------------------------------------------------------

// Add appends children in order. It fails with ErrSelfContainment when a
// child is m itself and with ErrCyclicFamily when m is already a
// descendant of a child. All children are checked before any is linked,
// so a failed call leaves the graph unchanged. Adding an existing child
// again is a no-op.
func (m *Mobject) Add(children ...Node) error {
	for i, c := range children {
		cb := baseOf(c)
		if cb == nil {
			continue
		}
		if cb == m {
			return fmt.Errorf("%w (child %d)", ErrSelfContainment, i)
		}
		if cb.hasDescendant(m) {
			return fmt.Errorf("%w (child %d)", ErrCyclicFamily, i)
		}
	}

	for _, c := range children {
		cb := baseOf(c)
		if cb == nil {
			continue
		}
		if !slices.ContainsFunc(m.submobjects, func(n Node) bool { return n.Base() == cb }) {
			m.submobjects = append(m.submobjects, c)
		}
		if !slices.Contains(cb.parents, m) {
			cb.parents = append(cb.parents, m)
		}
	}
	m.noteChangedFamily()
	return nil
}

// Remove unlinks children from m. Nodes that are not children are ignored.
func (m *Mobject) Remove(children ...Node) {
	for _, c := range children {
		cb := baseOf(c)
		if cb == nil {
			continue
		}
		m.submobjects = slices.DeleteFunc(m.submobjects, func(n Node) bool { return n.Base() == cb })
		cb.parents = slices.DeleteFunc(cb.parents, func(p *Mobject) bool { return p == m })
	}
	m.noteChangedFamily()
}

// Submobjects returns the direct children in insertion order.
func (m *Mobject) Submobjects() []Node {
	return slices.Clone(m.submobjects)
}

// Parents returns the mobjects that hold m as a direct child.
func (m *Mobject) Parents() []*Mobject {
	return slices.Clone(m.parents)
}

// Family returns m followed by all of its descendants, depth-first with
// parents before children. A descendant reachable along several paths is
// listed once, at its first position.
func (m *Mobject) Family() []Node {
	return slices.Clone(m.familyNodes())
}

func (m *Mobject) familyNodes() []Node {
	if m.family != nil {
		return m.family
	}
	fam := []Node{m.node()}
	seen := map[*Mobject]struct{}{m: {}}
	for _, c := range m.submobjects {
		for _, n := range c.Base().familyNodes() {
			b := n.Base()
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			fam = append(fam, n)
		}
	}
	m.family = fam
	return fam
}

// hasDescendant reports whether target is m or reachable from m.
func (m *Mobject) hasDescendant(target *Mobject) bool {
	return slices.ContainsFunc(m.familyNodes(), func(n Node) bool { return n.Base() == target })
}

// noteChangedFamily drops cached family and bounds on m and every ancestor.
func (m *Mobject) noteChangedFamily() {
	invalidateUp([]*Mobject{m}, true)
}

// noteChangedPoints drops cached bounds on m and every ancestor.
func (m *Mobject) noteChangedPoints() {
	invalidateUp([]*Mobject{m}, false)
}

// invalidateUp clears the caches of starts and all their ancestors,
// visiting each node once however many paths lead to it.
func invalidateUp(starts []*Mobject, family bool) {
	seen := make(map[*Mobject]struct{}, len(starts))
	stack := slices.Clone(starts)
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		if family {
			m.family = nil
		}
		m.boxValid = false
		stack = append(stack, m.parents...)
	}
}

// baseOf returns n's Mobject, or nil for a nil interface or a typed nil.
func baseOf(n Node) *Mobject {
	if n == nil {
		return nil
	}
	return n.Base()
}

// -------------------------------------------------------------------
// Points
// -------------------------------------------------------------------

// NumPoints returns the number of points held by m itself.
func (m *Mobject) NumPoints() int {
	return m.buf.Len()
}

// Points returns a copy of m's own points.
func (m *Mobject) Points() []Point {
	return m.buf.Points()
}

// RGBAs returns a copy of m's per-point colors.
func (m *Mobject) RGBAs() []RGBA {
	return m.buf.RGBAs()
}

// PointAt returns the i-th point. It panics if i is out of range.
func (m *Mobject) PointAt(i int) Point {
	return m.buf.At(i)
}

// SetPoints replaces m's points. New points take m's current color.
func (m *Mobject) SetPoints(points []Point) *Mobject {
	old := m.buf.Len()
	m.buf.Set(points)
	m.buf.fillFrom(old, m.rgba())
	m.noteChangedPoints()
	return m
}

// AppendPoints adds points at the end of m's buffer.
func (m *Mobject) AppendPoints(points ...Point) *Mobject {
	old := m.buf.Len()
	m.buf.Append(points...)
	m.buf.fillFrom(old, m.rgba())
	m.noteChangedPoints()
	return m
}

// ResizePoints sets the number of points; growth repeats the last point.
func (m *Mobject) ResizePoints(n int) *Mobject {
	old := m.buf.Len()
	m.buf.Resize(n)
	m.buf.fillFrom(old, m.rgba())
	m.noteChangedPoints()
	return m
}

// ClearPoints removes all of m's own points.
func (m *Mobject) ClearPoints() *Mobject {
	return m.ResizePoints(0)
}

func (m *Mobject) rgba() RGBA {
	return rgbaOf(m.color, m.opacity)
}

// -------------------------------------------------------------------
// Transforms
// -------------------------------------------------------------------

// ApplyPointsFunction replaces every point p of every family member with
// fn(p).
func (m *Mobject) ApplyPointsFunction(fn func(Point) Point) *Mobject {
	fam := m.familyNodes()
	bases := make([]*Mobject, len(fam))
	for i, n := range fam {
		bases[i] = n.Base()
		bases[i].buf.apply(fn)
	}
	invalidateUp(bases, false)
	return m
}

// ApplyPointsFunctionAbout is ApplyPointsFunction with fn evaluated
// relative to about: points are translated so about is the origin,
// transformed, and translated back.
func (m *Mobject) ApplyPointsFunctionAbout(fn func(Point) Point, about Point) *Mobject {
	return m.ApplyPointsFunction(func(p Point) Point {
		return fn(p.Sub(about)).Add(about)
	})
}

// Shift translates the family by v.
func (m *Mobject) Shift(v Point) *Mobject {
	return m.ApplyPointsFunction(func(p Point) Point { return p.Add(v) })
}

// MoveTo shifts the family so its bounding box center lands on p.
func (m *Mobject) MoveTo(p Point) *Mobject {
	return m.Shift(p.Sub(m.Center()))
}

// Scale scales the family by factor about its bounding box center.
func (m *Mobject) Scale(factor float64) *Mobject {
	return m.ScaleAbout(factor, m.Center())
}

// ScaleAbout scales the family by factor about the given point.
func (m *Mobject) ScaleAbout(factor float64, about Point) *Mobject {
	return m.ApplyPointsFunctionAbout(func(p Point) Point { return p.Mul(factor) }, about)
}

// Stretch scales one axis (0=X, 1=Y, 2=Z) of the family by factor about
// the bounding box center. Other axes are ignored.
func (m *Mobject) Stretch(factor float64, dim int) *Mobject {
	if dim < 0 || dim > 2 {
		return m
	}
	return m.ApplyPointsFunctionAbout(func(p Point) Point {
		p[dim] *= factor
		return p
	}, m.Center())
}

// Rotate rotates the family by angle radians about axis through its
// bounding box center.
func (m *Mobject) Rotate(angle float64, axis Point) *Mobject {
	return m.RotateAbout(angle, axis, m.Center())
}

// RotateAbout rotates the family by angle radians about axis through the
// given point. A zero-length axis leaves the points unchanged.
func (m *Mobject) RotateAbout(angle float64, axis, about Point) *Mobject {
	if axis.Len() == 0 {
		return m
	}
	rot := RotationMatrix(angle, axis)
	return m.ApplyPointsFunctionAbout(func(p Point) Point {
		return rot.Mul4x1(p.Vec4(1)).Vec3()
	}, about)
}

// -------------------------------------------------------------------
// Color and style
// -------------------------------------------------------------------

// SetColor sets the color and opacity of every family member and
// rewrites all of their per-point colors. VMobject members also take c as
// stroke and fill color.
func (m *Mobject) SetColor(c Color, opacity float64) *Mobject {
	rgba := rgbaOf(c, opacity)
	for _, n := range m.familyNodes() {
		b := n.Base()
		b.color = c
		b.opacity = opacity
		b.buf.Fill(rgba)
		if v, ok := n.(*VMobject); ok {
			v.strokeColor = c
			v.fillColor = c
		}
	}
	return m
}

// SetOpacity sets the opacity of every family member, keeping each
// member's own color.
func (m *Mobject) SetOpacity(opacity float64) *Mobject {
	for _, n := range m.familyNodes() {
		b := n.Base()
		b.opacity = opacity
		b.buf.Fill(b.rgba())
	}
	return m
}

// Color returns the base color.
func (m *Mobject) Color() Color {
	return m.color
}

// Opacity returns the base opacity.
func (m *Mobject) Opacity() float64 {
	return m.opacity
}

// Shading returns the reflectiveness, gloss and shadow parameters.
func (m *Mobject) Shading() [3]float64 {
	return m.shading
}

// SetShading sets the shading parameters of every family member.
func (m *Mobject) SetShading(reflectiveness, gloss, shadow float64) *Mobject {
	for _, n := range m.familyNodes() {
		n.Base().shading = [3]float64{reflectiveness, gloss, shadow}
	}
	return m
}

// IsFixedInFrame reports whether m ignores camera motion.
func (m *Mobject) IsFixedInFrame() bool {
	return m.fixedInFrame
}

// FixInFrame sets the fixed-in-frame flag on every family member.
func (m *Mobject) FixInFrame(fixed bool) *Mobject {
	for _, n := range m.familyNodes() {
		n.Base().fixedInFrame = fixed
	}
	return m
}

// DepthTest reports whether renderers should depth test m.
func (m *Mobject) DepthTest() bool {
	return m.depthTest
}

// ZIndex returns the draw-order index.
func (m *Mobject) ZIndex() int {
	return m.zIndex
}

// SetZIndex sets the draw-order index of m only.
func (m *Mobject) SetZIndex(z int) *Mobject {
	m.zIndex = z
	return m
}

// -------------------------------------------------------------------
// Bounds
// -------------------------------------------------------------------

// BoundingBox returns the axis-aligned box around every point in the
// family. A family without points has the zero box.
func (m *Mobject) BoundingBox() Box {
	if !m.boxValid {
		box := emptyBox()
		for _, n := range m.familyNodes() {
			for _, p := range n.Base().buf.points {
				box = box.extend(p)
			}
		}
		if box.IsEmpty() {
			box = Box{}
		}
		m.box = box
		m.boxValid = true
	}
	return m.box
}

// Center returns the center of the bounding box.
func (m *Mobject) Center() Point {
	return m.BoundingBox().Center()
}

// Width returns the bounding box extent along X.
func (m *Mobject) Width() float64 {
	return m.BoundingBox().Width()
}

// Height returns the bounding box extent along Y.
func (m *Mobject) Height() float64 {
	return m.BoundingBox().Height()
}

// Depth returns the bounding box extent along Z.
func (m *Mobject) Depth() float64 {
	return m.BoundingBox().Depth()
}

// -------------------------------------------------------------------
// Updaters
// -------------------------------------------------------------------

// AddUpdater registers fn to run on every Update of m.
func (m *Mobject) AddUpdater(fn Updater) *Mobject {
	if fn != nil {
		m.updaters = append(m.updaters, fn)
	}
	return m
}

// ClearUpdaters removes every updater registered on m.
func (m *Mobject) ClearUpdaters() *Mobject {
	m.updaters = nil
	return m
}

// HasUpdaters reports whether m itself has registered updaters.
func (m *Mobject) HasUpdaters() bool {
	return len(m.updaters) > 0
}

// Update runs the updaters of every family member in registration order,
// parents before children. The family is captured before the first call,
// so structural edits made by updaters take effect on the next Update.
func (m *Mobject) Update(dt float64) *Mobject {
	for _, n := range m.Family() {
		b := n.Base()
		for _, fn := range slices.Clone(b.updaters) {
			fn(n, dt)
		}
	}
	return m
}
