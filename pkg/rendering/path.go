package rendering

import (
	"fmt"
	"math"
)

// circleKappa is the control point distance for approximating a quarter
// circle with one cubic bezier.
const circleKappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathDirection is the winding direction used when adding closed shapes.
// Directions are given in screen space (y grows downward).
type PathDirection int

const (
	// PathDirectionCW winds clockwise on screen.
	PathDirectionCW PathDirection = iota
	// PathDirectionCCW winds counter-clockwise on screen.
	PathDirectionCCW
)

// String returns a human-readable representation of the path direction.
func (d PathDirection) String() string {
	switch d {
	case PathDirectionCW:
		return "cw"
	case PathDirectionCCW:
		return "ccw"
	default:
		return fmt.Sprintf("PathDirection(%d)", int(d))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods, or
// add whole contours with AddRRect and AddCircle.
//
// An inverse path fills everything outside its contours instead of inside,
// bounded by the canvas. Drawing an inverse path with a shadow layer renders
// the shadow inward, which is how inset shadows are produced.
type Path struct {
	Commands []PathCommand
	inverse  bool
}

// NewPath creates a new empty path. Contours fill with the nonzero winding
// rule.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
// Closing an already closed or empty path is a no-op.
func (p *Path) Close() {
	if p.IsEmpty() || p.IsClosed() {
		return
	}
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsClosed reports whether the last subpath ends with a close command.
func (p *Path) IsClosed() bool {
	n := len(p.Commands)
	return n > 0 && p.Commands[n-1].Op == PathOpClose
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path and resets the inverse flag.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
	p.inverse = false
}

// IsInverseFillType reports whether the path fills its exterior.
func (p *Path) IsInverseFillType() bool {
	return p.inverse
}

// ToggleInverseFillType flips between interior and exterior filling.
func (p *Path) ToggleInverseFillType() {
	p.inverse = !p.inverse
}

// Bounds returns the bounding box of all points and control points in the
// path. Shapes added with AddRRect and AddCircle keep their control points
// on the shape's box, so for them the result is exact.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	return b
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{inverse: p.inverse}
	clone.Commands = make([]PathCommand, len(p.Commands))
	for i, cmd := range p.Commands {
		clone.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return clone
}

// AddRRect appends a closed rounded rectangle contour.
// Radii that do not fit the rectangle are scaled down uniformly.
func (p *Path) AddRRect(rrect RRect, dir PathDirection) {
	r := rrect.Rect
	if r.IsEmpty() {
		return
	}
	tl, tr, br, bl := fitRadii(rrect)

	start := Offset{X: r.Left + tl.X, Y: r.Top}
	segs := []segment{
		lineSeg(r.Right-tr.X, r.Top),
		cornerSeg(Offset{X: r.Right - tr.X, Y: r.Top}, Offset{X: r.Right, Y: r.Top + tr.Y}, 1, 0, 0, 1, tr),
		lineSeg(r.Right, r.Bottom-br.Y),
		cornerSeg(Offset{X: r.Right, Y: r.Bottom - br.Y}, Offset{X: r.Right - br.X, Y: r.Bottom}, 0, 1, -1, 0, br),
		lineSeg(r.Left+bl.X, r.Bottom),
		cornerSeg(Offset{X: r.Left + bl.X, Y: r.Bottom}, Offset{X: r.Left, Y: r.Bottom - bl.Y}, -1, 0, 0, -1, bl),
		lineSeg(r.Left, r.Top+tl.Y),
		cornerSeg(Offset{X: r.Left, Y: r.Top + tl.Y}, Offset{X: r.Left + tl.X, Y: r.Top}, 0, -1, 1, 0, tl),
	}
	p.addContour(start, segs, dir)
}

// AddCircle appends a closed circle contour made of four cubic arcs.
func (p *Path) AddCircle(center Offset, radius float64, dir PathDirection) {
	if radius <= 0 {
		return
	}
	cx, cy, r := center.X, center.Y, radius
	k := r * circleKappa
	start := Offset{X: cx + r, Y: cy}
	segs := []segment{
		cubicSeg(cx+r, cy+k, cx+k, cy+r, cx, cy+r),
		cubicSeg(cx-k, cy+r, cx-r, cy+k, cx-r, cy),
		cubicSeg(cx-r, cy-k, cx-k, cy-r, cx, cy-r),
		cubicSeg(cx+k, cy-r, cx+r, cy-k, cx+r, cy),
	}
	p.addContour(start, segs, dir)
}

// segment is one edge of a contour under construction.
type segment struct {
	cubic  bool
	c1, c2 Offset
	to     Offset
}

func lineSeg(x, y float64) segment {
	return segment{to: Offset{X: x, Y: y}}
}

func cubicSeg(x1, y1, x2, y2, x3, y3 float64) segment {
	return segment{cubic: true, c1: Offset{X: x1, Y: y1}, c2: Offset{X: x2, Y: y2}, to: Offset{X: x3, Y: y3}}
}

// cornerSeg builds a quarter ellipse from 'from' to 'to'. (dx1, dy1) is the
// direction of travel leaving 'from' and (dx2, dy2) the direction arriving
// at 'to'. A zero radius degenerates to a line.
func cornerSeg(from, to Offset, dx1, dy1, dx2, dy2 float64, radius Radius) segment {
	if radius.X <= 0 || radius.Y <= 0 {
		return segment{to: to}
	}
	kx, ky := radius.X*circleKappa, radius.Y*circleKappa
	return segment{
		cubic: true,
		c1:    Offset{X: from.X + dx1*kx, Y: from.Y + dy1*ky},
		c2:    Offset{X: to.X - dx2*kx, Y: to.Y - dy2*ky},
		to:    to,
	}
}

func (p *Path) addContour(start Offset, segs []segment, dir PathDirection) {
	if dir == PathDirectionCCW {
		start, segs = reverseContour(start, segs)
	}
	p.MoveTo(start.X, start.Y)
	for _, s := range segs {
		if s.cubic {
			p.CubicTo(s.c1.X, s.c1.Y, s.c2.X, s.c2.Y, s.to.X, s.to.Y)
		} else {
			p.LineTo(s.to.X, s.to.Y)
		}
	}
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

func reverseContour(start Offset, segs []segment) (Offset, []segment) {
	out := make([]segment, 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		from := start
		if i > 0 {
			from = segs[i-1].to
		}
		s := segs[i]
		out = append(out, segment{cubic: s.cubic, c1: s.c2, c2: s.c1, to: from})
	}
	return segs[len(segs)-1].to, out
}

// fitRadii clamps negative radii to zero and scales all radii down when
// adjacent corners would overlap.
func fitRadii(rrect RRect) (tl, tr, br, bl Radius) {
	clamp := func(r Radius) Radius {
		return Radius{X: math.Max(r.X, 0), Y: math.Max(r.Y, 0)}
	}
	tl, tr, br, bl = clamp(rrect.TopLeft), clamp(rrect.TopRight), clamp(rrect.BottomRight), clamp(rrect.BottomLeft)
	w, h := rrect.Rect.Width(), rrect.Rect.Height()
	scale := 1.0
	fit := func(length, a, b float64) {
		if sum := a + b; sum > length && sum > 0 {
			scale = math.Min(scale, length/sum)
		}
	}
	fit(w, tl.X, tr.X)
	fit(w, bl.X, br.X)
	fit(h, tl.Y, bl.Y)
	fit(h, tr.Y, br.Y)
	if scale < 1 {
		for _, r := range []*Radius{&tl, &tr, &br, &bl} {
			r.X *= scale
			r.Y *= scale
		}
	}
	return tl, tr, br, bl
}
