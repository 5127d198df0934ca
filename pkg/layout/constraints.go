package layout

import (
	"math"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Constraints bound the size a render box may choose during layout.
// MaxWidth and MaxHeight may be math.Inf(1) for unbounded axes.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that allow exactly the given size.
func Tight(size rendering.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given size.
func Loose(size rendering.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain returns the size nearest to size that satisfies the constraints.
func (c Constraints) Constrain(size rendering.Size) rendering.Size {
	return rendering.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosen removes the minimum size.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate shrinks the constraints by the given insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h, v := insets.Horizontal(), insets.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
}

// EdgeInsets describes empty space on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns equal insets on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns horizontal and vertical insets.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the total horizontal inset.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
