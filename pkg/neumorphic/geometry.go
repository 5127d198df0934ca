package neumorphic

import (
	"math"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Geometry holds the three contours of a panel. All three trace the same
// closed clockwise outline; only the shadow paths may be inverse filled.
type Geometry struct {
	Base   *rendering.Path
	Bright *rendering.Path
	Dim    *rendering.Path
}

// BuildGeometry returns the contours for a panel of the given shape and size.
//
// Rectangles use cornerRadius on every corner, reduced by the path builder
// when it exceeds half the shorter side. Circles use a radius of
// min(width, height)/2 centered in the bounds. When state is StatePressed the
// bright and dim paths are inverse filled.
func BuildGeometry(shape Shape, state State, width, height, cornerRadius float64) Geometry {
	g := Geometry{
		Base:   contour(shape, width, height, cornerRadius),
		Bright: contour(shape, width, height, cornerRadius),
		Dim:    contour(shape, width, height, cornerRadius),
	}
	if state == StatePressed {
		g.Bright.ToggleInverseFillType()
		g.Dim.ToggleInverseFillType()
	}
	return g
}

func contour(shape Shape, width, height, cornerRadius float64) *rendering.Path {
	path := rendering.NewPath()
	switch shape {
	case ShapeCircle:
		center := rendering.Offset{X: width / 2, Y: height / 2}
		path.AddCircle(center, math.Min(width, height)/2, rendering.PathDirectionCW)
	default:
		rect := rendering.RectFromLTWH(0, 0, width, height)
		radius := rendering.CircularRadius(math.Max(0, cornerRadius))
		path.AddRRect(rendering.RRectFromRectAndRadius(rect, radius), rendering.PathDirectionCW)
	}
	return path
}
