package neumorphic

import (
	"testing"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

func testInput(state State, level int) PaintInput {
	base := rendering.RGB(224, 229, 236)
	return PaintInput{
		State:       state,
		Level:       level,
		BaseColor:   base,
		BrightColor: Bright(base),
		DimColor:    Dim(base),
		Width:       100,
		Height:      50,
		Offset:      10,
		BaseRadius:  20,
	}
}

func TestDerivePaints_BaseFill(t *testing.T) {
	in := testInput(StateFlat, 1)
	tests := []struct {
		state    State
		gradient []rendering.Color
	}{
		{StateFlat, nil},
		{StatePressed, nil},
		{StateConcave, []rendering.Color{in.DimColor, in.BrightColor}},
		{StateConvex, []rendering.Color{in.BrightColor, in.DimColor}},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			paints := DerivePaints(testInput(tt.state, 1))
			if tt.gradient == nil {
				if paints.Base.HasGradient() {
					t.Fatal("expected a solid base paint")
				}
				if paints.Base.Color != in.BaseColor {
					t.Errorf("base color = %s, want %s", paints.Base.Color, in.BaseColor)
				}
				return
			}
			g := paints.Base.Gradient
			if !paints.Base.HasGradient() || g.Type != rendering.GradientTypeLinear {
				t.Fatalf("expected a linear gradient, got %+v", g)
			}
			if g.Linear.Start != (rendering.Offset{}) || g.Linear.End != (rendering.Offset{X: 100, Y: 50}) {
				t.Errorf("gradient span = %+v-%+v, want (0,0)-(100,50)", g.Linear.Start, g.Linear.End)
			}
			stops := g.Stops()
			if len(stops) != 2 || stops[0].Color != tt.gradient[0] || stops[1].Color != tt.gradient[1] {
				t.Errorf("stops = %+v, want %v", stops, tt.gradient)
			}
			if paints.Base.Shadow != nil {
				t.Error("base paint should not cast a shadow")
			}
		})
	}
}

func TestDerivePaints_Shadows(t *testing.T) {
	for _, state := range States {
		in := testInput(state, 2)
		paints := DerivePaints(in)
		for name, paint := range map[string]rendering.Paint{"bright": paints.Bright, "dim": paints.Dim} {
			if paint.HasGradient() || paint.Color != in.BaseColor {
				t.Errorf("%s/%s paint should be solid base color", state, name)
			}
			if paint.Shadow == nil {
				t.Fatalf("%s/%s paint has no shadow", state, name)
			}
			if paint.Shadow.BlurRadius != paints.BlurRadius {
				t.Errorf("%s/%s blur = %v, want %v", state, name, paint.Shadow.BlurRadius, paints.BlurRadius)
			}
		}
		if got := paints.Bright.Shadow; got.Color != in.BrightColor || got.Offset != (rendering.Offset{X: -10, Y: -10}) {
			t.Errorf("%s bright shadow = %+v", state, got)
		}
		if got := paints.Dim.Shadow; got.Color != in.DimColor || got.Offset != (rendering.Offset{X: 10, Y: 10}) {
			t.Errorf("%s dim shadow = %+v", state, got)
		}
	}
}

func TestShadowBlurRadius(t *testing.T) {
	tests := []struct {
		level int
		state State
		want  float64
	}{
		{1, StateFlat, 22},
		{3, StateConvex, 26},
		{0, StateConcave, 20},
		{-1, StatePressed, 22},
		{1, StatePressed, 18},
		{11, StatePressed, -2},
	}
	for _, tt := range tests {
		if got := ShadowBlurRadius(20, tt.level, tt.state); got != tt.want {
			t.Errorf("ShadowBlurRadius(20, %d, %s) = %v, want %v", tt.level, tt.state, got, tt.want)
		}
	}
}

func TestShadowBlurRadius_Monotonic(t *testing.T) {
	for _, state := range States {
		prev := ShadowBlurRadius(20, -5, state)
		for level := -4; level <= 5; level++ {
			cur := ShadowBlurRadius(20, level, state)
			if state == StatePressed && cur >= prev {
				t.Errorf("pressed blur not decreasing at level %d: %v >= %v", level, cur, prev)
			}
			if state != StatePressed && cur <= prev {
				t.Errorf("%s blur not increasing at level %d: %v <= %v", state, level, cur, prev)
			}
			prev = cur
		}
	}
}
