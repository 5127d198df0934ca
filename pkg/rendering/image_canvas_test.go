package rendering

import "testing"

func pixel(c *ImageCanvas, x, y int) (r, g, b, a uint8) {
	i := c.Image().PixOffset(x, y)
	p := c.Image().Pix[i : i+4]
	return p[0], p[1], p[2], p[3]
}

func rectPath(left, top, width, height float64) *Path {
	p := NewPath()
	p.AddRRect(RRectFromRectAndRadius(RectFromLTWH(left, top, width, height), Radius{}), PathDirectionCW)
	return p
}

func TestImageCanvas_FillsPath(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.DrawPath(rectPath(5, 5, 10, 10), SolidPaint(ColorRed))

	if r, g, b, a := pixel(c, 10, 10); r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("inside pixel = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
	if _, _, _, a := pixel(c, 1, 1); a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
}

func TestImageCanvas_InversePathFillsExterior(t *testing.T) {
	c := NewImageCanvas(20, 20)
	p := rectPath(5, 5, 10, 10)
	p.ToggleInverseFillType()
	c.DrawPath(p, SolidPaint(ColorBlue))

	if _, _, _, a := pixel(c, 10, 10); a != 0 {
		t.Errorf("interior alpha = %d, want 0", a)
	}
	if _, _, b, a := pixel(c, 1, 1); b != 255 || a != 255 {
		t.Errorf("exterior pixel blue=%d alpha=%d, want opaque blue", b, a)
	}
}

func TestImageCanvas_ClipPathRestricts(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.Save()
	c.ClipPath(rectPath(0, 0, 10, 20))
	c.Clear(ColorGreen)
	c.Restore()

	if _, g, _, _ := pixel(c, 5, 5); g != 255 {
		t.Errorf("inside clip green = %d, want 255", g)
	}
	if _, _, _, a := pixel(c, 15, 5); a != 0 {
		t.Errorf("outside clip alpha = %d, want 0", a)
	}

	// Clip is gone after Restore.
	c.Clear(ColorGreen)
	if _, g, _, _ := pixel(c, 15, 5); g != 255 {
		t.Errorf("after restore green = %d, want 255", g)
	}
}

func TestImageCanvas_TranslateMovesDrawing(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.Translate(10, 10)
	c.DrawPath(rectPath(0, 0, 5, 5), SolidPaint(ColorRed))
	if _, _, _, a := pixel(c, 2, 2); a != 0 {
		t.Errorf("untranslated area alpha = %d, want 0", a)
	}
	if r, _, _, _ := pixel(c, 12, 12); r != 255 {
		t.Errorf("translated area red = %d, want 255", r)
	}
}

func TestImageCanvas_ShadowDrawsOutsideShape(t *testing.T) {
	c := NewImageCanvas(40, 40)
	paint := SolidPaint(ColorWhite)
	paint.Shadow = NewShadowLayer(4, 6, 6, ColorBlack)
	c.DrawPath(rectPath(10, 10, 10, 10), paint)

	// Below-right of the shape only the shadow reaches.
	r, _, _, a := pixel(c, 24, 24)
	if a == 0 {
		t.Fatal("expected shadow coverage below-right of the shape")
	}
	if r != 0 {
		t.Errorf("shadow pixel red = %d, want 0 (black shadow)", r)
	}
	// Above-left there is no shadow.
	if _, _, _, a := pixel(c, 5, 5); a != 0 {
		t.Errorf("above-left alpha = %d, want 0", a)
	}
	// Shape itself is drawn over the shadow.
	if r, _, _, _ := pixel(c, 15, 15); r != 255 {
		t.Errorf("shape pixel red = %d, want 255", r)
	}
}

func TestImageCanvas_NegativeBlurIsHardShadow(t *testing.T) {
	s := ShadowLayer{BlurRadius: -3}
	if s.Sigma() != 0 {
		t.Errorf("Sigma() = %v, want 0 for negative radius", s.Sigma())
	}
	c := NewImageCanvas(20, 20)
	paint := SolidPaint(ColorTransparent)
	paint.Shadow = &s
	paint.Shadow.Color = ColorBlack
	c.DrawPath(rectPath(5, 5, 5, 5), paint)
	if _, _, _, a := pixel(c, 7, 7); a != 255 {
		t.Errorf("hard shadow alpha = %d, want 255", a)
	}
}

func TestImageCanvas_GradientFill(t *testing.T) {
	c := NewImageCanvas(100, 10)
	paint := DefaultPaint()
	paint.Gradient = NewLinearGradient(Offset{}, Offset{X: 100}, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	})
	c.DrawPath(rectPath(0, 0, 100, 10), paint)

	left, _, _, _ := pixel(c, 0, 5)
	right, _, _, _ := pixel(c, 99, 5)
	if left >= right {
		t.Errorf("expected gradient to brighten left to right, got %d then %d", left, right)
	}
}
