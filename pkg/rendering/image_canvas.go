package rendering

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// ImageCanvas implements Canvas by rasterizing into an in-memory RGBA image.
//
// Path coverage is computed with golang.org/x/image/vector, which
// accumulates signed area; for the single simple contours drawn here both
// fill rules produce the same coverage. Shadows are rendered by blurring
// the offset coverage mask with a separable gaussian.
//
// ImageCanvas is not safe for concurrent use.
type ImageCanvas struct {
	dst    *image.RGBA
	raster *vector.Rasterizer
	state  imageCanvasState
	stack  []imageCanvasState
}

type imageCanvasState struct {
	tx, ty float64
	clip   *image.Alpha // nil means unclipped
}

// NewImageCanvas allocates a transparent canvas of the given pixel size.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageCanvas{
		dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. Pixels are premultiplied RGBA.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.tx += dx
	c.state.ty += dy
}

func (c *ImageCanvas) ClipPath(path *Path) {
	mask := c.coverage(path, 0, 0)
	if prev := c.state.clip; prev != nil {
		for i := range mask.Pix {
			mask.Pix[i] = mul8(mask.Pix[i], prev.Pix[i])
		}
	}
	c.state.clip = mask
}

func (c *ImageCanvas) Clear(color Color) {
	r, g, b, a := color.RGBAF()
	pr, pg, pb, pa := r*a*maxByte, g*a*maxByte, b*a*maxByte, a*maxByte
	for i := 0; i < len(c.dst.Pix); i += 4 {
		m := 1.0
		if c.state.clip != nil {
			m = float64(c.state.clip.Pix[i/4]) / maxByte
			if m == 0 {
				continue
			}
		}
		d := c.dst.Pix[i : i+4 : i+4]
		d[0] = lerp8(d[0], pr, m)
		d[1] = lerp8(d[1], pg, m)
		d[2] = lerp8(d[2], pb, m)
		d[3] = lerp8(d[3], pa, m)
	}
}

func (c *ImageCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || paint.Alpha <= 0 {
		return
	}
	if s := paint.Shadow; s != nil && s.Color.Alpha() > 0 {
		mask := c.coverage(path, s.Offset.X, s.Offset.Y)
		blurAlpha(mask, s.Sigma())
		shadowColor := s.Color
		c.composite(mask, func(int, int) Color { return shadowColor }, paint.Alpha)
	}
	mask := c.coverage(path, 0, 0)
	if paint.HasGradient() {
		gradient, tx, ty := paint.Gradient, c.state.tx, c.state.ty
		c.composite(mask, func(x, y int) Color {
			return gradient.ColorAt(Offset{X: float64(x) + 0.5 - tx, Y: float64(y) + 0.5 - ty})
		}, paint.Alpha)
		return
	}
	fill := paint.Color
	c.composite(mask, func(int, int) Color { return fill }, paint.Alpha)
}

func (c *ImageCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// coverage rasterizes path, translated by the current origin plus (dx, dy),
// into an alpha mask the size of the canvas.
func (c *ImageCanvas) coverage(path *Path, dx, dy float64) *image.Alpha {
	b := c.dst.Bounds()
	mask := image.NewAlpha(b)
	if path != nil && !path.IsEmpty() && !b.Empty() {
		ox, oy := c.state.tx+dx, c.state.ty+dy
		pt := func(i int, args []float64) (float32, float32) {
			return float32(args[i] + ox), float32(args[i+1] + oy)
		}
		z := c.raster
		z.Reset(b.Dx(), b.Dy())
		for _, cmd := range path.Commands {
			a := cmd.Args
			switch cmd.Op {
			case PathOpMoveTo:
				z.MoveTo(pt(0, a))
			case PathOpLineTo:
				z.LineTo(pt(0, a))
			case PathOpQuadTo:
				x1, y1 := pt(0, a)
				x2, y2 := pt(2, a)
				z.QuadTo(x1, y1, x2, y2)
			case PathOpCubicTo:
				x1, y1 := pt(0, a)
				x2, y2 := pt(2, a)
				x3, y3 := pt(4, a)
				z.CubeTo(x1, y1, x2, y2, x3, y3)
			case PathOpClose:
				z.ClosePath()
			}
		}
		z.Draw(mask, b, image.Opaque, image.Point{})
	}
	if path != nil && path.IsInverseFillType() {
		for i, v := range mask.Pix {
			mask.Pix[i] = 255 - v
		}
	}
	return mask
}

// composite blends src over the destination through mask and the clip.
func (c *ImageCanvas) composite(mask *image.Alpha, src func(x, y int) Color, alpha float64) {
	b := c.dst.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < w; x++ {
			m := mask.Pix[y*mask.Stride+x]
			if c.state.clip != nil {
				m = mul8(m, c.state.clip.Pix[y*c.state.clip.Stride+x])
			}
			if m == 0 {
				continue
			}
			r, g, bl, a := src(x, y).RGBAF()
			a *= float64(m) / maxByte * alpha
			if a <= 0 {
				continue
			}
			i := c.dst.PixOffset(x, y)
			d := c.dst.Pix[i : i+4 : i+4]
			inv := 1 - a
			d[0] = clamp8(r*a*maxByte + float64(d[0])*inv)
			d[1] = clamp8(g*a*maxByte + float64(d[1])*inv)
			d[2] = clamp8(bl*a*maxByte + float64(d[2])*inv)
			d[3] = clamp8(a*maxByte + float64(d[3])*inv)
		}
	}
}

// blurAlpha applies a separable gaussian blur to mask in place.
// Samples beyond the canvas repeat the nearest edge pixel.
func blurAlpha(mask *image.Alpha, sigma float64) {
	if sigma <= 0 {
		return
	}
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	radius := int(math.Ceil(sigma * 3))
	kernel := gaussianKernel(sigma, radius)

	src := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src[y*w+x] = float64(mask.Pix[y*mask.Stride+x])
		}
	}
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var sum float64
			for k, weight := range kernel {
				sum += row[clampInt(x+k-radius, 0, w-1)] * weight
			}
			tmp[y*w+x] = sum
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum float64
			for k, weight := range kernel {
				sum += tmp[clampInt(y+k-radius, 0, h-1)*w+x] * weight
			}
			mask.Pix[y*mask.Stride+x] = clamp8(sum)
		}
	}
}

func gaussianKernel(sigma float64, radius int) []float64 {
	kernel := make([]float64, 2*radius+1)
	var total float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		total += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= total
	}
	return kernel
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func lerp8(from uint8, to, t float64) uint8 {
	return clamp8(float64(from) + (to-float64(from))*t)
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= maxByte {
		return 255
	}
	return uint8(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
