package rendering

import "fmt"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.Red()) / maxByte,
		float64(c.Green()) / maxByte,
		float64(c.Blue()) / maxByte,
		float64(c.Alpha()) / maxByte
}

// String formats the color as 0xAARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
