package scene

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

const colorFormats = `"#RGB", "#RRGGBB", "#RRGGBBAA" or "0xAARRGGBB"`

// ParseColor parses a hex color. CSS-style "#RGB", "#RRGGBB" and
// "#RRGGBBAA" are accepted, as is a packed "0xAARRGGBB" value. Colors
// without alpha are opaque.
func ParseColor(s string) (rendering.Color, error) {
	s = strings.TrimSpace(s)
	invalid := &errors.ParseError{Field: "color", Value: s, Want: colorFormats}

	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		if len(rest) != 8 {
			return 0, invalid
		}
		v, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return 0, invalid
		}
		return rendering.Color(v), nil
	}

	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, invalid
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return 0, invalid
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, invalid
	}
	r, g, b := c.RGB255()
	return rendering.RGBA(r, g, b, alpha), nil
}

// FormatColor renders c as "#RRGGBBAA".
func FormatColor(c rendering.Color) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Red(), c.Green(), c.Blue(), c.Alpha())
}
