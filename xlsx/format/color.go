package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is either RGB value in 0x000000-0xFFFFFF range or Automatic.
// Automatic lies outside of anything RGB could produce.
type Color uint64

const (
	Automatic Color = 1 << 32

	Black   Color = 0x000000
	Blue    Color = 0x0000FF
	Brown   Color = 0x800000
	Cyan    Color = 0x00FFFF
	Gray    Color = 0x808080
	Green   Color = 0x008000
	Lime    Color = 0x00FF00
	Magenta Color = 0xFF00FF
	Navy    Color = 0x000080
	Orange  Color = 0xFF6600
	Pink    Color = 0xFF00FF
	Purple  Color = 0x800080
	Red     Color = 0xFF0000
	Silver  Color = 0xC0C0C0
	White   Color = 0xFFFFFF
	Yellow  Color = 0xFFFF00
)

var namedColors = map[string]Color{
	"automatic": Automatic,
	"black":     Black,
	"blue":      Blue,
	"brown":     Brown,
	"cyan":      Cyan,
	"gray":      Gray,
	"green":     Green,
	"lime":      Lime,
	"magenta":   Magenta,
	"navy":      Navy,
	"orange":    Orange,
	"pink":      Pink,
	"purple":    Purple,
	"red":       Red,
	"silver":    Silver,
	"white":     White,
	"yellow":    Yellow,
}

// RGB returns custom color. Values above 0xFFFFFF are not valid and will be
// rejected by format setters.
func RGB(v uint32) Color {
	return Color(v)
}

// IsValid reports whether color is Automatic or fits into 24 bits.
func (c Color) IsValid() bool {
	return c == Automatic || c <= 0xFFFFFF
}

// IsAutomatic reports whether color was never set.
func (c Color) IsAutomatic() bool {
	return c == Automatic
}

// Hex returns six uppercase hex digits, Automatic is "FFFFFFFF".
func (c Color) Hex() string {
	if c == Automatic {
		return "FFFFFFFF"
	}
	return fmt.Sprintf("%06X", uint64(c))
}

// ARGB returns value for "rgb" attributes, always opaque.
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

func (c Color) String() string {
	if c == Automatic {
		return "automatic"
	}
	return "#" + c.Hex()
}

// ParseColor accepts "#RRGGBB", "RRGGBB" and color names (case insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Automatic, fmt.Errorf("unable to parse color '%s'", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Automatic, fmt.Errorf("unable to parse color '%s': %w", s, err)
	}
	return Color(v), nil
}

// UnmarshalText allows colors in YAML descriptions.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
