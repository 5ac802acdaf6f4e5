package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings that are not #RRGGBB or #RGB
var ErrInvalidColor = errors.New("render: invalid color")

var presetColors = []string{
	"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
	"#FFFF00", "#FF00FF", "#00FFFF", "#FFA500", "#800080",
	"#FFC0CB", "#A52A2A", "#808080", "#000080", "#008000",
	"#6366F1", "#8B5CF6", "#EC4899", "#EF4444", "#F59E0B",
	"#10B981", "#3B82F6", "#6B7280", "#111827", "#F3F4F6",
}

// Palette returns the preset colors offered by the color picker
func Palette() []string {
	out := make([]string, len(presetColors))
	copy(out, presetColors)
	return out
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque color
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// NormalizeHex returns s in canonical "#RRGGBB" upper-case form
func NormalizeHex(s string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return strings.ToUpper(c.Hex()), nil
}
