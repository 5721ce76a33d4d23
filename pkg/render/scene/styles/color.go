package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// DefaultColor fills skills that declare no color.
const DefaultColor = "#6366f1"

// lightColors always get dark label text regardless of luminance.
var lightColors = map[string]bool{
	"#f7df1e": true,
	"#f59e0b": true,
}

// ParseHex decodes #rgb or #rrggbb into 0..255 components.
func ParseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Luminance returns the relative luminance of a hex color in 0..1, or
// -1 when the color cannot be parsed.
func Luminance(color string) float64 {
	r, g, b, ok := ParseHex(color)
	if !ok {
		return -1
	}
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// FillColor returns color, or DefaultColor when it is empty.
func FillColor(color string) string {
	if strings.TrimSpace(color) == "" {
		return DefaultColor
	}
	return color
}

// LabelColor picks dark or white text for legibility on color.
func LabelColor(color string) string {
	if lightColors[strings.ToLower(color)] || Luminance(color) > 0.7 {
		return "#1f2937"
	}
	return "#ffffff"
}

// EscapeXML escapes s for use in SVG text and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// FontSize returns the label size; hovered labels are larger.
func FontSize(n Node) float64 {
	size := 12.0
	if n.Hovered {
		size = 14
	}
	return size
}
