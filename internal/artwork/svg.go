// Package artwork generates the placeholder product imagery: an inline
// vector tile with a two-color gradient derived from the product color
// and the product name centered on top. Nothing is stored; every tile is
// rendered on demand.
package artwork

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

const (
	tileWidth  = 640
	tileHeight = 480
)

// SVG renders the placeholder tile for a product name and base color.
// Unparseable colors fall back to a cocoa brown so a bad admin entry
// still yields a presentable tile.
func SVG(name, color string) string {
	r, g, b, ok := parseHexColor(color)
	if !ok {
		r, g, b = 0x6b, 0x42, 0x26
	}
	from := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	to := lighten(r, g, b, 0.35)
	label := html.EscapeString(strings.TrimSpace(name))
	text := textColorFor(r, g, b)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		tileWidth, tileHeight, tileWidth, tileHeight, label)
	sb.WriteString(`<defs><linearGradient id="tile" x1="0" y1="0" x2="1" y2="1">`)
	fmt.Fprintf(&sb, `<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`, from, to)
	sb.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="url(#tile)"/>`, tileWidth, tileHeight)
	fmt.Fprintf(&sb, `<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="Georgia, serif" font-size="40" fill="%s">%s</text>`, text, label)
	sb.WriteString(`</svg>`)
	return sb.String()
}

func parseHexColor(s string) (r, g, b int, ok bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
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
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func lighten(r, g, b int, f float64) string {
	mix := func(c int) int {
		out := c + int(f*float64(255-c))
		if out > 255 {
			out = 255
		}
		return out
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(r), mix(g), mix(b))
}

// textColorFor picks a readable label color against the base tone.
func textColorFor(r, g, b int) string {
	// perceived luminance, ITU-R BT.601 weights
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if lum > 160 {
		return "#2f1b0e"
	}
	return "#fdf6ec"
}
