package player

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ASS color format: &HAABBGGRR (alpha, blue, green, red — reversed from RGB).
const (
	assWhite    = "&H00FFFFFF"
	assWhiteDim = "&H60FFFFFF"
	assBlack    = "&H00000000"
	assShadow   = "&H80000000"
)

// DefaultMainColor is the scrubber tint used when the config has none.
var DefaultMainColor = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}

// ParseHexColor parses "#RRGGBB" (or "RRGGBB") into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// assColor converts an RGBA color to an ASS &HAABBGGRR string with the given
// base alpha byte (0 = opaque, FF = invisible).
func assColor(c color.RGBA, baseAlpha uint8) string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", baseAlpha, c.B, c.G, c.R)
}

// assAlpha combines an element's base alpha with the overlay opacity and
// returns an ASS \1a override tag. Opacity 1 keeps the base alpha, opacity 0
// makes the element fully transparent.
func assAlpha(opacity float64, baseAlpha uint8) string {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	baseOpaque := 1 - float64(baseAlpha)/255
	a := int((1 - opacity*baseOpaque) * 255)
	if a > 255 {
		a = 255
	}
	return fmt.Sprintf("\\1a&H%02X&", a)
}

// assRoundRect generates an ASS vector drawing for a rounded rectangle,
// relative to the \pos anchor.
func assRoundRect(x, y, w, h, r int) string {
	if r > h/2 {
		r = h / 2
	}
	if r > w/2 {
		r = w / 2
	}
	return fmt.Sprintf(
		"m %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d",
		x+r, y,
		x+w-r, y,
		x+w, y, x+w, y, x+w, y+r,
		x+w, y+h-r,
		x+w, y+h, x+w, y+h, x+w-r, y+h,
		x+r, y+h,
		x, y+h, x, y+h, x, y+h-r,
		x, y+r,
		x, y, x, y, x+r, y,
	)
}

// assCircle generates an ASS vector drawing for a circle from four cubic
// bezier segments.
func assCircle(cx, cy, r int) string {
	k := r * 55 / 100
	return fmt.Sprintf(
		"m %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d",
		cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
	)
}

// assTriangle generates an ASS vector drawing for a right-pointing triangle
// (the play glyph) centered on the anchor.
func assTriangle(cx, cy, r int) string {
	return fmt.Sprintf("m %d %d l %d %d l %d %d",
		cx-r*2/3, cy-r,
		cx+r, cy,
		cx-r*2/3, cy+r,
	)
}

// FormatClock formats seconds as a zero-padded clock label: "MM:SS" below one
// hour, "HH:MM:SS" from one hour up. Hours wrap at the 24-hour boundary.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := (total / 3600) % 24
	m := (total % 3600) / 60
	s := total % 60
	if total >= 3600 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
