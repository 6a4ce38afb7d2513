package player

import (
	"strings"
	"testing"
)

func TestFormatClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{599.9, "09:59"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{86399, "23:59:59"},
		// Hours wrap at the 24h boundary instead of overflowing
		{86400 + 65, "00:01:05"},
		{-10, "00:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.want {
			t.Errorf("FormatClock(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	c, err := ParseHexColor("#00A4DC")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c.R != 0x00 || c.G != 0xA4 || c.B != 0xDC || c.A != 0xFF {
		t.Fatalf("unexpected color %+v", c)
	}

	if _, err := ParseHexColor("00a4dc"); err != nil {
		t.Fatalf("bare hex rejected: %v", err)
	}
	if _, err := ParseHexColor("#12345"); err == nil {
		t.Fatalf("short hex accepted")
	}
	if _, err := ParseHexColor("#GGHHII"); err == nil {
		t.Fatalf("non-hex accepted")
	}
}

func TestAssColor(t *testing.T) {
	t.Parallel()

	// ASS stores BGR, so the channel order flips
	if got := assColor(DefaultMainColor, 0); got != "&H00DCA400" {
		t.Fatalf("assColor = %q", got)
	}
}

func TestAssAlpha(t *testing.T) {
	t.Parallel()

	// Full opacity keeps the base alpha
	if got := assAlpha(1, 0x00); got != "\\1a&H00&" {
		t.Fatalf("opaque = %q", got)
	}
	// Zero opacity is fully transparent regardless of base
	if got := assAlpha(0, 0x00); got != "\\1a&HFF&" {
		t.Fatalf("transparent = %q", got)
	}
	if got := assAlpha(0, 0x40); got != "\\1a&HFF&" {
		t.Fatalf("transparent with base = %q", got)
	}
	// Out-of-range opacity clamps
	if got := assAlpha(2, 0x00); got != "\\1a&H00&" {
		t.Fatalf("clamped = %q", got)
	}
}

func TestAssDrawings(t *testing.T) {
	t.Parallel()

	rect := assRoundRect(0, 0, 100, 10, 5)
	if !strings.HasPrefix(rect, "m ") || !strings.Contains(rect, " b ") {
		t.Fatalf("rounded rect drawing malformed: %q", rect)
	}
	circle := assCircle(0, 0, 10)
	if strings.Count(circle, " b ") != 4 {
		t.Fatalf("circle should have 4 bezier segments: %q", circle)
	}
	tri := assTriangle(0, 0, 12)
	if strings.Count(tri, " l ") != 2 {
		t.Fatalf("triangle should have 2 line segments: %q", tri)
	}
}
