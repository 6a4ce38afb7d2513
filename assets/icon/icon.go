package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	accentBlue = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	darkBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	trackGray  = color.RGBA{R: 0x50, G: 0x50, B: 0x5A, A: 0xFF}
	glyphWhite = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF4, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws the app mark: a play triangle above a progress bar with a
// thumb dot, on a dark rounded tile.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Rounded background tile
	fillRoundedRect(img, 0, 0, s, s, s*0.16, darkBG)

	// Play triangle, slightly right-shifted so it looks optically centered
	cx := s * 0.54
	cy := s * 0.42
	r := s * 0.22
	fillTriangle(img, cx-r*0.75, cy-r, cx+r, cy, cx-r*0.75, cy+r, glyphWhite)

	// Progress bar near the bottom
	barY := s * 0.72
	barH := s * 0.09
	fillRoundedRect(img, s*0.14, barY, s*0.72, barH, barH/2, trackGray)
	fillRoundedRect(img, s*0.14, barY, s*0.45, barH, barH/2, accentBlue)

	// Thumb dot at the end of the filled portion
	fillCircle(img, s*0.59, barY+barH/2, s*0.07, glyphWhite)

	return img
}

// fillTriangle rasterizes the triangle (x0,y0)-(x1,y1)-(x2,y2) with a
// half-plane test per pixel.
func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	minX := int(min(x0, x1, x2))
	maxX := int(max(x0, x1, x2)) + 1
	minY := int(min(y0, y1, y2))
	maxY := int(max(y0, y1, y2)) + 1

	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}

	bounds := img.Bounds()
	for y := minY; y <= maxY && y < bounds.Max.Y; y++ {
		for x := minX; x <= maxX && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			w0 := edge(x0, y0, x1, y1, px, py)
			w1 := edge(x1, y1, x2, y2, px, py)
			w2 := edge(x2, y2, x0, y0, px, py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			fx := float64(x)
			fy := float64(y)
			inside := true

			if fx < xf+r && fy < yf+r {
				dx := xf + r - fx
				dy := yf + r - fy
				inside = dx*dx+dy*dy <= r*r
			} else if fx > xf+wf-r && fy < yf+r {
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				inside = dx*dx+dy*dy <= r*r
			} else if fx < xf+r && fy > yf+hf-r {
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				inside = dx*dx+dy*dy <= r*r
			} else if fx > xf+wf-r && fy > yf+hf-r {
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				inside = dx*dx+dy*dy <= r*r
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
