package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// PNG rasterizes q at scale pixels per module with the given quiet-zone
// border (in modules) and writes a PNG image to w. There is no
// ecosystem-level QR-to-raster library in play here, so this leans on the
// standard image/png encoder directly: it is the obvious, idiomatic choice
// for a fixed-size 1-bit-per-module bitmap and pulling in a third-party
// imaging library for it would add nothing.
func PNG(q symbol, scale, border int, w io.Writer) error {
	if scale <= 0 {
		return fmt.Errorf("render: scale must be positive, got %d", scale)
	}
	if border < 0 {
		return fmt.Errorf("render: border must be non-negative, got %d", border)
	}

	size := q.Size()
	dim := (size + border*2) * scale

	img := image.NewGray(image.Rect(0, 0, dim, dim))
	white := color.Gray{Y: 0xFF}
	black := color.Gray{Y: 0x00}
	for py := 0; py < dim; py++ {
		for px := 0; px < dim; px++ {
			img.Set(px, py, white)
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !q.IsDark(x, y) {
				continue
			}
			ox := (x + border) * scale
			oy := (y + border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(ox+dx, oy+dy, black)
				}
			}
		}
	}

	return png.Encode(w, img)
}
