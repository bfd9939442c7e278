// Package render turns a *rqr.Qr into output formats: a terminal-friendly
// string, an SVG document, and a PNG image. None of these are required to
// produce a symbol; they are external collaborators over the finished
// matrix.
package render

import (
	"fmt"
	"strings"
)

// symbol is the subset of *rqr.Qr the renderers need, kept narrow so tests
// can exercise them against a fake.
type symbol interface {
	Size() int
	IsDark(x, y int) bool
}

// String renders q as two-character-per-module block art with the given
// quiet-zone border, suitable for printing to a terminal.
func String(q symbol, border int) string {
	size := q.Size()

	var sb strings.Builder
	for y := -border; y < size+border; y++ {
		for x := -border; x < size+border; x++ {
			if inBounds(x, y, size) && q.IsDark(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func inBounds(x, y, size int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// SVG renders q as a scalable vector graphics document: one path made of
// unit squares, one per dark module, plus a white background rect.
func SVG(q symbol, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("render: border must be non-negative, got %d", border)
	}

	size := q.Size()
	dim := size + border*2

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %[1]d %[1]d" stroke="none">`+"\n", dim)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !q.IsDark(x, y) {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
