package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// style is how the path is painted.
type style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	Filled      bool
}

var (
	defaultFill     = color.NRGBA{R: 0x8f, G: 0xb8, B: 0xde, A: 0xff}
	defaultStroke   = color.NRGBA{R: 0x1f, G: 0x3b, B: 0x57, A: 0xff}
	placeholderInk  = color.NRGBA{R: 0xd0, G: 0xd4, B: 0xda, A: 0xff}
	backgroundColor = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
)

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// svgDocument wraps path data in an SVG document whose view box is the
// board's logical size, so path coordinates map one to one onto the board.
func svgDocument(path string, width, height float32, s style) string {
	fill := "none"
	if s.Filled {
		fill = hex(s.Fill)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		width, height, width, height)
	fmt.Fprintf(&b, `<path d="%s" fill="%s" stroke="%s" stroke-width="%g" stroke-linejoin="round" stroke-linecap="round"/>`,
		path, fill, hex(s.Stroke), s.StrokeWidth)
	b.WriteString(`</svg>`)
	return b.String()
}

// rasterize paints an SVG document into a w by h image.
func rasterize(doc string, w, h int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img, nil
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return img, fmt.Errorf("read svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}
