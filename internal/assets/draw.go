package assets

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

var (
	cyan      = color.RGBA{0, 255, 255, 255}
	lightGray = color.RGBA{200, 200, 200, 255}
	midGray   = color.RGBA{180, 180, 180, 255}
)

// fillRows paints every row y of img with the color returned by row(y).
func fillRows(img *image.RGBA, row func(y int) color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		r := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(img, r, image.NewUniform(row(y)), image.Point{}, draw.Src)
	}
}

// inkSize returns the size of the bounding box of the pixels s would
// mark when drawn with face.
func inkSize(face font.Face, s string) (w, h int) {
	b, _ := font.BoundString(face, s)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// centerX is the x origin that centers the ink of s horizontally in a
// span of width, compensating for the left side bearing.
func centerX(width int, face font.Face, s string) int {
	b, _ := font.BoundString(face, s)
	w := (b.Max.X - b.Min.X).Ceil()
	return (width-w)/2 - b.Min.X.Floor()
}

// drawText draws s with its origin at x and its ascender line at top.
func drawText(dc *gg.Context, face font.Face, s string, x, top int, c color.Color) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	baseline := top + face.Metrics().Ascent.Ceil()
	dc.DrawString(s, float64(x), float64(baseline))
}
