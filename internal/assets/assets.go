// Package assets draws the placeholder LiveArea images for the f3vita VPK
// and writes them into the sce_sys tree.
package assets

import (
	"image"
	"image/color"
	"io"

	"github.com/Mavwarf/f3vita/internal/paths"
	"github.com/fogleman/gg"
)

// Canvas sizes in pixels.
const (
	IconSize    = 128
	BackgroundW = 840
	BackgroundH = 500
	StartupW    = 280
	StartupH    = 158
)

// Text placement, measured to the ascender line.
const (
	iconTitleTop    = -10 // relative to vertical center
	iconSubtitleGap = 50  // below the title's top
	bgTitleTop      = 180
	bgSubtitleTop   = 260
)

// Generator builds the three images. A zero Fonts renders all text with
// the fallback face.
type Generator struct {
	Fonts Fonts
	Out   io.Writer // progress lines; nil discards
	Color bool      // wrap progress lines in ANSI colors
}

// New returns a Generator that renders text with fonts.
func New(fonts Fonts) *Generator {
	return &Generator{Fonts: fonts, Out: io.Discard}
}

// Asset describes one generated image and where it is written.
type Asset struct {
	Path   string // slash-separated, relative to the output root
	Width  int
	Height int
	build  func(*Generator) *image.RGBA
}

// Assets lists the images in generation order.
var Assets = []Asset{
	{Path: paths.IconFile, Width: IconSize, Height: IconSize, build: (*Generator).Icon},
	{Path: paths.BackgroundFile, Width: BackgroundW, Height: BackgroundH, build: (*Generator).Background},
	{Path: paths.StartupFile, Width: StartupW, Height: StartupH, build: (*Generator).StartupButton},
}

// Icon draws the 128×128 application icon: "F3" over "vita" on a
// dark blue-gray vertical gradient.
func (g *Generator) Icon() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	fillRows(img, func(y int) color.RGBA {
		v := uint8(30 + float64(y)/IconSize*40)
		return color.RGBA{v, v, v + 20, 255}
	})
	dc := gg.NewContextForRGBA(img)

	bold := loadFace(g.Fonts.Bold, 48)
	_, h := inkSize(bold, "F3")
	top := (IconSize-h)/2 + iconTitleTop
	drawText(dc, bold, "F3", centerX(IconSize, bold, "F3"), top, cyan)

	regular := loadFace(g.Fonts.Regular, 24)
	drawText(dc, regular, "vita", centerX(IconSize, regular, "vita"), top+iconSubtitleGap, lightGray)
	return img
}

// Background draws the 840×500 LiveArea background with the app title
// and tagline.
func (g *Generator) Background() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BackgroundW, BackgroundH))
	fillRows(img, func(y int) color.RGBA {
		return color.RGBA{20, 20, uint8(30 + float64(y)/BackgroundH*50), 255}
	})
	dc := gg.NewContextForRGBA(img)

	bold := loadFace(g.Fonts.Bold, 64)
	drawText(dc, bold, "f3vita", centerX(BackgroundW, bold, "f3vita"), bgTitleTop, cyan)

	const tagline = "Storage Verification Tool"
	regular := loadFace(g.Fonts.Regular, 28)
	drawText(dc, regular, tagline, centerX(BackgroundW, regular, tagline), bgSubtitleTop, midGray)
	return img
}

// StartupButton draws the 280×158 startup button: a translucent teal
// rounded panel with a white play triangle on a transparent canvas.
func (g *Generator) StartupButton() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, StartupW, StartupH))
	dc := gg.NewContextForRGBA(img)

	// Panel spans pixels 10..270 × 10..148 inclusive.
	dc.SetRGBA255(0, 100, 150, 220)
	dc.DrawRoundedRectangle(10, 10, StartupW-20+1, StartupH-20+1, 15)
	dc.Fill()

	dc.SetRGB255(255, 255, 255)
	dc.MoveTo(100, 50)
	dc.LineTo(100, 108)
	dc.LineTo(180, 79)
	dc.ClosePath()
	dc.Fill()
	return img
}
