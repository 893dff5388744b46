package assets

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts holds the TrueType files used for bold and regular text.
type Fonts struct {
	Bold    string
	Regular string
}

// DefaultFonts points at the DejaVu Sans files shipped by most Linux distros.
var DefaultFonts = Fonts{
	Bold:    "/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	Regular: "/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// loadFace returns a face for the TrueType file at path, sized in pixels.
// A missing or unparseable file yields the built-in 7x13 bitmap face.
func loadFace(path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
}
