package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path"

	"github.com/Mavwarf/f3vita/internal/paths"
)

// Generate builds every asset in order and writes it as PNG under root,
// replacing any previous file. It stops at the first filesystem or
// encoding error.
func (g *Generator) Generate(root string) error {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	// The LiveArea tree must exist even if the run stops at icon0.png;
	// AtomicWrite only creates the parent of each file it writes.
	if err := os.MkdirAll(paths.Under(root, paths.LiveAreaDir), paths.DirPerm); err != nil {
		return fmt.Errorf("create %s: %w", paths.LiveAreaDir, err)
	}
	for _, a := range Assets {
		fmt.Fprintf(out, "Generating %s (%dx%d)...\n", g.cyan(path.Base(a.Path)), a.Width, a.Height)
		if err := writePNG(paths.Under(root, a.Path), a.build(g)); err != nil {
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
	}
	fmt.Fprintf(out, "%s Assets generated in %s/\n", g.green("Done!"), paths.SysDir)
	return nil
}

// rgbaPNG makes png.Encode keep the alpha channel of opaque canvases.
type rgbaPNG struct{ *image.RGBA }

func (rgbaPNG) Opaque() bool { return false }

// writePNG encodes img as 8-bit RGBA (color type 6) and writes it to file.
func writePNG(file string, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgbaPNG{img}); err != nil {
		return err
	}
	return paths.AtomicWrite(file, buf.Bytes())
}

func (g *Generator) ansi(code, s string) string {
	if !g.Color {
		return s
	}
	return code + s + "\033[0m"
}

func (g *Generator) cyan(s string) string  { return g.ansi("\033[36m", s) }
func (g *Generator) green(s string) string { return g.ansi("\033[32m", s) }
