// genassets writes the placeholder icon and LiveArea images into sce_sys/.
// Usage: go run ./cmd/genassets
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/f3vita/internal/assets"
	"golang.org/x/term"
)

func main() {
	g := assets.New(assets.DefaultFonts)
	g.Out = os.Stdout
	g.Color = term.IsTerminal(int(os.Stdout.Fd()))
	if err := g.Generate("."); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
