package scene

import (
	"fmt"
	"io"
)

// Palette selects fill colors for scene rects. Values are CSS color strings;
// the config package supplies them from the active theme.
type Palette struct {
	Background string
	Segment    string
	Fruit      string
}

// DefaultPalette mirrors the embedded default theme.
func DefaultPalette() Palette {
	return Palette{
		Background: "#101418",
		Segment:    "#3fb950",
		Fruit:      "#f85149",
	}
}

func (p Palette) fill(k Kind) string {
	switch k {
	case KindBackground:
		return p.Background
	case KindFruit:
		return p.Fruit
	default:
		return p.Segment
	}
}

// WriteSVG encodes the scene as a standalone SVG document.
func WriteSVG(w io.Writer, s Scene, p Palette) error {
	var err error
	pr := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	pr("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		s.Width, s.Height, s.Width, s.Height)

	// Declared for the fruit glow; nothing references it yet.
	// TODO: attach filter="url(#glow)" to the fruit rect once the look settles.
	pr("  <defs><filter id=\"glow\"><feGaussianBlur stdDeviation=\"2\"/></filter></defs>\n")

	for _, r := range s.Rects {
		pr("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n",
			r.X, r.Y, r.W, r.H, p.fill(r.Kind))
	}

	pr("</svg>\n")
	return err
}
