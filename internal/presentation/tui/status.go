package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Palette colors PASS/FAIL markers for the writer it was created for.
type Palette struct {
	out *termenv.Output
}

// NewPalette detects the color profile of w.
func NewPalette(w io.Writer) *Palette {
	return &Palette{out: termenv.NewOutput(w)}
}

// Pass renders s in green.
func (p *Palette) Pass(s string) string {
	return p.out.String(s).Foreground(p.out.Color("#22c55e")).Bold().String()
}

// Fail renders s in red.
func (p *Palette) Fail(s string) string {
	return p.out.String(s).Foreground(p.out.Color("#ef4444")).Bold().String()
}

// Faint renders secondary text.
func (p *Palette) Faint(s string) string {
	return p.out.String(s).Faint().String()
}
