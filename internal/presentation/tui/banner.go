package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for modthree.
// Colors degrade to plain text when w is not a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []struct {
		text  string
		color string
	}{
		{"                    _  _____ ", "#818cf8"},
		{"  _ __  ___  __| ||___ / ", "#a78bfa"},
		{" | '  \\/ _ \\/ _` | |_ \\ ", "#c084fc"},
		{" |_|_|_\\___/\\__,_||___/ ", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
