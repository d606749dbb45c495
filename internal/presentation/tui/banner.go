package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner for interactive runs.
func PrintBanner(w io.Writer, name string) {
	p := termenv.ColorProfile()
	title := termenv.String("parley").Foreground(p.Color("#818cf8")).Bold()
	fmt.Fprintf(w, "%s", title)
	if name != "" {
		fmt.Fprintf(w, " %s", termenv.String("· "+name).Faint())
	}
	fmt.Fprintln(w)
}
