package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a renderer that turns markdown prompt text into ANSI.
// Falls back to identity when the renderer cannot be constructed (e.g. no
// usable terminfo).
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return func(text string) (string, error) { return text, nil }
	}
	return func(text string) (string, error) {
		return r.Render(text)
	}
}
