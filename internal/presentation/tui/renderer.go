package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders question titles and
// descriptions (markdown) for the terminal runner.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text when the terminal profile cannot be
		// detected (e.g. piped output).
		return func(markdown string) (string, error) {
			return markdown + "\n", nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
