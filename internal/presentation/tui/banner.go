package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII banner for the interactive runner.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`  _             _ _ _                    _ `, "#34d399"},
		{` | |_ _ __ __ _(_) | |__   ___  __ _  __| |`, "#2dd4bf"},
		{` | __| '__/ _' | | | '_ \ / _ \/ _' |/ _' |`, "#22d3ee"},
		{` | |_| | | (_| | | | | | |  __/ (_| | (_| |`, "#38bdf8"},
		{`  \__|_|  \__,_|_|_|_| |_|\___|\__,_|\__,_|`, "#60a5fa"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
