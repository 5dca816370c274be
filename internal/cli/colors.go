package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

// ColorEnabled resolves a color mode (auto|on|off) against the output file
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	if out == nil {
		return false
	}
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

func (c *CLI) paint(color, text string) string {
	if !c.color {
		return text
	}
	return color + text + Reset
}
