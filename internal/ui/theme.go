package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Warn string
	ChipOn, ChipOff                            string
	CornerTL, CornerTR, CornerBL, CornerBR     string
	H, V                                       string
	SymOK, SymWarn, SymFail, Leader            string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		disableColor = false
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Warn: "\033[93m",
			ChipOn: "◼", ChipOff: "◻",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymOK: "✔", SymWarn: "!", SymFail: "✖", Leader: "·",
		}
	case "mono":
		disableColor = true
		current = Theme{
			ChipOn: "[x]", ChipOff: "[ ]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymOK: "ok", SymWarn: "!", SymFail: "x", Leader: ".",
		}
	default: // classic
		disableColor = false
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Warn: fgYellow,
			ChipOn: "☑", ChipOff: "☐",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymOK: "✔", SymWarn: "!", SymFail: "✖", Leader: ".",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
