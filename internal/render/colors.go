package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"sjf-simulator/internal/core"
)

var palette = []*color.Color{
	color.New(color.Bold, color.FgMagenta),
	color.New(color.Bold, color.FgRed),
	color.New(color.Bold, color.FgYellow),
	color.New(color.Bold, color.FgWhite),
	color.New(color.Bold, color.FgHiMagenta),
	color.New(color.Bold, color.FgHiRed),
	color.New(color.Bold, color.FgHiYellow),
	color.New(color.Bold, color.FgHiWhite),
}

var idleColor = color.New(color.Faint)

// PaletteIndex maps a process id to a palette slot from the digits it
// carries: P1 -> 0, P2 -> 1, ... wrapping around. Ids without digits get 0.
func PaletteIndex(pid string) int {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, pid)

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0
	}
	return (n - 1) % len(palette)
}

// ColorFor returns the display colour for a timeline slot id.
func ColorFor(pid string) *color.Color {
	if pid == core.IdleID {
		return idleColor
	}
	return palette[PaletteIndex(pid)]
}
