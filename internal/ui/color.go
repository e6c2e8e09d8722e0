// Package ui renders coloured terminal output for the non-interactive
// commands
package ui

import (
	"github.com/pterm/pterm"

	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/internal/session"
)

// DarkTheme selects the light variants of each colour for dark terminals.
var DarkTheme bool

func paint(normal, light pterm.Color, a any) string {
	if DarkTheme {
		return light.Sprint(a)
	}

	return normal.Sprint(a)
}

func Green(a any) string {
	return paint(pterm.FgGreen, pterm.FgLightGreen, a)
}

func Yellow(a any) string {
	return paint(pterm.FgYellow, pterm.FgLightYellow, a)
}

func Red(a any) string {
	return paint(pterm.FgRed, pterm.FgLightRed, a)
}

func Cyan(a any) string {
	return paint(pterm.FgCyan, pterm.FgLightCyan, a)
}

func Highlight(a any) string {
	return paint(pterm.FgBlack, pterm.FgLightWhite, a)
}

// Phase colours a session phase the same way the workout screen does.
func Phase(p session.Phase) string {
	switch p {
	case session.Running:
		return Green(p)
	case session.Paused:
		return Yellow(p)
	case session.Ended:
		return Cyan(p)
	default:
		return Highlight(p)
	}
}

// Attribute colours an attribute label.
func Attribute(a player.Attribute) string {
	switch a {
	case player.STR:
		return Red(a)
	case player.AGI:
		return Green(a)
	case player.END:
		return Yellow(a)
	case player.INT:
		return Cyan(a)
	default:
		return Highlight(a)
	}
}
