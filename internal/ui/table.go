package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table. The first row is the header.
func PrintTable(data [][]string, writer io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, str)

	return err
}

// Bar draws a plain progress bar for fraction (clamped to 0..1).
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}

	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * float64(width))

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
