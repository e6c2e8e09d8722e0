// Package report prints user-facing status messages
package report

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func WorkoutSaved(name string, synced bool) {
	if synced {
		pterm.Success.Printfln("%q saved and synced", name)
		return
	}

	pterm.Info.Printfln(
		"%q saved locally: run 'ascend sync' once you are logged in",
		name,
	)
}

func Info(format string, args ...any) {
	pterm.Info.Println(fmt.Sprintf(format, args...))
}

func Success(format string, args ...any) {
	pterm.Success.Println(fmt.Sprintf(format, args...))
}

func Warn(format string, args ...any) {
	pterm.Warning.Println(fmt.Sprintf(format, args...))
}

// Quit reports err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
