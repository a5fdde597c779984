// Package ui holds the color helpers for user-facing messages. Tables are
// rendered by pkg/formatter; this package only decorates status lines.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
)

// Color definitions
var (
	success    = color.New(color.FgGreen).SprintfFunc()
	warning    = color.New(color.FgYellow).SprintfFunc()
	errorColor = color.New(color.FgRed, color.Bold).SprintfFunc()
)

// Success formats a message in the success color
func Success(format string, a ...interface{}) string {
	return success(format, a...)
}

// Warn formats a message in the warning color
func Warn(format string, a ...interface{}) string {
	return warning(format, a...)
}

// PrintError writes a color-coded error line plus its remediation hint,
// if the error carries one.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor("ERROR:"), err)
	if hint := errdefs.HintOf(err); hint != "" {
		fmt.Fprintln(w, hint)
	}
}
