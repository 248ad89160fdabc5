package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

// Success prints a transient success message in green.
func Success(w io.Writer, format string, a ...interface{}) {
	green.Fprintf(w, format+"\n", a...)
}

// Errorf prints a transient error message in red.
func Errorf(w io.Writer, format string, a ...interface{}) {
	red.Fprintf(w, format+"\n", a...)
}

// Warn prints a warning or empty-state message in yellow.
func Warn(w io.Writer, format string, a ...interface{}) {
	yellow.Fprintf(w, format+"\n", a...)
}

// Title prints a screen header in cyan.
func Title(w io.Writer, format string, a ...interface{}) {
	cyan.Fprintf(w, format+"\n", a...)
}
