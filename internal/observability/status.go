package observability

import (
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// Success writes a completion line in green. Color is dropped automatically
// when stdout is not a terminal or NO_COLOR is set.
//
//nolint:errcheck // status output; errors are not recoverable
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format, args...)
}

// Warning writes a "Warning: " line in yellow.
//
//nolint:errcheck // status output; errors are not recoverable
func Warning(w io.Writer, format string, args ...any) {
	warningColor.Fprintf(w, "Warning: "+format, args...)
}

// Successf is Success for a Printer's writer.
func (p *Printer) Successf(format string, args ...any) {
	Success(p.out, format, args...)
}

// Warnf is Warning for a Printer's writer.
func (p *Printer) Warnf(format string, args ...any) {
	Warning(p.out, format, args...)
}

