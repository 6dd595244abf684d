// Where: internal/commands/output.go
// What: Raw writer helpers for machine-readable command output.
// Why: Completion scripts and version strings must not carry console decoration.
package commands

import (
	"fmt"
	"io"
)

func writeString(out io.Writer, s string) {
	_, _ = io.WriteString(out, s)
}

func writeLine(out io.Writer, s string) {
	_, _ = fmt.Fprintln(out, s)
}
