// Package msg renders user-facing messages for the terminal.
package msg

import (
	"fmt"

	"github.com/fatih/color"
)

var errPrefix = color.New(color.FgRed, color.Bold).Sprint("vmux:")

// FormatError renders a fatal error the way the tool presents them on
// stderr. Color is stripped automatically when stderr is not a tty.
func FormatError(err error) string {
	return fmt.Sprintf("%s %v", errPrefix, err)
}
