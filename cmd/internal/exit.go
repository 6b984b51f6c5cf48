package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// Output is where all messages are written.
	Output io.Writer = os.Stderr
	exit             = os.Exit
	verbose          bool
)

// SetVerbose enables or disables Debug messages.
func SetVerbose(enabled bool) {
	verbose = enabled
}

// Fatal will Echo the message and exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(Output, msg, args...)
}

// Debug will Echo the message only if verbose output is enabled.
func Debug(msg string, args ...any) {
	if verbose {
		Echo(msg, args...)
	}
}
