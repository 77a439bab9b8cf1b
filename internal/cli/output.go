package cli

import (
	"fmt"
	"io"
)

// securityError marks a name rejected by the validator.
type securityError struct {
	err error
}

func (e *securityError) Error() string {
	return "Security validation failed: " + e.err.Error()
}

func (e *securityError) Unwrap() error { return e.err }

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "✅ "+format+"\n", args...)
}

func printFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "❌ %s\n", err)
}
