// Package errors holds the CLI exit path: failures that reach the top of a
// command are logged, printed once to stderr and end the process.
package errors

import (
	"fmt"
	"os"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
)

// Fatal ends the process with exit code 1 when err is non-nil. A nil err is
// a no-op, so it can wrap the final Run call directly.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// Fatalf is Fatal for errors built in place.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
