package debug

import (
	"fmt"
	"os"
)

// Logf writes trace output to stderr. Values that implement fmt.Stringer
// render through it via the usual %s/%v verbs.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
