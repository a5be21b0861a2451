// Copyright (c) 2026 The SmokeRand Authors

package battery

import (
	"io"

	"github.com/smokerand/smokerand/logging"
)

// Logger wraps zerolog.Logger with the thread-framed progress markers
// spec.md §4.4 asks the runner to print as each worker finishes. It is
// an alias for logging.Logger so battery/ and entropy/ (which cannot
// import each other; battery already imports entropy) share one
// implementation.
type Logger = logging.Logger

// NewLogger returns a Logger writing to out (os.Stdout if nil) at info
// level.
func NewLogger(out io.Writer) *Logger {
	return logging.New(out)
}
