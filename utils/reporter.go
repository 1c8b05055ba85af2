package utils

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints progress lines when Verbose is set
type Reporter struct {
	W       io.Writer
	Verbose bool
}

// NewReporter writes to stdout
func NewReporter(verbose bool) *Reporter {
	return &Reporter{W: os.Stdout, Verbose: verbose}
}

// Printf is a no-op on a nil or silent reporter
func (r *Reporter) Printf(format string, args ...interface{}) {
	if r == nil || !r.Verbose || r.W == nil {
		return
	}
	fmt.Fprintf(r.W, format, args...)
}
