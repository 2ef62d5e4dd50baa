package cli

import (
	"fmt"
	"io"
	"strings"
)

// ExitFailure is the exit code for every fatal error.
const ExitFailure = -1

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ExitFailure
}

// Report writes err as a single line to w.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	fmt.Fprintln(w, msg)
}
