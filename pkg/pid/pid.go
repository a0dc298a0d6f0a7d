// Package pid exposes the identity of the calling process.
package pid

import (
	"fmt"
	"io"
)

// Querier reports the process identifier of the calling process.
type Querier interface {
	// PID returns the OS-assigned identifier of the current process.
	// The query cannot fail for a running process.
	PID() int
}

// Real is the production implementation.
type Real struct{}

// Report writes the identity line for id to w.
// The format is fixed: "My PID is <decimal>" followed by a newline.
func Report(w io.Writer, id int) error {
	_, err := fmt.Fprintf(w, "My PID is %d\n", id)
	return err
}
