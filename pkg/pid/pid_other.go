//go:build !unix

package pid

import "os"

// PID returns the identifier of the current process.
func (Real) PID() int {
	return os.Getpid()
}
