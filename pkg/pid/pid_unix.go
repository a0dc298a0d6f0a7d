//go:build unix

package pid

import "golang.org/x/sys/unix"

// PID returns the identifier of the current process via getpid(2).
func (Real) PID() int {
	return unix.Getpid()
}
