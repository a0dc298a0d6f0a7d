//go:build windows

package exec

import "errors"

// ErrNotSupported indicates process image replacement is unavailable.
// Windows has no syscall that swaps a running process's image in place.
var ErrNotSupported = errors.New("process replacement not supported on Windows")

// Exec always fails on Windows.
func (e *RealExecutor) Exec(name string, args []string) error {
	return ErrNotSupported
}
