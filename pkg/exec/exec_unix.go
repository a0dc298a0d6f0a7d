//go:build unix

package exec

import (
	"golang.org/x/sys/unix"
)

// execFunc is the replacement primitive. Tests swap it out, since a real
// call would replace the test process.
var execFunc = unix.Exec

// Exec replaces the current process image with name, resolved on the
// execution path. The argument vector is name followed by args; the NULL
// terminator is appended at the syscall boundary. The environment is
// inherited. On success this never returns.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := resolve(name)
	if err != nil {
		return err
	}

	argv := append([]string{name}, args...)
	return execFunc(binary, argv, environ())
}
