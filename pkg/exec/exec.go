// Package exec provides process image replacement.
//
// Replacement discards the running program's code and memory and loads the
// target executable in its place. The process identifier and open file
// descriptors survive the transition, so on success control never returns
// to the caller.
package exec

import (
	"os"
	"os/exec"
)

// Executor replaces the current process with another program.
type Executor interface {
	// Exec resolves name on the execution path and replaces the current
	// process image with it. args are the arguments after the program
	// name; the first token of the vector the target sees is always name
	// itself. Exec returns only on failure.
	Exec(name string, args []string) error
}

// RealExecutor invokes the platform replacement primitive.
type RealExecutor struct{}

// resolve locates name on the execution path.
func resolve(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the environment the replacement inherits.
func environ() []string {
	return os.Environ()
}
