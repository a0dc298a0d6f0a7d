// Package launch runs the launcher sequence: identify, report, replace.
package launch

import (
	"io"

	"github.com/execprobe/execprobe/pkg/exec"
	"github.com/execprobe/execprobe/pkg/pid"
)

// Launcher reports the calling process's identifier on Out and then
// replaces the process image with Target.
type Launcher struct {
	Out     io.Writer
	Querier pid.Querier
	Exec    exec.Executor
	Target  string
}

// Run writes the identity line and invokes the replacement. On a
// successful replacement Run never returns; a returned error means the
// replacement failed and this process is still the launcher. A failed
// report write does not stop the replacement attempt.
func (l *Launcher) Run() error {
	_ = pid.Report(l.Out, l.Querier.PID())
	return l.Exec.Exec(l.Target, nil)
}
