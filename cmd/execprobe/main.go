package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/execprobe/execprobe/pkg/exec"
	"github.com/execprobe/execprobe/pkg/launch"
	"github.com/execprobe/execprobe/pkg/pid"
)

// Version is set at build time via ldflags
var Version = "dev"

// target is the program the launcher execs into. It takes no arguments,
// so the vector it observes is just its own name.
const target = "pwd"

// executor is swapped out in tests; a real replacement would swallow the
// test process.
var executor exec.Executor = &exec.RealExecutor{}

var rootCmd = &cobra.Command{
	Use:     "execprobe",
	Short:   "Print the current PID, then replace the process with pwd",
	Long: `Execprobe reports its own process identifier on stdout and then execs
into pwd, which keeps running under the same PID. Useful as a minimal,
predictable workload when tracing execve.`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		l := &launch.Launcher{
			Out:     cmd.OutOrStdout(),
			Querier: pid.Real{},
			Exec:    executor,
			Target:  target,
		}
		// A failed replacement is ignored: the process falls through
		// with no diagnostic and exits 0.
		_ = l.Run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
