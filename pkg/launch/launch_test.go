package launch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/execprobe/execprobe/pkg/testutil"
)

func TestLauncher_Run_ReportsThenReplaces(t *testing.T) {
	var buf bytes.Buffer
	var outputAtExec string

	executor := &testutil.MockExecutor{}
	executor.OnExec = func() {
		outputAtExec = buf.String()
	}

	l := &Launcher{
		Out:     &buf,
		Querier: testutil.MockQuerier{ID: 4321},
		Exec:    executor,
		Target:  "pwd",
	}

	if err := l.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	// The identity line must be complete before the replacement fires.
	if outputAtExec != "My PID is 4321\n" {
		t.Errorf("output at exec time = %q, want %q", outputAtExec, "My PID is 4321\n")
	}

	if !executor.Called {
		t.Fatal("expected replacement to be invoked")
	}
	if executor.Name != "pwd" {
		t.Errorf("replacement target = %q, want %q", executor.Name, "pwd")
	}
	if len(executor.Args) != 0 {
		t.Errorf("extra args = %v, want none", executor.Args)
	}
}

func TestLauncher_Run_ReplacementFailure(t *testing.T) {
	var buf bytes.Buffer
	wantErr := errors.New("pwd: not found")

	l := &Launcher{
		Out:     &buf,
		Querier: testutil.MockQuerier{ID: 7},
		Exec:    &testutil.MockExecutor{Err: wantErr},
		Target:  "pwd",
	}

	err := l.Run()
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}

	// Nothing beyond the identity line is ever written.
	if got := buf.String(); got != "My PID is 7\n" {
		t.Errorf("output = %q, want only the identity line", got)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestLauncher_Run_ReportFailureStillReplaces(t *testing.T) {
	executor := &testutil.MockExecutor{}

	l := &Launcher{
		Out:     failWriter{},
		Querier: testutil.MockQuerier{ID: 99},
		Exec:    executor,
		Target:  "pwd",
	}

	if err := l.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if !executor.Called {
		t.Error("expected replacement despite failed report write")
	}
}
