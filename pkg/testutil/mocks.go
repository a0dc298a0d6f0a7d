// Package testutil provides test doubles shared across packages.
package testutil

// MockQuerier reports a fixed process identifier.
type MockQuerier struct {
	ID int
}

func (m MockQuerier) PID() int {
	return m.ID
}

// MockExecutor records a replacement call instead of performing one.
type MockExecutor struct {
	Called bool
	Name   string
	Args   []string
	Err    error

	// OnExec, if set, runs when Exec is called, before Err is returned.
	OnExec func()
}

func (m *MockExecutor) Exec(name string, args []string) error {
	m.Called = true
	m.Name = name
	m.Args = args
	if m.OnExec != nil {
		m.OnExec()
	}
	return m.Err
}
