package mock

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/RedDocMD/dotted"
	"github.com/stretchr/testify/mock"
)

// Environment implements a mock dotted.Environment using testify/mock.
type Environment struct {
	mock.Mock

	mu       sync.Mutex
	commands []*dotted.Command
}

var _ dotted.Environment = (*Environment)(nil)

// New creates a new mock environment reporting OSLinux.
func New() *Environment {
	m := &Environment{}
	m.On("TargetOS").Return(dotted.OSLinux).Maybe()
	m.On("Close").Return(nil).Maybe()

	return m
}

// OnRun sets up an expectation for Run of any command whose binary is bin.
func (m *Environment) OnRun(bin string) *mock.Call {
	return m.On("Run", mock.Anything, mock.MatchedBy(func(c *dotted.Command) bool {
		return c.Cmd == bin
	}))
}

// OnLookPath makes LookPath(file) succeed with path.
func (m *Environment) OnLookPath(file, path string) *mock.Call {
	return m.On("LookPath", mock.Anything, file).Return(path, nil)
}

// Commands returns the commands passed to Run and Start, in call order.
func (m *Environment) Commands() []*dotted.Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*dotted.Command(nil), m.commands...)
}

func (m *Environment) record(cmd *dotted.Command) {
	m.mu.Lock()
	m.commands = append(m.commands, cmd)
	m.mu.Unlock()
}

// Upload mocks copying a file.
func (m *Environment) Upload(ctx context.Context, srcPath, dstPath string, opts ...dotted.FileOption) error {
	// Variadic capture fix for testify
	args := m.Called(ctx, srcPath, dstPath, opts)

	return args.Error(0)
}

// Run mocks running a command to completion.
func (m *Environment) Run(ctx context.Context, cmd *dotted.Command) (*dotted.Result, error) {
	m.record(cmd)

	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*dotted.Result), args.Error(1)
}

// Start mocks starting a command asynchronously.
func (m *Environment) Start(ctx context.Context, cmd *dotted.Command) (dotted.Process, error) {
	m.record(cmd)

	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(dotted.Process), args.Error(1)
}

// LookPath mocks resolving an executable.
func (m *Environment) LookPath(ctx context.Context, file string) (string, error) {
	args := m.Called(ctx, file)

	return args.String(0), args.Error(1)
}

// TargetOS mocks returning the target operating system.
func (m *Environment) TargetOS() dotted.TargetOS {
	args := m.Called()

	return args.Get(0).(dotted.TargetOS)
}

// Close mocks closing the environment.
func (m *Environment) Close() error {
	args := m.Called()

	return args.Error(0)
}

// Process implements a mock dotted.Process using testify/mock.
type Process struct {
	mock.Mock
}

var _ dotted.Process = (*Process)(nil)

// Wait mocks waiting for the process to complete.
func (m *Process) Wait() error {
	args := m.Called()

	return args.Error(0)
}

// Result mocks returning the process result.
func (m *Process) Result() *dotted.Result {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*dotted.Result)
}

// Signal mocks sending a signal to the process.
func (m *Process) Signal(sig os.Signal) error {
	args := m.Called(sig)

	return args.Error(0)
}

// Close mocks closing the process.
func (m *Process) Close() error {
	args := m.Called()

	return args.Error(0)
}

// WriteOutput simulates a command writing content to its stdout.
// Usage: m.OnRun("docker").Run(mock.WriteOutput("built")).Return(&dotted.Result{}, nil).
func WriteOutput(content string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		cmd, ok := args.Get(1).(*dotted.Command)
		if ok && cmd.Stdout != nil {
			_, _ = io.WriteString(cmd.Stdout, content)
		}
	}
}
