package local

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/RedDocMD/dotted"
	"github.com/spf13/afero"
)

var _ dotted.Environment = (*Environment)(nil)

// Environment implements dotted.Environment for the local operating system.
// It is safe for concurrent use.
type Environment struct {
	targetOS dotted.TargetOS
	fs       afero.Fs

	mu     sync.RWMutex
	closed bool
}

// New creates a new local environment.
func New(opts ...Option) (*Environment, error) {
	cfg := Config{
		targetOS: dotted.DetectLocalOS(),
		fs:       afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.fs == nil {
		return nil, fmt.Errorf("local: nil filesystem")
	}

	return &Environment{
		targetOS: cfg.targetOS,
		fs:       cfg.fs,
	}, nil
}

// Run executes a command synchronously on the local machine.
// The Result is returned also when the command exits non-zero.
func (e *Environment) Run(ctx context.Context, cmd *dotted.Command) (*dotted.Result, error) {
	process, err := e.Start(ctx, cmd)
	if err != nil {
		return nil, err
	}

	defer func() { _ = process.Close() }()

	waitErr := process.Wait()

	return process.Result(), waitErr
}

// Start begins command execution asynchronously.
// Caller must Wait or Close the returned Process.
func (e *Environment) Start(ctx context.Context, cmd *dotted.Command) (dotted.Process, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if e.isClosed() {
		return nil, fmt.Errorf("cannot start command %q: %w", cmd.String(), dotted.ErrEnvironmentClosed)
	}

	process := &Process{cmd: cmd}

	if err := process.start(ctx); err != nil {
		return nil, err
	}

	return process, nil
}

// TargetOS returns the operating system of the host machine.
func (e *Environment) TargetOS() dotted.TargetOS {
	return e.targetOS
}

// Fs returns the filesystem used for uploads.
func (e *Environment) Fs() afero.Fs {
	return e.fs
}

// Close shuts down the environment. Further Start and Upload calls fail;
// processes already running are not affected.
func (e *Environment) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true

	return nil
}

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable.
func (e *Environment) LookPath(_ context.Context, file string) (string, error) {
	if e.isClosed() {
		return "", fmt.Errorf("cannot look up %s: %w", file, dotted.ErrEnvironmentClosed)
	}

	return exec.LookPath(file)
}

func (e *Environment) isClosed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.closed
}
