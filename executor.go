package dotted

import (
	"bytes"
	"context"
	"errors"
)

// Executor runs commands and copies files on an Environment, normalizing
// failures into *ExitError and *TransportError.
type Executor struct {
	env Environment
}

// NewExecutor creates a new Executor with the given environment.
func NewExecutor(env Environment) *Executor {
	return &Executor{env: env}
}

// Run executes cmd and blocks until it exits.
// A non-zero exit code is reported as an *ExitError, also when the provider
// only reported it through the Result.
func (e *Executor) Run(ctx context.Context, cmd *Command) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := e.env.Run(ctx, cmd)
	if err != nil {
		return res, err
	}

	if res != nil && res.ExitCode != 0 {
		return res, &ExitError{
			Command:  cmd,
			ExitCode: res.ExitCode,
		}
	}

	return res, nil
}

// RunBuffered executes a command and captures both Stdout and Stderr.
// cmd is not modified.
func (e *Executor) RunBuffered(ctx context.Context, cmd *Command) (*BufferedResult, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmdCopy := *cmd
	cmdCopy.Stdout = &stdoutBuf
	cmdCopy.Stderr = &stderrBuf

	result, err := e.Run(ctx, &cmdCopy)

	bufResult := &BufferedResult{
		Stdout: stdoutBuf.Bytes(),
		Stderr: stderrBuf.Bytes(),
	}
	if result != nil {
		bufResult.Result = *result
	}

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			exitErr.Stderr = bufResult.Stderr
		}
	}

	return bufResult, err
}

// LookPath resolves an executable with the Environment's PATH lookup.
// A failed lookup is reported as a *TransportError for cmd, since cmd cannot run.
func (e *Executor) LookPath(ctx context.Context, cmd *Command) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	path, err := e.env.LookPath(ctx, cmd.Cmd)
	if err != nil {
		return "", &TransportError{Command: cmd, Err: err}
	}

	return path, nil
}

// Start initiates a command asynchronously.
// The caller is responsible for Process.Wait() or Process.Close().
func (e *Executor) Start(ctx context.Context, cmd *Command) (Process, error) {
	return e.env.Start(ctx, cmd)
}

// Upload copies srcPath to dstPath, creating missing parent directories.
// It delegates directly to the underlying Environment.
func (e *Executor) Upload(ctx context.Context, srcPath, dstPath string, opts ...FileOption) error {
	return e.env.Upload(ctx, srcPath, dstPath, opts...)
}
