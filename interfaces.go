// Package dotted holds the command-execution and file-transfer layer shared by
// the dotted tools (dotcopy and dockershell).
//
// # Core Interfaces
//
// - Environment: the system where commands run and files are copied.
// - Process: a running command handle (Wait, Signal, Close).
//
// # Streams
//
// Commands stream by default. A nil Stdin/Stdout/Stderr on a Command means the
// child inherits the parent's stream, which is what an interactive
// `docker run -it` needs. Use Executor.RunBuffered to capture output instead.
//
// # Testing
//
// Code that builds commands should accept an Environment (or an Executor) so
// tests can substitute providers/mock and assert on the constructed Command
// without spawning anything.
package dotted

import (
	"context"
	"io"
	"os"
)

// Environment abstracts the system where commands are executed and files are copied.
type Environment interface {
	io.Closer

	// Run executes a command synchronously.
	// Output is not captured; use Command.Stdout/Stderr or Executor.RunBuffered.
	Run(ctx context.Context, cmd *Command) (*Result, error)

	// Start initiates a command asynchronously.
	// The caller must release the returned Process via Wait() or Close().
	Start(ctx context.Context, cmd *Command) (Process, error)

	// TargetOS returns the operating system of the environment.
	TargetOS() TargetOS

	// Upload copies a file or directory tree from srcPath to dstPath,
	// replacing an existing destination file.
	//
	// It creates any missing parent directories at the destination.
	Upload(ctx context.Context, srcPath, dstPath string, opts ...FileOption) error

	// LookPath searches for an executable named file in the directories named by
	// the PATH environment variable.
	LookPath(ctx context.Context, file string) (string, error)
}

// Process represents a command that has been started but not yet completed.
type Process interface {
	io.Closer

	// Wait blocks until the process exits.
	// Returns an *ExitError if the exit code is non-zero.
	Wait() error

	// Result returns exit code and timing (only valid after Wait).
	Result() *Result

	// Signal sends an OS signal to the process.
	Signal(sig os.Signal) error
}
