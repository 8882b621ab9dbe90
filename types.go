package dotted

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/google/shlex"
)

// Command configures a process execution.
type Command struct {
	Cmd  string   // Binary name or path to executable
	Args []string // Arguments to pass to the binary
	Env  []string // Extra environment variables in "KEY=VALUE" format
	Dir  string   // Working directory for execution

	// Standard streams. A nil stream is inherited from the parent process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Tty requests a provider-allocated PTY.
	Tty bool
}

// Validate checks that the command is well-formed.
func (c *Command) Validate() error {
	if c == nil {
		return errors.New("command cannot be nil")
	}

	if strings.TrimSpace(c.Cmd) == "" {
		return errors.New("command binary cannot be empty")
	}

	return nil
}

// NewCommand creates a new Command with the given binary and arguments.
func NewCommand(binary string, args ...string) *Command {
	return &Command{
		Cmd:  binary,
		Args: args,
	}
}

// String renders the command the way a user would type it in a shell.
// Arguments containing whitespace are double-quoted.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Cmd
	}

	var b strings.Builder
	b.WriteString(c.Cmd)

	for _, arg := range c.Args {
		b.WriteString(" ")

		if arg == "" || strings.ContainsAny(arg, " \t") {
			fmt.Fprintf(&b, "%q", arg)
		} else {
			b.WriteString(arg)
		}
	}

	return b.String()
}

// ParseCommand splits a shell-like command string into a Command.
// Quoting follows shell rules, so `sudo "my docker"` yields two words.
func ParseCommand(cmdStr string) (*Command, error) {
	parts, err := shlex.Split(cmdStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}

	return &Command{
		Cmd:  parts[0],
		Args: parts[1:],
	}, nil
}

// Result contains metadata about a completed command execution.
type Result struct {
	ExitCode int           // Process exit code (0 indicates success)
	Duration time.Duration // Wall time of the execution
	Error    error         // Wait error, distinct from a non-zero exit code
}

// BufferedResult extends Result with captured stdout/stderr.
// Returned by Executor.RunBuffered.
type BufferedResult struct {
	Result

	Stdout []byte
	Stderr []byte
}

// TargetOS identifies the operating system an Environment runs commands on.
type TargetOS int

const (
	OSUnknown TargetOS = iota
	OSLinux
	OSWindows
	OSDarwin
)

var targetOSNames = map[TargetOS]string{
	OSLinux:   "linux",
	OSWindows: "windows",
	OSDarwin:  "darwin",
}

func (t TargetOS) String() string {
	if name, ok := targetOSNames[t]; ok {
		return name
	}

	return "unknown"
}

// DetectLocalOS returns the TargetOS of the running process.
func DetectLocalOS() TargetOS {
	for t, name := range targetOSNames {
		if name == runtime.GOOS {
			return t
		}
	}

	return OSUnknown
}
