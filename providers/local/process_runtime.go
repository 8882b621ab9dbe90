package local

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/RedDocMD/dotted"
)

// Wait blocks until the command completes.
// A non-zero exit is reported as *dotted.ExitError; other wait failures
// (e.g. context cancellation) are returned unchanged.
func (p *Process) Wait() error {
	p.mu.RLock()

	if p.closed {
		p.mu.RUnlock()

		return fmt.Errorf("cannot wait on process %q: already closed", p.cmd.String())
	}

	if p.done == nil {
		p.mu.RUnlock()

		return fmt.Errorf("cannot wait on process %q: not started", p.cmd.String())
	}

	done := p.done
	p.mu.RUnlock()

	<-done

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.result.Error == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(p.result.Error, &exitErr) {
		return &dotted.ExitError{
			Command:  p.cmd,
			ExitCode: exitErr.ExitCode(),
			Cause:    p.result.Error,
		}
	}

	return p.result.Error
}

// Result returns a copy of the execution metadata.
// Before the process has finished it returns an empty Result.
func (p *Process) Result() *dotted.Result {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.result == nil {
		return &dotted.Result{}
	}

	res := *p.result

	return &res
}

// Signal sends an OS signal to the running process.
func (p *Process) Signal(sig os.Signal) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("cannot signal process %q: already closed", p.cmd.String())
	}

	if p.execCmd == nil || p.execCmd.Process == nil {
		return fmt.Errorf("cannot signal process %q: not started", p.cmd.String())
	}

	return p.execCmd.Process.Signal(sig)
}
