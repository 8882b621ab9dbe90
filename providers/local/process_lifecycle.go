package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/RedDocMD/dotted"
)

// Close releases resources associated with the process.
// A process still running is killed.
func (p *Process) Close() error {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()

		return nil
	}

	running := p.execCmd != nil && p.execCmd.Process != nil && p.done != nil
	done := p.done
	p.closed = true
	p.mu.Unlock()

	// Kill and wait outside of lock to avoid deadlock with the wait goroutine.
	if running {
		select {
		case <-done:
		default:
			p.kill()
			<-done
		}
	}

	return nil
}

func (p *Process) kill() {
	pid := p.execCmd.Process.Pid
	if pid <= 0 {
		return
	}

	if p.ownGroup {
		_ = killProcessGroup(pid)

		return
	}

	_ = p.execCmd.Process.Kill()
}

func (p *Process) start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("cannot start process %q: already closed", p.cmd.String())
	}

	if p.cmd.Tty {
		return fmt.Errorf("cannot start process %q: %w", p.cmd.String(), dotted.ErrNotSupported)
	}

	p.execCmd = exec.CommandContext(ctx, p.cmd.Cmd, p.cmd.Args...)
	p.execCmd.Dir = p.cmd.Dir

	if len(p.cmd.Env) > 0 {
		p.execCmd.Env = append(os.Environ(), p.cmd.Env...)
	}

	// nil streams are inherited: os/exec would otherwise connect them to the null device.
	p.execCmd.Stdin = readerOr(p.cmd.Stdin, os.Stdin)
	p.execCmd.Stdout = writerOr(p.cmd.Stdout, os.Stdout)
	p.execCmd.Stderr = writerOr(p.cmd.Stderr, os.Stderr)

	// A child reading the controlling terminal must stay in the foreground
	// process group, or the first read stops it with SIGTTIN.
	if p.execCmd.Stdin != os.Stdin {
		setProcessGroup(p.execCmd)
		p.ownGroup = true
	}

	startTime := time.Now()

	if err := p.execCmd.Start(); err != nil {
		return &dotted.TransportError{Command: p.cmd, Err: err}
	}

	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		err := p.execCmd.Wait()
		duration := time.Since(startTime)

		exitCode := 0
		if p.execCmd.ProcessState != nil {
			exitCode = p.execCmd.ProcessState.ExitCode()
		}

		p.mu.Lock()
		p.result = &dotted.Result{
			ExitCode: exitCode,
			Duration: duration,
			Error:    err,
		}
		p.mu.Unlock()
	}()

	return nil
}

func readerOr(r io.Reader, def *os.File) io.Reader {
	if r == nil {
		return def
	}

	return r
}

func writerOr(w io.Writer, def *os.File) io.Writer {
	if w == nil {
		return def
	}

	return w
}
