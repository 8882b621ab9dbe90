package launcher

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/RedDocMD/dotted"
	"github.com/hashicorp/go-hclog"
)

// Launcher prints and runs docker commands.
type Launcher struct {
	exec    *dotted.Executor
	cfg     Config
	out     io.Writer
	palette *Palette
	log     hclog.Logger
}

// New returns a Launcher printing to out.
func New(exec *dotted.Executor, cfg Config, out io.Writer, palette *Palette, log hclog.Logger) *Launcher {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Launcher{
		exec:    exec,
		cfg:     cfg,
		out:     out,
		palette: palette,
		log:     log,
	}
}

// Launch builds the command for inv, prints it with a status banner and runs
// it attached to the caller's terminal.
//
// A missing docker binary is reported as *dotted.TransportError before
// anything is printed. A non-zero docker exit is reported as *dotted.ExitError.
// SIGINT and SIGQUIT do not terminate the caller while docker runs, so the
// exit status docker chooses for them is the one reported.
func (l *Launcher) Launch(ctx context.Context, inv Invocation) error {
	cmd, err := l.cfg.Command(inv)
	if err != nil {
		return err
	}

	path, err := l.exec.LookPath(ctx, cmd)
	if err != nil {
		return err
	}

	l.log.Debug("resolved docker", "path", path)

	fmt.Fprintln(l.out, "Command: "+l.palette.Paint(ColorRed, cmd.String()))
	fmt.Fprintln(l.out, l.palette.PaintBold(ColorGreen, banner(inv.Mode)))

	stop := ignoreInterrupts(func(sig os.Signal) {
		l.log.Debug("left signal to docker", "signal", sig)
	})
	defer stop()

	res, err := l.exec.Run(ctx, cmd)
	if res != nil {
		l.log.Debug("docker exited", "code", res.ExitCode, "duration", res.Duration)
	}

	return err
}

func banner(m Mode) string {
	if m == ModeBuild {
		return "Building ..."
	}

	return "Running ..."
}
