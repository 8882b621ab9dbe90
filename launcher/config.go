package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RedDocMD/dotted"
)

// Defaults of the dotfiles development container.
const (
	DefaultImage     = "redocmd/dotted"
	DefaultCodeMount = "/code"
	DefaultGoMount   = "/godir"
)

// Config holds everything a docker command is built from.
type Config struct {
	Image string

	// Docker is the base invocation, e.g. `docker` or `sudo docker`.
	Docker *dotted.Command

	HomeDir string
	WorkDir string

	CodeMount string
	GoMount   string
}

// DefaultConfig returns a Config for the current user and working directory.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolving home directory: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}

	return Config{
		Image:     DefaultImage,
		Docker:    dotted.NewCommand("docker"),
		HomeDir:   home,
		WorkDir:   wd,
		CodeMount: DefaultCodeMount,
		GoMount:   DefaultGoMount,
	}, nil
}

// GoDir returns the Go workspace directory mounted for inv.
func (c Config) GoDir(inv Invocation) string {
	if inv.GoDir != "" {
		return inv.GoDir
	}

	return filepath.Join(c.HomeDir, "go")
}

// Command builds the docker command for inv. Streams are left nil so the
// command inherits the caller's terminal.
func (c Config) Command(inv Invocation) (*dotted.Command, error) {
	if c.Image == "" {
		return nil, errors.New("image name is empty")
	}

	if c.Docker == nil {
		return nil, errors.New("docker command is not set")
	}

	switch inv.Mode {
	case ModeBuild:
		return dotted.From(c.Docker).Args("build", "-t", c.Image, ".").Build(), nil
	case ModeRun:
		if c.WorkDir == "" {
			return nil, errors.New("working directory is empty")
		}

		if inv.GoDir == "" && c.HomeDir == "" {
			return nil, errors.New("home directory is empty")
		}

		return dotted.From(c.Docker).
			Args("run", "--rm", "-it").
			Args("-v", c.WorkDir+":"+c.CodeMount).
			Args("-v", c.GoDir(inv)+":"+c.GoMount).
			Arg(c.Image).
			Build(), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", inv.Mode)
	}
}
