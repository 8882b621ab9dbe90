// Package launcher builds and runs the docker commands of the dotfiles
// development container.
package launcher

import (
	"fmt"
)

// Mode selects the docker subcommand.
type Mode string

const (
	ModeBuild Mode = "build"
	ModeRun   Mode = "run"
)

// GoDirFlag names the Go workspace directory to mount.
const GoDirFlag = "--godir"

// Invocation is a validated command line.
type Invocation struct {
	Mode Mode

	// GoDir is the value of --godir, empty when the flag was not given.
	GoDir string
}

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Usage messages.
const (
	usageShape   = "Expected: [--godir GODIR] [build | run]"
	usageCommand = `Expected command to be "build" or "run"`
	usageFlag    = "Expected arg to be " + GoDirFlag
)

// ParseArgs validates args (without the program name).
//
// Accepted shapes are `<mode>` and `--godir <dir> <mode>`. The flag must come
// first and be spelled exactly; with `build` the directory is accepted and
// ignored.
func ParseArgs(args []string) (Invocation, error) {
	if len(args) != 1 && len(args) != 3 {
		return Invocation{}, &UsageError{Msg: usageShape}
	}

	mode := Mode(args[len(args)-1])
	if mode != ModeBuild && mode != ModeRun {
		return Invocation{}, &UsageError{Msg: usageCommand}
	}

	inv := Invocation{Mode: mode}

	if len(args) == 3 {
		if args[0] != GoDirFlag {
			return Invocation{}, &UsageError{Msg: usageFlag}
		}

		if args[1] == "" {
			return Invocation{}, &UsageError{Msg: fmt.Sprintf("%s requires a directory", GoDirFlag)}
		}

		inv.GoDir = args[1]
	}

	return inv, nil
}
