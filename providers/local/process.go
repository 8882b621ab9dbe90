package local

import (
	"os/exec"
	"sync"

	"github.com/RedDocMD/dotted"
)

// Process implements dotted.Process for local command execution.
// It wraps *exec.Cmd behind the uniform Wait/Signal/Result interface.
type Process struct {
	cmd     *dotted.Command
	execCmd *exec.Cmd

	// ownGroup records whether the child leads its own process group,
	// in which case Close kills the whole group.
	ownGroup bool

	result *dotted.Result
	mu     sync.RWMutex
	done   chan struct{}
	closed bool
}
