//go:build windows

package local

import (
	"os/exec"
	"strconv"
)

// killProcessGroup kills the process tree rooted at PID.
//
// TODO(windows): use Job Objects instead of taskkill /T.
func killProcessGroup(pid int) error {
	return exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(pid)).Run()
}

// setProcessGroup is a no-op until Job Objects are used.
func setProcessGroup(_ *exec.Cmd) {}
