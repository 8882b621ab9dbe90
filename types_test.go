package dotted

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "linux", OSLinux.String())
	assert.Equal(t, "darwin", OSDarwin.String())
	assert.Equal(t, "unknown", OSUnknown.String())
	assert.Equal(t, "unknown", TargetOS(42).String())

	assert.Equal(t, runtime.GOOS == "linux", DetectLocalOS() == OSLinux)
	assert.Equal(t, runtime.GOOS == "windows", DetectLocalOS() == OSWindows)
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "command only",
			cmd:  Command{Cmd: "ls"},
			want: "ls",
		},
		{
			name: "command with args",
			cmd:  Command{Cmd: "ls", Args: []string{"-la", "/tmp"}},
			want: "ls -la /tmp",
		},
		{
			name: "args with spaces",
			cmd:  Command{Cmd: "echo", Args: []string{"hello world", "foo"}},
			want: "echo \"hello world\" foo",
		},
		{
			name: "bind mount with spaces",
			cmd:  Command{Cmd: "docker", Args: []string{"run", "-v", "/home/me/my code:/code", "img"}},
			want: "docker run -v \"/home/me/my code:/code\" img",
		},
		{
			name: "empty arg",
			cmd:  Command{Cmd: "echo", Args: []string{""}},
			want: "echo \"\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestCommand_ParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmdStr  string
		want    Command
		wantErr bool
	}{
		{
			name:   "simple command",
			cmdStr: "ls",
			want:   Command{Cmd: "ls", Args: []string{}},
		},
		{
			name:   "command with args",
			cmdStr: "ls -la /tmp",
			want:   Command{Cmd: "ls", Args: []string{"-la", "/tmp"}},
		},
		{
			name:   "quoted args",
			cmdStr: `echo "hello world" foo`,
			want:   Command{Cmd: "echo", Args: []string{"hello world", "foo"}},
		},
		{
			name:   "extra spaces",
			cmdStr: "  ls   -la   /tmp  ",
			want:   Command{Cmd: "ls", Args: []string{"-la", "/tmp"}},
		},
		{
			name:   "docker prefix with sudo",
			cmdStr: "sudo -E docker",
			want:   Command{Cmd: "sudo", Args: []string{"-E", "docker"}},
		},
		{
			name:    "empty command",
			cmdStr:  "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			cmdStr:  "   ",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			cmdStr:  `docker "build`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCommand(tt.cmdStr)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, &tt.want, got)
			}
		})
	}
}

func TestNewCommand(t *testing.T) {
	t.Parallel()

	cmd := NewCommand("ls", "-la", "/tmp")
	assert.Equal(t, "ls", cmd.Cmd)
	assert.Equal(t, []string{"-la", "/tmp"}, cmd.Args)
}

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	t.Run("with command", func(t *testing.T) {
		t.Parallel()

		e := &ExitError{
			Command:  &Command{Cmd: "ls", Args: []string{"-la"}},
			ExitCode: 1,
		}
		assert.Equal(t, "command \"ls -la\" exited with code 1", e.Error())
	})

	t.Run("without command", func(t *testing.T) {
		t.Parallel()

		e := &ExitError{
			ExitCode: 1,
		}

		assert.NotPanics(t, func() {
			assert.Equal(t, "command exited with code 1", e.Error())
		})
	})
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New(`exec: "docker": executable file not found in $PATH`)
	e := &TransportError{Command: NewCommand("docker", "build"), Err: cause}

	assert.Equal(t, `cannot run "docker build": exec: "docker": executable file not found in $PATH`, e.Error())
	require.ErrorIs(t, e, cause)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"exit error", &ExitError{ExitCode: 125}, 125},
		{"wrapped exit error", fmt.Errorf("launch: %w", &ExitError{ExitCode: 2}), 2},
		{"killed by signal", &ExitError{ExitCode: -1}, 1},
		{"other error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
