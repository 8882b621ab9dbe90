package launcher

import (
	"testing"

	"github.com/RedDocMD/dotted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Image:     DefaultImage,
		Docker:    dotted.NewCommand("docker"),
		HomeDir:   "/home/dev",
		WorkDir:   "/home/dev/src/dotted",
		CodeMount: DefaultCodeMount,
		GoMount:   DefaultGoMount,
	}
}

func TestConfig_Command(t *testing.T) {
	t.Parallel()

	sudo, err := dotted.ParseCommand("sudo docker")
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(*Config)
		inv    Invocation
		want   string
	}{
		{
			name: "build",
			inv:  Invocation{Mode: ModeBuild},
			want: "docker build -t redocmd/dotted .",
		},
		{
			name: "build ignores godir",
			inv:  Invocation{Mode: ModeBuild, GoDir: "/tmp/x"},
			want: "docker build -t redocmd/dotted .",
		},
		{
			name: "run with default godir",
			inv:  Invocation{Mode: ModeRun},
			want: "docker run --rm -it -v /home/dev/src/dotted:/code -v /home/dev/go:/godir redocmd/dotted",
		},
		{
			name: "run with godir",
			inv:  Invocation{Mode: ModeRun, GoDir: "/tmp/x"},
			want: "docker run --rm -it -v /home/dev/src/dotted:/code -v /tmp/x:/godir redocmd/dotted",
		},
		{
			name:   "custom image",
			modify: func(c *Config) { c.Image = "example/dev:latest" },
			inv:    Invocation{Mode: ModeBuild},
			want:   "docker build -t example/dev:latest .",
		},
		{
			name:   "docker behind sudo",
			modify: func(c *Config) { c.Docker = sudo },
			inv:    Invocation{Mode: ModeBuild},
			want:   "sudo docker build -t redocmd/dotted .",
		},
		{
			name:   "working directory with spaces",
			modify: func(c *Config) { c.WorkDir = "/home/dev/my code" },
			inv:    Invocation{Mode: ModeRun},
			want:   `docker run --rm -it -v "/home/dev/my code:/code" -v /home/dev/go:/godir redocmd/dotted`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			if tt.modify != nil {
				tt.modify(&cfg)
			}

			cmd, err := cfg.Command(tt.inv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.String())
			assert.Nil(t, cmd.Stdin)
			assert.Nil(t, cmd.Stdout)
		})
	}
}

func TestConfig_CommandDoesNotModifyBase(t *testing.T) {
	t.Parallel()

	cfg := testConfig()

	_, err := cfg.Command(Invocation{Mode: ModeRun})
	require.NoError(t, err)
	assert.Empty(t, cfg.Docker.Args)
}

func TestConfig_CommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		inv     Invocation
		wantErr string
	}{
		{name: "empty image", modify: func(c *Config) { c.Image = "" }, inv: Invocation{Mode: ModeBuild}, wantErr: "image name is empty"},
		{name: "no docker", modify: func(c *Config) { c.Docker = nil }, inv: Invocation{Mode: ModeBuild}, wantErr: "docker command is not set"},
		{name: "no workdir", modify: func(c *Config) { c.WorkDir = "" }, inv: Invocation{Mode: ModeRun}, wantErr: "working directory is empty"},
		{name: "no home", modify: func(c *Config) { c.HomeDir = "" }, inv: Invocation{Mode: ModeRun}, wantErr: "home directory is empty"},
		{name: "unknown mode", inv: Invocation{Mode: "exec"}, wantErr: `unknown mode "exec"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			if tt.modify != nil {
				tt.modify(&cfg)
			}

			_, err := cfg.Command(tt.inv)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg, err := DefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultImage, cfg.Image)
	assert.Equal(t, "docker", cfg.Docker.String())
	assert.NotEmpty(t, cfg.HomeDir)
	assert.NotEmpty(t, cfg.WorkDir)
}
