package envtest

import (
	"path/filepath"

	"github.com/RedDocMD/dotted"
	"github.com/stretchr/testify/require"
)

func environmentContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryEnvironment,
			Name:        "close-idempotent",
			Description: "Closing an environment multiple times is non-fatal",
			Run: func(t T, env dotted.Environment) {
				require.NoError(t, env.Close())
				require.NoError(t, env.Close())
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "close-post-run-fails",
			Description: "Run fails with ErrEnvironmentClosed after close",
			Run: func(t T, env dotted.Environment) {
				require.NoError(t, env.Close())

				_, err := env.Run(t.Context(), dotted.NewCommand("echo", "dotted-contract"))
				require.ErrorIs(t, err, dotted.ErrEnvironmentClosed)
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "close-post-lookpath-fails",
			Description: "LookPath fails after close",
			Run: func(t T, env dotted.Environment) {
				require.NoError(t, env.Close())

				_, err := env.LookPath(t.Context(), "echo")
				require.Error(t, err)
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "close-post-upload-fails",
			Description: "Upload fails after close",
			Run: func(t T, env dotted.Environment) {
				require.NoError(t, env.Close())

				dir := t.TempDir()

				err := env.Upload(t.Context(), filepath.Join(dir, "src"), filepath.Join(dir, "dst"))
				require.Error(t, err)
			},
		},
	}
}
