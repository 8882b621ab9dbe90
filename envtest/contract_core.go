package envtest

import (
	"strings"

	"github.com/RedDocMD/dotted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coreContracts() []TestCase {
	return []TestCase{
		{
			Category: CategoryCore,
			Name:     "simple-echo",
			Run: func(t T, env dotted.Environment) {
				exec := dotted.NewExecutor(env)
				result, err := exec.RunBuffered(t.Context(), dotted.NewCommand("echo", "hello"))
				require.NoError(t, err)
				require.NotNil(t, result)

				assert.Equal(t, "hello", strings.TrimSpace(string(result.Stdout)))
				assert.Equal(t, 0, result.ExitCode)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "lookpath",
			Description: "LookPath resolves a binary that is always present",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				exec := dotted.NewExecutor(env)

				path, err := exec.LookPath(t.Context(), dotted.NewCommand("sh"))
				require.NoError(t, err)
				assert.NotEmpty(t, path)
			},
		},
	}
}
