package envtest

import (
	"strconv"

	"github.com/RedDocMD/dotted"
	"github.com/stretchr/testify/require"
)

const (
	runExitErrorCode  = 13
	waitExitErrorCode = 23
)

func errorContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryErrors,
			Name:        "run-nonzero-returns-exiterror",
			Description: "Run non-zero failures must return *dotted.ExitError with the child's code",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				_, err := env.Run(t.Context(), exitCommand(runExitErrorCode))

				var exitErr *dotted.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, runExitErrorCode, exitErr.ExitCode)
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "start-wait-nonzero-returns-exiterror",
			Description: "Wait non-zero failures must return *dotted.ExitError",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				process, err := env.Start(t.Context(), exitCommand(waitExitErrorCode))
				require.NoError(t, err)

				defer func() { _ = process.Close() }()

				var exitErr *dotted.ExitError
				require.ErrorAs(t, process.Wait(), &exitErr)
				require.Equal(t, waitExitErrorCode, exitErr.ExitCode)
				require.Equal(t, waitExitErrorCode, process.Result().ExitCode)
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "missing-binary-returns-transporterror",
			Description: "A binary that cannot be spawned is a *dotted.TransportError, not an ExitError",
			Run: func(t T, env dotted.Environment) {
				_, err := env.Run(t.Context(), dotted.NewCommand("dotted-contract-no-such-binary"))

				var transportErr *dotted.TransportError
				require.ErrorAs(t, err, &transportErr)
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "tty-unsupported-normalized",
			Description: "If TTY is unsupported by a provider, it must wrap dotted.ErrNotSupported",
			Run: func(t T, env dotted.Environment) {
				cmd := dotted.NewCommand("echo", "dotted-contract-tty")
				cmd.Tty = true

				process, err := env.Start(t.Context(), cmd)
				if err != nil {
					require.ErrorIs(t, err, dotted.ErrNotSupported)

					return
				}

				defer func() { _ = process.Close() }()

				require.NoError(t, process.Wait())
			},
		},
	}
}

func exitCommand(code int) *dotted.Command {
	return dotted.NewCommand("sh", "-c", "exit "+strconv.Itoa(code))
}
