package envtest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/RedDocMD/dotted"
	"github.com/stretchr/testify/require"
)

// readBack reads path through the environment itself, so the contract also
// holds for providers whose filesystem is not the test's.
func readBack(t T, env dotted.Environment, path string) string {
	exec := dotted.NewExecutor(env)

	res, err := exec.RunBuffered(t.Context(), dotted.NewCommand("cat", path))
	require.NoError(t, err)

	return strings.TrimSpace(string(res.Stdout))
}

func writeSource(t T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func fileContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryFilesystem,
			Name:        "upload-failure-source-missing",
			Description: "Uploading a missing source fails with fs.ErrNotExist",
			Run: func(t T, env dotted.Environment) {
				src := filepath.Join(t.TempDir(), "this-file-really-does-not-exist")
				dst := filepath.Join(t.TempDir(), "should-not-exist")

				err := env.Upload(t.Context(), src, dst)
				require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-creates-parent-dirs",
			Description: "Upload creates every missing ancestor of the destination",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				src := writeSource(t, "vimrc", "set nocompatible")
				dst := filepath.Join(t.TempDir(), "home", ".config", "vim", "vimrc")

				require.NoError(t, env.Upload(t.Context(), src, dst))
				require.Equal(t, "set nocompatible", readBack(t, env, dst))
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-overwrites",
			Description: "Upload replaces an existing destination, also a longer one",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				dst := filepath.Join(t.TempDir(), ".bashrc")
				require.NoError(t, os.WriteFile(dst, []byte("a considerably longer previous content"), 0o644))

				src := writeSource(t, "bashrc", "alias ll='ls -l'")

				require.NoError(t, env.Upload(t.Context(), src, dst))
				require.Equal(t, "alias ll='ls -l'", readBack(t, env, dst))
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-idempotent",
			Description: "Uploading the same file twice yields the same destination",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				src := writeSource(t, "gitconfig", "[core]\n\teditor = vim")
				dst := filepath.Join(t.TempDir(), "home", ".gitconfig")

				require.NoError(t, env.Upload(t.Context(), src, dst))
				first := readBack(t, env, dst)

				require.NoError(t, env.Upload(t.Context(), src, dst))
				require.Equal(t, first, readBack(t, env, dst))
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-recursive-directory",
			Description: "Upload copies a directory tree",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				srcDir := filepath.Join(t.TempDir(), "nvim")
				require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "lua"), 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(srcDir, "init.lua"), []byte("root file"), 0o644))
				require.NoError(t, os.WriteFile(filepath.Join(srcDir, "lua", "opts.lua"), []byte("sub file"), 0o644))

				dstDir := filepath.Join(t.TempDir(), ".config", "nvim")

				require.NoError(t, env.Upload(t.Context(), srcDir, dstDir))
				require.Equal(t, "root file", readBack(t, env, filepath.Join(dstDir, "init.lua")))
				require.Equal(t, "sub file", readBack(t, env, filepath.Join(dstDir, "lua", "opts.lua")))
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-respects-permissions",
			Description: "WithPermissions sets the destination mode",
			Prereq:      posixOnly,
			Run: func(t T, env dotted.Environment) {
				src := writeSource(t, "netrc", "machine example.com")
				dst := filepath.Join(t.TempDir(), ".netrc")

				require.NoError(t, env.Upload(t.Context(), src, dst, dotted.WithPermissions(0o600)))

				info, err := os.Stat(dst)
				require.NoError(t, err)
				require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
			},
		},
	}
}
