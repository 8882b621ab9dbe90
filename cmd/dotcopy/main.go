// Command dotcopy installs the dotfiles listed in a manifest.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/RedDocMD/dotted/dotcopy"
	"github.com/RedDocMD/dotted/providers/local"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyManifest   = "manifest"
	keySourceRoot = "source-root"
	keyDestRoot   = "dest-root"
	keyDryRun     = "dry-run"
	keyVerbose    = "verbose"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

// run executes the command line and returns the process exit status.
func run(args []string, out, errOut io.Writer, fsys afero.Fs) int {
	cmd := newRootCmd(fsys, errOut)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(errOut, "dotcopy:", err)

		return 1
	}

	return 0
}

func newRootCmd(fsys afero.Fs, errOut io.Writer) *cobra.Command {
	v := viper.New()

	var configFile string

	cmd := &cobra.Command{
		Use:   "dotcopy",
		Short: "Copy dotfiles into place",
		Long: `Reads a manifest of "<name> <dest>" lines and copies each
<source-root>/<name> to <dest-root>/<dest>, creating missing directories
and overwriting existing files.

Settings may also come from DOTTED_* environment variables or a dotted.yaml
config file in ~/.dotted or ~/.config/dotted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			return readConfig(v, fsys, configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := dotcopy.Config{
				ManifestPath: v.GetString(keyManifest),
				SourceRoot:   v.GetString(keySourceRoot),
				DestRoot:     v.GetString(keyDestRoot),
				DryRun:       v.GetBool(keyDryRun),
			}

			log := newLogger(errOut, v.GetBool(keyVerbose))

			env, err := local.New(local.WithFs(fsys))
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			stats, err := dotcopy.New(cfg, fsys, env, log).Run(cmd.Context())
			if err != nil {
				return err
			}

			log.Debug("done", "entries", stats.Entries, "copied", stats.Copied)

			return nil
		},
	}

	defaults := dotcopy.DefaultConfig()

	flags := cmd.Flags()
	flags.String(keyManifest, defaults.ManifestPath, "manifest file")
	flags.String(keySourceRoot, defaults.SourceRoot, "directory holding the dotfiles")
	flags.String(keyDestRoot, defaults.DestRoot, "directory the dotfiles are copied into")
	flags.Bool(keyDryRun, false, "log the planned copies without copying")
	flags.BoolP(keyVerbose, "v", false, "log every copied file")
	flags.StringVar(&configFile, "config", "", "config file (default: dotted.yaml in ~/.dotted or ~/.config/dotted)")

	v.SetEnvPrefix("DOTTED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// readConfig loads the optional config file. Only an explicitly named file
// is required to exist.
func readConfig(v *viper.Viper, fsys afero.Fs, path string) error {
	v.SetFs(fsys)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}

		return nil
	}

	v.SetConfigName("dotted")
	v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".dotted"))
		v.AddConfigPath(filepath.Join(home, ".config", "dotted"))
	}

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        "dotcopy",
		Level:       level,
		Output:      w,
		DisableTime: true,
	})
}
