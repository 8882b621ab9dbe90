// Command dockershell builds or enters the dotfiles development container.
//
//	dockershell [--godir GODIR] (build|run)
//
// The docker command is printed before it runs. Its exit status becomes the
// exit status of dockershell.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RedDocMD/dotted"
	"github.com/RedDocMD/dotted/launcher"
	"github.com/RedDocMD/dotted/providers/local"
	"github.com/hashicorp/go-hclog"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	env, err := local.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dockershell:", err)
		os.Exit(1)
	}

	code := run(os.Args[1:], os.Stdout, os.Stderr, env)
	_ = env.Close()
	os.Exit(code)
}

// run executes the command line against env and returns the exit status.
func run(args []string, stdout, stderr io.Writer, env dotted.Environment) int {
	// Parsed before cobra sees args so its hidden "__complete" command is
	// never reachable.
	inv, err := launcher.ParseArgs(args)
	if err != nil {
		return report(err, stdout, stderr)
	}

	cmd := &cobra.Command{
		Use:   "dockershell [--godir GODIR] (build|run)",
		Short: "Build or run the dotfiles development container",
		// The argument grammar is positional and strict; ParseArgs owns it.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launch(cmd.Context(), inv, stdout, stderr, env)
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return report(err, stdout, stderr)
	}

	return 0
}

// report prints err the way its kind requires and returns the exit status.
func report(err error, stdout, stderr io.Writer) int {
	var (
		usageErr *launcher.UsageError
		exitErr  *dotted.ExitError
	)

	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(stdout, usageErr.Msg)
	case errors.As(err, &exitErr):
		// docker has already reported the failure on the inherited stderr.
	default:
		fmt.Fprintln(stderr, "dockershell:", err)
	}

	return dotted.ExitCode(err)
}

func launch(ctx context.Context, inv launcher.Invocation, stdout, stderr io.Writer, env dotted.Environment) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	profile := termenv.ANSI
	if cfg.noColor {
		profile = termenv.Ascii
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:        "dockershell",
		Level:       hclog.LevelFromString(cfg.logLevel),
		Output:      stderr,
		DisableTime: true,
	})

	l := launcher.New(dotted.NewExecutor(env), cfg.Config, stdout, launcher.NewPalette(stdout, profile), log)

	return l.Launch(ctx, inv)
}

type config struct {
	launcher.Config

	noColor  bool
	logLevel string
}

// loadConfig applies DOTTED_IMAGE, DOTTED_DOCKER, DOTTED_LOG_LEVEL and
// NO_COLOR to the defaults.
func loadConfig() (config, error) {
	base, err := launcher.DefaultConfig()
	if err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("DOTTED")
	v.AutomaticEnv()
	v.SetDefault("image", launcher.DefaultImage)
	v.SetDefault("docker", "docker")
	v.SetDefault("log_level", "warn")

	if err := v.BindEnv("no_color", "NO_COLOR"); err != nil {
		return config{}, err
	}

	base.Image = v.GetString("image")

	base.Docker, err = dotted.ParseCommand(v.GetString("docker"))
	if err != nil {
		return config{}, fmt.Errorf("parsing DOTTED_DOCKER: %w", err)
	}

	return config{
		Config:   base,
		noColor:  v.IsSet("no_color"),
		logLevel: v.GetString("log_level"),
	}, nil
}
