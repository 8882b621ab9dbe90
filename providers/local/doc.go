// Package local provides the dotted.Environment for the machine the tools run on.
//
// Commands run through os/exec with the parent's standard streams inherited
// unless the Command sets its own. File uploads go through an afero.Fs, the OS
// filesystem by default, so callers can substitute an in-memory filesystem.
//
// Usage:
//
//	env, _ := local.New()
//	res, _ := env.Run(ctx, dotted.NewCommand("docker", "build", "-t", "redocmd/dotted", "."))
//	_ = res
package local
