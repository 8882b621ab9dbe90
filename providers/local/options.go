package local

import (
	"github.com/RedDocMD/dotted"
	"github.com/spf13/afero"
)

// Config holds configuration for the local environment.
type Config struct {
	targetOS dotted.TargetOS
	fs       afero.Fs
}

// Option defines a functional option for the local provider.
type Option func(*Config)

// WithFs makes Upload read and write through fs instead of the OS filesystem.
// Commands always run against the real OS.
func WithFs(fs afero.Fs) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithTargetOS overrides the detected operating system.
func WithTargetOS(os dotted.TargetOS) Option {
	return func(c *Config) {
		c.targetOS = os
	}
}
