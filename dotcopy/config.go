package dotcopy

import (
	"errors"
)

// Defaults used by the dotfiles container image.
const (
	DefaultManifestPath = "/root/data/loc.dat"
	DefaultSourceRoot   = "/root/data"
	DefaultDestRoot     = "/root"
)

// Config locates the manifest and the two directory trees.
type Config struct {
	ManifestPath string
	SourceRoot   string
	DestRoot     string

	// DryRun logs every planned copy and changes nothing.
	DryRun bool
}

// DefaultConfig returns the configuration of the dotfiles container image.
func DefaultConfig() Config {
	return Config{
		ManifestPath: DefaultManifestPath,
		SourceRoot:   DefaultSourceRoot,
		DestRoot:     DefaultDestRoot,
	}
}

// Validate reports missing settings.
func (c Config) Validate() error {
	var errs []error

	if c.ManifestPath == "" {
		errs = append(errs, errors.New("manifest path is empty"))
	}

	if c.SourceRoot == "" {
		errs = append(errs, errors.New("source root is empty"))
	}

	if c.DestRoot == "" {
		errs = append(errs, errors.New("destination root is empty"))
	}

	return errors.Join(errs...)
}
