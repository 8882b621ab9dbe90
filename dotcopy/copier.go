package dotcopy

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/RedDocMD/dotted"
	"github.com/RedDocMD/dotted/fileutil"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// CopyError reports the manifest entry whose copy failed.
// The underlying filesystem error is preserved, so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, fs.ErrPermission) work on it.
type CopyError struct {
	Entry Entry
	Src   string
	Dest  string
	Err   error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("manifest line %d: copying %s to %s: %v", e.Entry.Line, e.Src, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Stats summarizes a run.
type Stats struct {
	Entries int // entries read from the manifest
	Copied  int // entries copied (0 in dry-run mode)
}

// Copier copies the entries of a manifest.
type Copier struct {
	cfg  Config
	fs   afero.Fs
	exec *dotted.Executor
	log  hclog.Logger
}

// New returns a Copier that reads the manifest from fsys and copies through env.
// env should operate on the same filesystem as fsys.
func New(cfg Config, fsys afero.Fs, env dotted.Environment, log hclog.Logger) *Copier {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Copier{
		cfg:  cfg,
		fs:   fsys,
		exec: dotted.NewExecutor(env),
		log:  log,
	}
}

// Run loads the manifest and copies every entry in order, stopping at the
// first error. The manifest is parsed completely before anything is copied.
func (c *Copier) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := c.cfg.Validate(); err != nil {
		return stats, fmt.Errorf("invalid configuration: %w", err)
	}

	entries, err := Load(c.fs, c.cfg.ManifestPath)
	if err != nil {
		return stats, err
	}

	stats.Entries = len(entries)
	c.log.Debug("loaded manifest", "path", c.cfg.ManifestPath, "entries", len(entries))

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := c.Copy(ctx, e); err != nil {
			return stats, err
		}

		if !c.cfg.DryRun {
			stats.Copied++
		}
	}

	return stats, nil
}

// Resolve returns the source and destination paths of e.
// Paths escaping their root (e.g. "../../etc/passwd") are rejected, as is an
// entry whose destination is its own source.
func (c *Copier) Resolve(e Entry) (string, string, error) {
	src := filepath.Join(c.cfg.SourceRoot, e.Name)
	dest := filepath.Join(c.cfg.DestRoot, e.Dest)

	if err := fileutil.CheckPathTraversal(c.cfg.SourceRoot, src); err != nil {
		return src, dest, &CopyError{Entry: e, Src: src, Dest: dest, Err: err}
	}

	if err := fileutil.CheckPathTraversal(c.cfg.DestRoot, dest); err != nil {
		return src, dest, &CopyError{Entry: e, Src: src, Dest: dest, Err: err}
	}

	if src == dest {
		return src, dest, &CopyError{Entry: e, Src: src, Dest: dest, Err: dotted.ErrSameFile}
	}

	return src, dest, nil
}

// Copy copies a single entry, creating the destination's parent directories.
func (c *Copier) Copy(ctx context.Context, e Entry) error {
	src, dest, err := c.Resolve(e)
	if err != nil {
		return err
	}

	if c.cfg.DryRun {
		c.log.Info("would copy", "src", src, "dest", dest)

		return nil
	}

	var opts []dotted.FileOption
	if c.log.IsTrace() {
		opts = append(opts, dotted.WithProgress(func(current, total int64) {
			c.log.Trace("copying", "dest", dest, "bytes", current, "total", total)
		}))
	}

	if err := c.exec.Upload(ctx, src, dest, opts...); err != nil {
		return &CopyError{Entry: e, Src: src, Dest: dest, Err: err}
	}

	c.log.Debug("copied", "src", src, "dest", dest)

	return nil
}
