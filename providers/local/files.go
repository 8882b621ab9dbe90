package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/RedDocMD/dotted"
	"github.com/RedDocMD/dotted/fileutil"
	"github.com/spf13/afero"
)

const dirMode os.FileMode = 0o755

// Upload copies srcPath to dstPath on the environment filesystem.
// Missing parent directories of dstPath are created and an existing
// destination file is truncated and overwritten.
// A directory source is copied recursively unless disabled with
// dotted.WithRecursive(false).
func (e *Environment) Upload(ctx context.Context, srcPath, dstPath string, opts ...dotted.FileOption) error {
	if e.isClosed() {
		return fmt.Errorf("cannot upload %s: %w", srcPath, dotted.ErrEnvironmentClosed)
	}

	cfg := dotted.DefaultFileConfig()
	for _, o := range opts {
		o(&cfg)
	}

	info, err := e.fs.Stat(srcPath)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if !cfg.Recursive {
			return fmt.Errorf("cannot upload directory %s: recursive copy is disabled", srcPath)
		}

		return e.copyDir(ctx, srcPath, dstPath, cfg)
	}

	return e.copyFile(ctx, srcPath, dstPath, fileMode(info, cfg), cfg.Progress)
}

func (e *Environment) copyDir(ctx context.Context, src, dst string, cfg dotted.FileConfig) error {
	return afero.Walk(e.fs, src, func(path string, info os.FileInfo, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(dst, relPath)
		if err := fileutil.CheckPathTraversal(dst, targetPath); err != nil {
			return err
		}

		if info.IsDir() {
			return e.fs.MkdirAll(targetPath, info.Mode().Perm()|0o700)
		}

		return e.copyFile(ctx, path, targetPath, fileMode(info, cfg), cfg.Progress)
	})
}

func (e *Environment) copyFile(
	ctx context.Context,
	src, dst string,
	mode os.FileMode,
	progress dotted.ProgressFunc,
) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	srcFile, err := e.fs.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = srcFile.Close() }()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	// Truncating the destination would empty the source before it is read.
	if dstInfo, err := e.fs.Stat(dst); err == nil && sameFile(src, dst, srcInfo, dstInfo) {
		return fmt.Errorf("cannot copy %s to %s: %w", src, dst, dotted.ErrSameFile)
	}

	if err := e.fs.MkdirAll(filepath.Dir(dst), dirMode); err != nil {
		return err
	}

	dstFile, err := e.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	var reader io.Reader = &fileutil.ContextReader{Ctx: ctx, Reader: srcFile}
	if progress != nil {
		reader = &fileutil.ProgressReader{Reader: reader, Total: srcInfo.Size(), Fn: progress}
	}

	if _, err := io.Copy(dstFile, reader); err != nil {
		_ = dstFile.Close()

		return err
	}

	// OpenFile only applies mode when creating; an overwritten file keeps
	// its old mode unless it is set explicitly.
	if err := e.fs.Chmod(dst, mode); err != nil && !errors.Is(err, os.ErrPermission) {
		_ = dstFile.Close()

		return err
	}

	if err := dstFile.Sync(); err != nil {
		_ = dstFile.Close()

		return err
	}

	return dstFile.Close()
}

// sameFile compares inode identity where the filesystem exposes it
// (os.SameFile reports false for non-OS FileInfo) and cleaned paths otherwise.
func sameFile(src, dst string, srcInfo, dstInfo os.FileInfo) bool {
	return filepath.Clean(src) == filepath.Clean(dst) || os.SameFile(srcInfo, dstInfo)
}

func fileMode(info os.FileInfo, cfg dotted.FileConfig) os.FileMode {
	if cfg.Permissions != 0 {
		return cfg.Permissions
	}

	return info.Mode().Perm()
}
