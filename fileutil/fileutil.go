// Package fileutil provides the reader wrappers and path checks used when
// copying dotfiles between directory trees.
package fileutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/RedDocMD/dotted"
)

// ErrPathTraversal reports a path that resolves outside its root.
var ErrPathTraversal = errors.New("illegal file path")

// ProgressReader wraps an io.Reader to report progress via a dotted.ProgressFunc.
// Total should be set to the known total size, or 0 if unknown.
type ProgressReader struct {
	io.Reader

	Total   int64
	Current int64
	Fn      dotted.ProgressFunc
}

// Read reads from the underlying reader and reports progress.
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.Reader.Read(p)
	if n > 0 {
		pr.Current += int64(n)
		if pr.Fn != nil {
			pr.Fn(pr.Current, pr.Total)
		}
	}

	return n, err
}

// ContextReader wraps an io.Reader to check for context cancellation
// before each Read call, so that a long io.Copy can be interrupted.
type ContextReader struct {
	Ctx    context.Context //nolint:containedctx
	Reader io.Reader
}

// Read checks for context cancellation before delegating to the underlying reader.
func (cr *ContextReader) Read(p []byte) (int, error) {
	if cr.Ctx.Err() != nil {
		return 0, cr.Ctx.Err()
	}

	return cr.Reader.Read(p)
}

// CheckPathTraversal validates that target is root or a descendant of root,
// after cleaning both. Manifest entries such as "../../etc/passwd" fail here.
func CheckPathTraversal(root, target string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("illegal file path: cannot resolve root %s: %w", root, err)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("illegal file path: cannot resolve target %s: %w", target, err)
	}

	if absRoot == absTarget {
		return nil
	}

	prefix := absRoot
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}

	if !strings.HasPrefix(absTarget, prefix) {
		return fmt.Errorf("%w: %s is not within %s", ErrPathTraversal, target, root)
	}

	return nil
}
