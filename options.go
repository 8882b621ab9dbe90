package dotted

import "os"

// FileConfig holds configuration for file transfers.
type FileConfig struct {
	Permissions os.FileMode // Destination mode override (0 preserves the source mode)
	Recursive   bool        // Copy directory sources recursively
	Progress    ProgressFunc
}

// DefaultFileConfig returns defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Recursive: true,
	}
}

// FileOption defines a functional option for file transfers.
type FileOption func(*FileConfig)

// WithPermissions forces a specific destination file mode.
func WithPermissions(mode os.FileMode) FileOption {
	return func(c *FileConfig) {
		c.Permissions = mode
	}
}

// WithRecursive enables or disables copying of directory sources.
func WithRecursive(recursive bool) FileOption {
	return func(c *FileConfig) {
		c.Recursive = recursive
	}
}

// ProgressFunc is called with the bytes copied so far and the total size
// of the file being copied.
type ProgressFunc func(current, total int64)

// WithProgress calls fn with progress updates.
func WithProgress(fn ProgressFunc) FileOption {
	return func(c *FileConfig) {
		c.Progress = fn
	}
}
