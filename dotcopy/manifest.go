package dotcopy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// ErrMalformedLine reports a manifest line that does not have exactly two fields.
var ErrMalformedLine = errors.New("expected exactly two fields: <name> <dest>")

// Entry is one manifest record: copy SourceRoot/Name to DestRoot/Dest.
type Entry struct {
	Name string
	Dest string
	Line int // 1-based line in the manifest
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s", e.Name, e.Dest)
}

// ParseError reports the manifest line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("manifest line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a manifest: one `<name> <dest>` record per line.
//
// Fields are separated by whitespace and taken literally: quotes, backslashes
// and '#' have no special meaning. Blank lines are skipped. Any other line must
// have exactly two fields; the first one that does not fails the whole parse
// with a *ParseError.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		fields := strings.Fields(text)

		switch len(fields) {
		case 0:
			continue
		case 2:
			entries = append(entries, Entry{Name: fields[0], Dest: fields[1], Line: lineNo})
		default:
			return nil, &ParseError{Line: lineNo, Text: text, Err: ErrMalformedLine}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return entries, nil
}

// Load opens the manifest at path on fsys and parses it.
func Load(fsys afero.Fs, path string) ([]Entry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}
