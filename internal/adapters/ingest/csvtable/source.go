package csvtable

import (
	"context"
	"io"
	"os"
	"strings"
)

// Source opens the survey export
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// FileSource reads a CSV file from disk
type FileSource struct {
	Path string
}

// Open opens the file; ctx is only checked before the open
func (f FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(f.Path)
}

// Name returns the file path
func (f FileSource) Name() string { return f.Path }

// StringSource serves an in-memory export
type StringSource struct {
	Label string
	Data  string
}

// Open returns a reader over Data
func (s StringSource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.Data)), nil
}

// Name returns Label
func (s StringSource) Name() string { return s.Label }
