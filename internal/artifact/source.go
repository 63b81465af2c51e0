// Package artifact loads the fitted vectorizer, clustering model and
// industry table that every analysis reads from.
package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source opens named artifacts from some backing store.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Location describes where name is read from, for error messages.
	Location(name string) string
}

// DirSource reads artifacts from a local directory.
type DirSource struct {
	Dir string
}

// Open opens name relative to the directory.
func (d DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(d.Location(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	return f, nil
}

// Location returns the file path of name.
func (d DirSource) Location(name string) string {
	return filepath.Join(d.Dir, name)
}

// LoadError reports an artifact that could not be read or decoded.
type LoadError struct {
	Artifact string
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s from %s: %v", e.Artifact, e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
