// Package fs provides file-based storage for scrape results.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagescrape"
)

// Ensure Sink implements pagescrape.Sink at compile time.
var _ pagescrape.Sink = (*Sink)(nil)

// Sink writes the encoded result to a fixed file inside a directory.
// Writes go to a temporary file in the same directory which is then
// renamed over the target, so readers never observe a partial file.
type Sink struct {
	dir  string
	name string
}

// NewSink creates a Sink writing dir/pagescrape.OutputFile.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir, name: pagescrape.OutputFile}
}

// Path returns the file the sink writes to.
func (s *Sink) Path() string {
	return filepath.Join(s.dir, s.name)
}

// Store creates the directory if needed and replaces the output file with data.
func (s *Sink) Store(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "store canceled: %v", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "create output directory: %v", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.name+".*.tmp")
	if err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "create temp file: %v", err)
	}
	tmpName := tmp.Name()

	// Remove the temp file unless it was renamed into place.
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return pagescrape.Errorf(pagescrape.EINTERNAL, "write output: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "close output: %v", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "chmod output: %v", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "replace output: %v", err)
	}
	committed = true
	return nil
}
