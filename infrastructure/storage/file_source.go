// Package storage provides the file-backed item source and result sink
// for ranking sessions.
package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahrav/pairwise/internal/ports"
)

var _ ports.ItemSource = (*FileSource)(nil)

// FileSource reads item labels from a text file, one per line with
// trailing newlines stripped. Blank lines are skipped; duplicates are
// passed through for the working set to de-duplicate.
type FileSource struct {
	path string
}

// NewFileSource creates a source over the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Items returns the labels in file order.
func (s *FileSource) Items(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open item file: %w", err)
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read item file: %w", err)
	}
	return items, nil
}
