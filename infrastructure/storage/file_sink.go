package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahrav/pairwise/internal/ports"
)

var _ ports.ResultSink = (*FileSink)(nil)

// FileSink persists rank lines to a file, newline-joined. An existing
// destination is never overwritten silently: depending on the
// configured policy the sink overwrites, refuses, or asks the judge
// with an option to redirect to a new filename.
type FileSink struct {
	path   string
	policy string
	judge  ports.JudgeIO
}

// NewFileSink creates a sink writing to path under the given conflict
// policy ("prompt", "overwrite", or "fail"). The judge channel carries
// the confirmation dialogue for the prompt policy.
func NewFileSink(path, policy string, judge ports.JudgeIO) *FileSink {
	if policy == "" {
		policy = "prompt"
	}
	return &FileSink{path: filepath.Clean(path), policy: policy, judge: judge}
}

// Write persists the lines. Declining the overwrite confirmation (or
// the "fail" policy hitting an existing file) returns ErrOutputExists;
// nothing is written in that case.
func (s *FileSink) Write(ctx context.Context, lines []string) error {
	return s.writeTo(ctx, s.path, lines)
}

func (s *FileSink) writeTo(ctx context.Context, path string, lines []string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return s.writeForced(path, lines)
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	switch s.policy {
	case "overwrite":
		return s.writeForced(path, lines)
	case "fail":
		return fmt.Errorf("%s: %w", path, ports.ErrOutputExists)
	}

	s.judge.Say(fmt.Sprintf("File [%s] already exists.", path))
	answer, err := s.judge.Prompt(ctx, "Overwrite (y/N/r)? ")
	if err != nil {
		return fmt.Errorf("overwrite confirmation: %w", err)
	}
	lower := strings.ToLower(answer)
	switch {
	case strings.HasPrefix(lower, "y"):
		return s.writeForced(path, lines)
	case strings.HasPrefix(lower, "r"):
		newName, err := s.judge.Prompt(ctx, "New file name: ")
		if err != nil {
			return fmt.Errorf("redirect prompt: %w", err)
		}
		if newName == "" {
			return fmt.Errorf("%s: %w", path, ports.ErrOutputExists)
		}
		// The redirected name goes through the same conflict protocol.
		return s.writeTo(ctx, filepath.Clean(newName), lines)
	default:
		return fmt.Errorf("%s: %w", path, ports.ErrOutputExists)
	}
}

// writeForced creates (or truncates) the file and writes the joined
// lines. The handle is released even when the write fails partway, and
// the failure is surfaced.
func (s *FileSink) writeForced(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if _, err = f.WriteString(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.judge.Say(fmt.Sprintf("Wrote: %s", path))
	return nil
}
