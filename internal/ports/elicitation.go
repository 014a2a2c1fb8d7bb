// Package ports defines the contracts between the ranking core and the
// interactive I/O layer. These interfaces enable dependency inversion
// and make the elicitation protocol testable without a terminal.
package ports

import (
	"context"
	"errors"
)

// Common port errors surfaced by I/O collaborators.
var (
	// ErrInputExhausted indicates that the judgment channel has no more
	// input. The core treats this as abort-and-discard for the phase in
	// progress: the compare pass wipes its collected judgments, the
	// weighing pass stops silently.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrOutputExists indicates that the result destination already
	// exists and the judge declined to overwrite or redirect it.
	ErrOutputExists = errors.New("output file already exists")
)

// JudgeIO is the line-based request/response channel to the human
// judge. Prompt writes the prompt text and blocks until one response
// line is read back, with surrounding whitespace stripped. There are no
// timeout semantics; a prompt waits indefinitely. End of input is
// reported as ErrInputExhausted.
type JudgeIO interface {
	// Prompt asks a question and returns the judge's response line.
	Prompt(ctx context.Context, text string) (string, error)

	// Say writes informational text to the judge without awaiting a
	// response.
	Say(text string)
}

// ItemSource supplies an ordered sequence of item labels, one per
// line with trailing newlines stripped.
type ItemSource interface {
	// Items returns the labels in source order. Duplicates are allowed
	// here; the working set de-duplicates on insertion.
	Items(ctx context.Context) ([]string, error)
}

// ResultSink persists an ordered sequence of display lines. A sink
// backed by an existing file must not overwrite silently; it confirms
// through the judge channel, offering redirect to a new name.
type ResultSink interface {
	// Write persists the lines, newline-joined. Declining an overwrite
	// confirmation returns ErrOutputExists.
	Write(ctx context.Context, lines []string) error
}

// MetricsCollector receives elicitation counters from the engine. The
// engine calls it synchronously; implementations must be cheap.
type MetricsCollector interface {
	// JudgmentRecorded counts one stored pairwise judgment.
	JudgmentRecorded()

	// JudgmentUndone counts one undo of a previously stored judgment.
	JudgmentUndone()

	// WeightRecorded counts one resolved weight elicitation.
	WeightRecorded()

	// Reprompted counts one rejected response line.
	Reprompted()
}

// NoopMetrics is a MetricsCollector that discards every observation.
// It is the default when no metrics backend is wired in.
type NoopMetrics struct{}

// JudgmentRecorded implements MetricsCollector.
func (NoopMetrics) JudgmentRecorded() {}

// JudgmentUndone implements MetricsCollector.
func (NoopMetrics) JudgmentUndone() {}

// WeightRecorded implements MetricsCollector.
func (NoopMetrics) WeightRecorded() {}

// Reprompted implements MetricsCollector.
func (NoopMetrics) Reprompted() {}
