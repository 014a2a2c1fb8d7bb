package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur during comparison and ranking
// operations.
var (
	// ErrIdenticalItems indicates an attempt to compare an item
	// against itself.
	ErrIdenticalItems = errors.New("comparison requires two distinct items")

	// ErrEmptyItem indicates that an item label is empty.
	ErrEmptyItem = errors.New("item label cannot be empty")

	// ErrInvalidWeight indicates a weight outside the allowed range.
	ErrInvalidWeight = errors.New("weight must be between 0 and 3")

	// ErrSeekOverflow indicates a seek past the end of the sequence.
	// It is distinct from normal iteration exhaustion, which is a lazy
	// end-of-sequence condition and not an error.
	ErrSeekOverflow = errors.New("seek beyond end of sequence")
)

// UnknownItemError reports an attempt to reorient a Comparison with an
// item that is not one of the two items being compared. It indicates a
// pairing mismatch in the caller, so it must be surfaced rather than
// swallowed.
type UnknownItemError struct {
	// Item is the label that was not part of the comparison.
	Item Item

	// Pair is the canonical pair the comparison ranges over.
	Pair Pair
}

// Error implements the error interface for UnknownItemError.
func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item in comparison: item=%s, pair=%s", e.Item, e.Pair)
}

// SeekError reports a seek that landed outside the sequence bounds.
// It wraps ErrSeekOverflow so callers can match with errors.Is while
// still seeing the offending position.
type SeekError struct {
	// Position is the cursor position the seek computed.
	Position int

	// Length is the length of the underlying sequence.
	Length int
}

// Error implements the error interface for SeekError.
func (e *SeekError) Error() string {
	return fmt.Sprintf("seek error: position=%d, length=%d, err=%v", e.Position, e.Length, ErrSeekOverflow)
}

// Unwrap returns ErrSeekOverflow, supporting errors.Is matching.
func (e *SeekError) Unwrap() error { return ErrSeekOverflow }
