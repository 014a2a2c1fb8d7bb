package domain

// SeekableIterator is a replayable cursor over an immutable slice
// snapshot. It supports forward iteration plus arbitrary backward and
// forward seeking, which is what lets an elicitation loop re-ask the
// previous question on undo.
//
// The elements are snapshotted at construction; mutating the source
// slice afterwards does not affect the iterator. Seeking is O(1) and
// has no side effect beyond moving the cursor.
type SeekableIterator[T any] struct {
	// elems is the snapshot being traversed.
	elems []T

	// index is the cursor: the position Next will return.
	index int
}

// NewSeekableIterator creates an iterator over a copy of elems with the
// cursor at position 0.
func NewSeekableIterator[T any](elems []T) *SeekableIterator[T] {
	snapshot := make([]T, len(elems))
	copy(snapshot, elems)
	return &SeekableIterator[T]{elems: snapshot}
}

// Reset moves the cursor back to the start of the sequence.
func (it *SeekableIterator[T]) Reset() { it.index = 0 }

// Len returns the length of the underlying sequence.
func (it *SeekableIterator[T]) Len() int { return len(it.elems) }

// Next returns the element at the cursor and advances it. The second
// return value is false once the sequence is exhausted; exhaustion is a
// normal end condition, not an error.
func (it *SeekableIterator[T]) Next() (T, bool) {
	if it.index >= len(it.elems) {
		var zero T
		return zero, false
	}
	v := it.elems[it.index]
	it.index++
	return v, true
}

// Seek adjusts the cursor, either to an absolute index or relative to
// the position before the most recent Next. Next has already advanced
// the cursor by one, so Seek(-1, true) replays the element immediately
// before the one just returned and Seek(0, true) replays the element
// just returned.
//
// A cursor that would land below 0 is clamped to 0: undoing past the
// beginning is allowed and simply replays the first element. A cursor
// at or past the sequence length is an error (*SeekError wrapping
// ErrSeekOverflow), distinct from normal exhaustion, so callers can
// tell "undo past the start" from "seek past the end".
func (it *SeekableIterator[T]) Seek(n int, relative bool) error {
	if relative {
		it.index += n - 1
	} else {
		it.index = n
	}
	if it.index < 0 {
		it.index = 0
	}
	if it.index >= len(it.elems) {
		return &SeekError{Position: it.index, Length: len(it.elems)}
	}
	return nil
}
