package domain

import "fmt"

// Pair is the canonical identity of an unordered item pair. The lower
// label sorts first, so the same two items always produce the same Pair
// regardless of presentation order. Pair is comparable and is used as
// the map key for "has this pair already been judged" lookups.
type Pair struct {
	// Lo is the lexically smaller of the two items.
	Lo Item

	// Hi is the lexically larger of the two items.
	Hi Item
}

// PairOf builds the canonical Pair for two items.
func PairOf(a, b Item) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{Lo: a, Hi: b}
}

// String returns the pair in canonical order for error reporting.
func (p Pair) String() string { return fmt.Sprintf("(%s, %s)", p.Lo, p.Hi) }

// Comparison is a single pairwise judgment: an orientation over two
// distinct items (the first is currently judged best) and an intensity
// weight. Weight 0 means the comparison has not been weighed yet.
//
// Two Comparisons are "the same question" when they range over the same
// unordered pair, regardless of orientation or weight; use SamePair or
// the canonical Pair key for that identity.
type Comparison struct {
	// best and worst hold the current orientation.
	best  Item
	worst Item

	// weight is the judge-assigned intensity of preference, 1 to 3.
	weight int
}

// NewComparison creates a Comparison with the initial orientation
// (a, b) — a tentatively best — and weight 0. The two items must be
// distinct and non-empty.
func NewComparison(a, b Item) (*Comparison, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyItem
	}
	if a == b {
		return nil, fmt.Errorf("%w: %s", ErrIdenticalItems, a)
	}
	return &Comparison{best: a, worst: b}, nil
}

// Best returns the item currently judged better.
func (c *Comparison) Best() Item { return c.best }

// Worst returns the item currently judged worse.
func (c *Comparison) Worst() Item { return c.worst }

// Weight returns the assigned weight, 0 if unweighed.
func (c *Comparison) Weight() int { return c.weight }

// Pair returns the canonical unordered pair this comparison ranges over.
func (c *Comparison) Pair() Pair { return PairOf(c.best, c.worst) }

// SamePair reports whether other ranges over the same unordered pair,
// irrespective of orientation or weight.
func (c *Comparison) SamePair(other *Comparison) bool {
	return other != nil && c.Pair() == other.Pair()
}

// SetBest reorients the comparison so item is judged best. If item is
// not one of the two held items the orientation is left unchanged and
// an *UnknownItemError is returned.
func (c *Comparison) SetBest(item Item) error {
	switch item {
	case c.best:
		return nil
	case c.worst:
		c.best, c.worst = c.worst, c.best
		return nil
	default:
		return &UnknownItemError{Item: item, Pair: c.Pair()}
	}
}

// Swap flips the orientation, judging the current loser best.
func (c *Comparison) Swap() { c.best, c.worst = c.worst, c.best }

// SetWeight records the intensity of preference. Valid weights are 0
// (unweighed) through 3.
func (c *Comparison) SetWeight(w int) error {
	if w < 0 || w > 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, w)
	}
	c.weight = w
	return nil
}

// Render produces the human-readable judgment line: "best > worst",
// with the weight appended in parentheses once assigned.
func (c *Comparison) Render() string {
	if c.weight != 0 {
		return fmt.Sprintf("%s > %s (%d)", c.best, c.worst, c.weight)
	}
	return fmt.Sprintf("%s > %s", c.best, c.worst)
}

// String implements fmt.Stringer for progress and log lines.
func (c *Comparison) String() string { return c.Render() }
