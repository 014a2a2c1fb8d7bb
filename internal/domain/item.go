// Package domain contains pure, dependency-free domain models and types
// for paired comparison analysis.
package domain

// Item is an opaque label for an entity being ranked.
// Items are compared by value; the empty string is not a valid Item.
type Item string

// ItemSet is an ordered, de-duplicating collection of items.
// Insertion order is preserved so rankings over an unjudged set stay
// deterministic across runs.
type ItemSet struct {
	// order holds the items in first-insertion order.
	order []Item

	// index maps each item to its presence in the set.
	index map[Item]struct{}
}

// NewItemSet creates an ItemSet seeded with the given items.
// Duplicates are dropped; the first occurrence wins its position.
func NewItemSet(items ...Item) *ItemSet {
	s := &ItemSet{index: make(map[Item]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts an item into the set. Adding an existing item is a no-op,
// so repeated "add" commands stay idempotent. Returns ErrEmptyItem for
// an empty label and reports whether the item was newly inserted.
func (s *ItemSet) Add(item Item) (bool, error) {
	if item == "" {
		return false, ErrEmptyItem
	}
	if _, ok := s.index[item]; ok {
		return false, nil
	}
	s.index[item] = struct{}{}
	s.order = append(s.order, item)
	return true, nil
}

// Contains reports whether the item is in the set.
func (s *ItemSet) Contains(item Item) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of distinct items.
func (s *ItemSet) Len() int { return len(s.order) }

// Items returns a copy of the items in insertion order.
// The returned slice is safe for the caller to sort or mutate.
func (s *ItemSet) Items() []Item {
	out := make([]Item, len(s.order))
	copy(out, s.order)
	return out
}
