package domain

import (
	"fmt"
	"math"
	"sort"
)

// RankingState holds the judgments collected so far: the working item
// set plus the ordered comparison list. Storage order is append order,
// which the weighing pass and the tie-break rule both rely on. The
// state is owned and mutated by a single elicitation driver; it is not
// safe for concurrent use and does not need to be.
type RankingState struct {
	// items is the working set the comparisons were drawn from.
	items *ItemSet

	// comparisons holds the stored judgments in append order.
	comparisons []*Comparison

	// byPair indexes the stored judgments by canonical pair.
	byPair map[Pair]*Comparison
}

// NewRankingState creates an empty state over the given item set.
func NewRankingState(items *ItemSet) *RankingState {
	return &RankingState{
		items:  items,
		byPair: make(map[Pair]*Comparison),
	}
}

// Items returns the working item set.
func (s *RankingState) Items() *ItemSet { return s.items }

// Comparisons returns the stored judgments in storage order. The slice
// is a copy; the comparisons themselves are shared.
func (s *RankingState) Comparisons() []*Comparison {
	out := make([]*Comparison, len(s.comparisons))
	copy(out, s.comparisons)
	return out
}

// Len returns the number of stored judgments.
func (s *RankingState) Len() int { return len(s.comparisons) }

// Lookup returns the stored judgment for a pair, if any.
func (s *RankingState) Lookup(p Pair) (*Comparison, bool) {
	c, ok := s.byPair[p]
	return c, ok
}

// Append stores a judgment. A judgment for the same pair must have been
// removed first; appending a duplicate pair replaces the index entry
// and removes the older comparison to keep pair uniqueness.
func (s *RankingState) Append(c *Comparison) {
	if _, ok := s.byPair[c.Pair()]; ok {
		s.Remove(c.Pair())
	}
	s.comparisons = append(s.comparisons, c)
	s.byPair[c.Pair()] = c
}

// Remove deletes the judgment for a pair and returns it, so the caller
// can report the answer that is being undone. Returns false if the pair
// has no stored judgment.
func (s *RankingState) Remove(p Pair) (*Comparison, bool) {
	c, ok := s.byPair[p]
	if !ok {
		return nil, false
	}
	delete(s.byPair, p)
	for i, stored := range s.comparisons {
		if stored == c {
			s.comparisons = append(s.comparisons[:i], s.comparisons[i+1:]...)
			break
		}
	}
	return c, true
}

// Clear drops every stored judgment. A fresh compare pass starts here,
// so an aborted pass never leaves a half-judged mixture behind.
func (s *RankingState) Clear() {
	s.comparisons = nil
	s.byPair = make(map[Pair]*Comparison)
}

// Rank aggregates the stored judgments into display lines.
//
// Every item that appears in any comparison accumulates the weights of
// the comparisons it won (losers sit at zero). Items are sorted
// descending by accumulated weight; ties keep first-appearance order in
// the comparison list, which makes the order deterministic for a given
// elicitation history. Once a nonzero weight has been seen, every
// subsequent item gets a numeric rank and a round-half-up percentage of
// the grand total; items before the first nonzero weight render with
// "?" markers. With no comparisons at all, every item of the working
// set renders unranked in insertion order.
func (s *RankingState) Rank() []string {
	totals := make(map[Item]int)
	var order []Item
	grand := 0
	for _, c := range s.comparisons {
		for _, item := range []Item{c.best, c.worst} {
			if _, ok := totals[item]; !ok {
				totals[item] = 0
				order = append(order, item)
			}
		}
		totals[c.best] += c.weight
		grand += c.weight
	}

	if len(order) == 0 {
		lines := make([]string, 0, s.items.Len())
		for _, item := range s.items.Items() {
			lines = append(lines, fmt.Sprintf("?: %s", item))
		}
		return lines
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	lines := make([]string, 0, len(order))
	weighted := false
	for i, item := range order {
		weighted = weighted || totals[item] != 0
		pos, pct := "?", "?"
		if weighted {
			pos = fmt.Sprintf("%d", i+1)
			pct = fmt.Sprintf("%2d%%", roundHalfUpPercent(totals[item], grand))
		}
		lines = append(lines, fmt.Sprintf("%2s: [%s] %s", pos, pct, item))
	}
	return lines
}

// roundHalfUpPercent computes weight/total as a percentage with
// floor(x+0.5) rounding, so 12.5% renders as 13% and 33.33% as 33%.
func roundHalfUpPercent(weight, total int) int {
	return int(math.Floor(float64(weight)/float64(total)*100.0 + 0.5))
}
