package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ahrav/pairwise/internal/domain"
)

// elicitOutcome is the terminal state of one elicitation loop.
type elicitOutcome string

// Terminal states for the choice and weight elicitation machines.
const (
	// outcomeResolved means the judge answered and the comparison was
	// updated in place.
	outcomeResolved elicitOutcome = "resolved"

	// outcomeUndo means the judge asked to re-visit the previous
	// question; the caller seeks the driving iterator backwards.
	outcomeUndo elicitOutcome = "undo"
)

// elicitBest runs the choice protocol for one comparison: present both
// items, accept "a"/"b" (case-insensitive) to resolve the orientation
// or "u" to signal undo, and re-prompt on anything else. The loop is a
// two-state machine (awaiting -> resolved|undo); only input exhaustion
// or context cancellation leaves it early.
func (e *Engine) elicitBest(ctx context.Context, c *domain.Comparison) (elicitOutcome, error) {
	a, b := c.Best(), c.Worst()
	for {
		e.io.Say("Which is best?")
		e.io.Say(fmt.Sprintf("  [A] %s\n  [B] %s", a, b))
		resp, err := e.io.Prompt(ctx, "A or B (or [U]ndo)? ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(resp) {
		case "a":
			if err := c.SetBest(a); err != nil {
				return "", err
			}
			return outcomeResolved, nil
		case "b":
			if err := c.SetBest(b); err != nil {
				return "", err
			}
			return outcomeResolved, nil
		case "u":
			return outcomeUndo, nil
		default:
			e.metrics.Reprompted()
		}
	}
}

// elicitWeight runs the weight protocol for one comparison: accept an
// integer 1-3 to resolve, an "s" prefix to swap the orientation and ask
// again, a "u" prefix to signal undo (weight left as-is), and re-prompt
// on anything else, including out-of-range numbers.
func (e *Engine) elicitWeight(ctx context.Context, c *domain.Comparison) (elicitOutcome, error) {
	for {
		e.io.Say(c.Render())
		resp, err := e.io.Prompt(ctx, "  by how much (1 is a little, 3 is a lot) [1-3] or [s]wap, [u]ndo)? ")
		if err != nil {
			return "", err
		}
		lower := strings.ToLower(resp)
		switch {
		case strings.HasPrefix(lower, "s"):
			c.Swap()
		case strings.HasPrefix(lower, "u"):
			return outcomeUndo, nil
		default:
			w, convErr := strconv.Atoi(resp)
			if convErr != nil || w < 1 || w > 3 {
				e.metrics.Reprompted()
				continue
			}
			if err := c.SetWeight(w); err != nil {
				return "", err
			}
			return outcomeResolved, nil
		}
	}
}
