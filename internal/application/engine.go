// Package application drives the paired comparison elicitation protocol
// over the domain model: pair enumeration, undo-capable traversal,
// weight collection, and result aggregation.
package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ahrav/pairwise/internal/domain"
	"github.com/ahrav/pairwise/internal/ports"
)

// presented is one pending question: the two items in the order they
// will be shown to the judge. Presentation order and the canonical Pair
// key are distinct on purpose; the judge sees enumeration order, the
// state deduplicates on the canonical key.
type presented struct {
	a, b domain.Item
}

// Engine runs the elicitation passes and owns their traversal
// semantics. It is single-judge and synchronous: the only blocking
// points are the prompts, and the state is mutated by exactly one
// active pass at a time.
type Engine struct {
	// io is the line channel to the human judge.
	io ports.JudgeIO
	// metrics receives elicitation counters.
	metrics ports.MetricsCollector
	// tracer emits one span per pass for observability.
	tracer trace.Tracer
	// collator orders the item snapshot so pair enumeration is stable
	// across runs for the same set.
	collator *collate.Collator
	// sessionID correlates spans and logs for one engine lifetime.
	sessionID string
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics wires a metrics collector into the engine. The default
// discards all observations.
func WithMetrics(m ports.MetricsCollector) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithSessionID overrides the generated session identifier, letting the
// caller share one ID between the engine and its metrics labels.
func WithSessionID(id string) Option {
	return func(e *Engine) { e.sessionID = id }
}

// NewEngine creates an Engine speaking to the judge over io.
func NewEngine(io ports.JudgeIO, opts ...Option) *Engine {
	e := &Engine{
		io:        io,
		metrics:   ports.NoopMetrics{},
		tracer:    otel.Tracer("ranking-engine"),
		collator:  collate.New(language.Und),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SessionID returns the identifier correlating this engine's spans.
func (e *Engine) SessionID() string { return e.sessionID }

// enumeratePairs returns every unordered pair of the item set in a
// deterministic order: the snapshot is sorted with the collator, then
// pairs are emitted in nested (i, j>i) order.
func (e *Engine) enumeratePairs(items *domain.ItemSet) []presented {
	labels := items.Items()
	sort.Slice(labels, func(i, j int) bool {
		return e.collator.CompareString(string(labels[i]), string(labels[j])) < 0
	})

	var pairs []presented
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			pairs = append(pairs, presented{a: labels[i], b: labels[j]})
		}
	}
	return pairs
}

// RunComparisons elicits a "best" judgment for every unordered pair of
// the state's item set. The pass starts fresh: previously stored
// judgments are cleared so an aborted run never leaves a half-judged
// mixture behind.
//
// Undo seeks the pair cursor back one position, replaying the previous
// pair; on replay the stored judgment for that pair is removed and
// reported before the question is asked again. Undo on the very first
// pair clamps and re-asks it. Input exhaustion aborts the pass and
// discards everything collected in it, returning ErrInputExhausted.
func (e *Engine) RunComparisons(ctx context.Context, state *domain.RankingState) error {
	state.Clear()

	pairs := e.enumeratePairs(state.Items())
	ctx, span := e.tracer.Start(ctx, "engine.run_comparisons",
		trace.WithAttributes(
			attribute.String("session.id", e.sessionID),
			attribute.Int("items.count", state.Items().Len()),
			attribute.Int("pairs.count", len(pairs)),
		))
	defer span.End()

	it := domain.NewSeekableIterator(pairs)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}

		// On replay after an undo the pair already has a stored answer;
		// drop it and tell the judge which answer is being undone.
		if old, removed := state.Remove(domain.PairOf(p.a, p.b)); removed {
			e.io.Say(fmt.Sprintf("Undoing: %s", old))
			e.metrics.JudgmentUndone()
		}

		c, err := domain.NewComparison(p.a, p.b)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("pair %s/%s: %w", p.a, p.b, err)
		}

		outcome, err := e.elicitBest(ctx, c)
		if err != nil {
			if errors.Is(err, ports.ErrInputExhausted) {
				state.Clear()
			}
			span.RecordError(err)
			return fmt.Errorf("comparison pass: %w", err)
		}

		if outcome == outcomeUndo {
			// Relative seek counts from the pre-advance cursor, so -1
			// replays the previous pair. Clamping makes undo at the
			// first pair re-ask it.
			if err := it.Seek(-1, true); err != nil {
				span.RecordError(err)
				return fmt.Errorf("undo seek: %w", err)
			}
			continue
		}

		state.Append(c)
		e.io.Say(fmt.Sprintf("Stored: %s", c))
		e.metrics.JudgmentRecorded()
	}

	span.SetAttributes(attribute.Int("judgments.count", state.Len()))
	return nil
}

// RunWeights elicits an intensity weight for every stored judgment in
// storage order. Undo seeks back one judgment and overwrites the weight
// already assigned to it on replay. Input exhaustion stops the pass
// silently: weights assigned so far are kept, the rest stay at zero.
func (e *Engine) RunWeights(ctx context.Context, state *domain.RankingState) error {
	ctx, span := e.tracer.Start(ctx, "engine.run_weights",
		trace.WithAttributes(
			attribute.String("session.id", e.sessionID),
			attribute.Int("judgments.count", state.Len()),
		))
	defer span.End()

	it := domain.NewSeekableIterator(state.Comparisons())
	for {
		c, ok := it.Next()
		if !ok {
			return nil
		}

		outcome, err := e.elicitWeight(ctx, c)
		if err != nil {
			if errors.Is(err, ports.ErrInputExhausted) {
				return nil
			}
			span.RecordError(err)
			return fmt.Errorf("weighing pass: %w", err)
		}

		if outcome == outcomeUndo {
			if err := it.Seek(-1, true); err != nil {
				span.RecordError(err)
				return fmt.Errorf("undo seek: %w", err)
			}
			continue
		}

		e.metrics.WeightRecorded()
	}
}

// Rank aggregates the current judgments into display lines. It is a
// pure read over the state; see domain.RankingState.Rank for the
// ordering and percentage rules.
func (e *Engine) Rank(ctx context.Context, state *domain.RankingState) []string {
	_, span := e.tracer.Start(ctx, "engine.rank",
		trace.WithAttributes(
			attribute.String("session.id", e.sessionID),
			attribute.Int("judgments.count", state.Len()),
		))
	defer span.End()

	return state.Rank()
}
