// Package shell implements the interactive command loop around the
// ranking engine: add items, run the comparison and weighing passes,
// list the current ranking, and save it to a file.
package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/ahrav/pairwise/infrastructure/storage"
	"github.com/ahrav/pairwise/internal/application"
	"github.com/ahrav/pairwise/internal/domain"
	"github.com/ahrav/pairwise/internal/ports"
)

// foldCaser is a package-level Unicode case folder so near-duplicate
// detection treats "Coffee" and "coffee" as the same label.
var foldCaser = cases.Fold()

// maxSuggestDistance is the largest edit distance still reported as a
// possible duplicate when adding an item.
const maxSuggestDistance = 2

// Shell is the long-lived interactive surface. It holds the only
// mutable RankingState instance and calls into the engine for every
// pass, mirroring the thin-glue role the core expects of it.
type Shell struct {
	judge   ports.JudgeIO
	engine  *application.Engine
	state   *domain.RankingState
	logger  *slog.Logger
	outPath string
	policy  string
}

// Config wires the shell's collaborators and defaults.
type Config struct {
	// Judge is the line channel shared with the engine.
	Judge ports.JudgeIO
	// Engine drives the elicitation passes.
	Engine *application.Engine
	// Items seeds the working set; may be empty.
	Items *domain.ItemSet
	// OutputPath is the default save destination; empty disables the
	// save-on-quit behavior.
	OutputPath string
	// ConflictPolicy selects overwrite behavior for existing files.
	ConflictPolicy string
	// Logger receives structured progress events.
	Logger *slog.Logger
}

// New creates a Shell over the given configuration.
func New(cfg Config) *Shell {
	items := cfg.Items
	if items == nil {
		items = domain.NewItemSet()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		judge:   cfg.Judge,
		engine:  cfg.Engine,
		state:   domain.NewRankingState(items),
		logger:  logger,
		outPath: cfg.OutputPath,
		policy:  cfg.ConflictPolicy,
	}
}

// Run executes the command loop until quit or end of input. End of
// input behaves like quit: results are saved to the configured output
// file before returning.
func (s *Shell) Run(ctx context.Context) error {
	s.banner()
	if s.state.Items().Len() > 0 {
		s.printList(ctx)
	}

	for {
		line, err := s.judge.Prompt(ctx, "pca> ")
		if err != nil {
			if errors.Is(err, ports.ErrInputExhausted) {
				s.judge.Say("")
				return s.saveDefault(ctx)
			}
			return err
		}

		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
			continue
		case "add":
			s.add(ctx, arg)
		case "list":
			s.printList(ctx)
		case "compare", "comparison", "comparisons":
			s.compare(ctx)
		case "weigh", "weight", "weights":
			s.weigh(ctx)
		case "save":
			s.save(ctx, arg)
		case "quit":
			return s.saveDefault(ctx)
		case "help":
			s.help()
		default:
			s.judge.Say(fmt.Sprintf("Unknown command: %s (try \"help\")", cmd))
		}
	}
}

func (s *Shell) banner() {
	s.judge.Say("================================")
	s.judge.Say("|| Paired Comparison Analysis ||")
	s.judge.Say("================================")
	s.judge.Say(`Step 1: "add <item>" for each item to compare`)
	s.judge.Say(`Step 2: "compare" to compare all items`)
	s.judge.Say(`Step 3: "weigh" to set weights`)
}

func (s *Shell) help() {
	s.judge.Say("Commands:")
	s.judge.Say("  add <item>   add an item to the list")
	s.judge.Say("  list         list all items (in order, if order is established)")
	s.judge.Say("  compare      compare all items pair by pair")
	s.judge.Say("  weigh        set a weight for each comparison")
	s.judge.Say("  save [file]  save results to a file")
	s.judge.Say("  quit         save (if an output file is set) and exit")
}

// add inserts an item, warning when the label is within edit distance
// of an existing one, which usually means a typo rather than a new
// entry.
func (s *Shell) add(ctx context.Context, label string) {
	if label == "" {
		s.judge.Say("Usage: add <item>")
		return
	}

	item := domain.Item(label)
	if near := s.nearest(item); near != "" && !s.state.Items().Contains(item) {
		s.judge.Say(fmt.Sprintf("Note: %q looks similar to existing item %q.", label, near))
	}

	added, err := s.state.Items().Add(item)
	if err != nil {
		s.judge.Say(fmt.Sprintf("Cannot add item: %v", err))
		return
	}
	if !added {
		s.logger.Debug("duplicate add ignored", "item", label)
	}
	s.printList(ctx)
}

// nearest returns an existing item within maxSuggestDistance of the
// candidate after Unicode case folding, or "" when none is close.
func (s *Shell) nearest(candidate domain.Item) domain.Item {
	folded := foldCaser.String(string(candidate))
	for _, existing := range s.state.Items().Items() {
		if existing == candidate {
			continue
		}
		d := levenshtein.ComputeDistance(folded, foldCaser.String(string(existing)))
		if d <= maxSuggestDistance {
			return existing
		}
	}
	return ""
}

func (s *Shell) compare(ctx context.Context) {
	err := s.engine.RunComparisons(ctx, s.state)
	if err != nil && !errors.Is(err, ports.ErrInputExhausted) {
		s.judge.Say(fmt.Sprintf("Comparison pass failed: %v", err))
		s.logger.Error("comparison pass failed", "error", err)
		return
	}
	if err != nil {
		s.logger.Debug("comparison pass aborted by end of input")
	}
	s.printList(ctx)
}

func (s *Shell) weigh(ctx context.Context) {
	if err := s.engine.RunWeights(ctx, s.state); err != nil {
		s.judge.Say(fmt.Sprintf("Weighing pass failed: %v", err))
		s.logger.Error("weighing pass failed", "error", err)
		return
	}
	s.printList(ctx)
}

func (s *Shell) printList(ctx context.Context) {
	s.judge.Say("------------------------------------------------------")
	for _, line := range s.engine.Rank(ctx, s.state) {
		s.judge.Say(line)
	}
	s.judge.Say("------------------------------------------------------")
}

// save writes the current ranking to the named file, falling back to
// the configured default path.
func (s *Shell) save(ctx context.Context, name string) {
	path := name
	if path == "" {
		path = s.outPath
	}
	if path == "" {
		s.judge.Say("No output file configured; use \"save <file>\".")
		return
	}

	sink := storage.NewFileSink(path, s.policy, s.judge)
	err := sink.Write(ctx, s.engine.Rank(ctx, s.state))
	switch {
	case errors.Is(err, ports.ErrOutputExists):
		s.logger.Info("save declined, file exists", "path", path)
	case errors.Is(err, ports.ErrInputExhausted):
		s.logger.Debug("save confirmation aborted by end of input", "path", path)
	case err != nil:
		s.judge.Say(fmt.Sprintf("Save failed: %v", err))
		s.logger.Error("save failed", "path", path, "error", err)
	}
}

// saveDefault persists to the configured output file on quit, if any.
func (s *Shell) saveDefault(ctx context.Context) error {
	if s.outPath != "" {
		s.save(ctx, "")
	}
	return nil
}

// splitCommand splits an input line into the command word and its
// argument, trimming surrounding whitespace from both.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return cmd, ""
	}
	return cmd, strings.TrimSpace(parts[1])
}
