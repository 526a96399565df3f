package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kickoff-labs/kickoff/internal/placeholder"
	"github.com/kickoff-labs/kickoff/internal/walk"
)

// Options configures a rename run.
type Options struct {
	Tree    *walk.Tree
	Mapping placeholder.Mapping
	DryRun  bool
	Logger  *zap.Logger
}

// Move is one performed (or, in dry-run mode, planned) rename.
type Move struct {
	Token string
	From  string // Relative to the root
	To    string
}

// Result holds the outcome of a rename run.
type Result struct {
	Moves   []Move
	Skipped []Move // Destination already existed
}

// Run applies one rename pass per token in m.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	result := &Result{}
	for _, p := range opts.Mapping.Pairs() {
		if err := pass(opts, p, log, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func pass(opts Options, p placeholder.Pair, log *zap.Logger, result *Result) error {
	matches, err := findMatches(opts.Tree, p.Token)
	if err != nil {
		return fmt.Errorf("finding paths containing %s: %w", p.Token, err)
	}

	for _, e := range matches {
		from := e.Path
		to := filepath.Join(filepath.Dir(from), strings.ReplaceAll(filepath.Base(from), p.Token, p.Value))
		if to == from {
			continue
		}

		if _, err := os.Lstat(from); errors.Is(err, fs.ErrNotExist) {
			log.Debug("source vanished", zap.String("path", e.Rel))
			continue
		}

		move := Move{Token: p.Token, From: e.Rel, To: relTo(opts.Tree.Root(), to)}

		if _, err := os.Lstat(to); err == nil {
			log.Debug("destination exists, leaving source in place",
				zap.String("from", move.From), zap.String("to", move.To))
			result.Skipped = append(result.Skipped, move)
			continue
		}

		if !opts.DryRun {
			if err := os.Rename(from, to); err != nil {
				return fmt.Errorf("renaming %s -> %s: %w", move.From, move.To, err)
			}
			log.Debug("renamed", zap.String("from", move.From), zap.String("to", move.To))
		}
		result.Moves = append(result.Moves, move)
	}
	return nil
}

// findMatches returns every entry whose relative path contains token, deepest
// first so children are renamed before their parents.
func findMatches(tree *walk.Tree, token string) ([]walk.Entry, error) {
	var matches []walk.Entry
	err := tree.Walk(func(e walk.Entry) error {
		if strings.Contains(e.Rel, token) {
			matches = append(matches, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		di, dj := depth(matches[i].Rel), depth(matches[j].Rel)
		if di != dj {
			return di > dj
		}
		return matches[i].Rel > matches[j].Rel
	})
	return matches, nil
}

func depth(rel string) int {
	return strings.Count(rel, "/")
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
