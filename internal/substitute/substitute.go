package substitute

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"

	"github.com/kickoff-labs/kickoff/internal/placeholder"
	"github.com/kickoff-labs/kickoff/internal/walk"
)

// Options configures a content substitution run.
type Options struct {
	Tree             *walk.Tree
	Mapping          placeholder.Mapping
	BinaryExtensions []string
	DryRun           bool
	Logger           *zap.Logger
}

// Change describes one file whose contents differ after substitution.
type Change struct {
	Rel   string
	Diffs []diffmatchpatch.Diff // Populated in dry-run mode only
}

// Result holds the outcome of a substitution run.
type Result struct {
	Changes []Change
	Scanned int
}

// NewReplacer returns a literal replacer over every pair in m. At any
// position the earliest declared matching token wins and replaced text is not
// scanned again.
func NewReplacer(m placeholder.Mapping) *strings.Replacer {
	pairs := m.Pairs()
	oldnew := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		oldnew = append(oldnew, p.Token, p.Value)
	}
	return strings.NewReplacer(oldnew...)
}

// Run replaces every token occurrence in every regular file of the tree,
// except files matching the binary extension list. It stops at the first
// file that cannot be read or written.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	replacer := NewReplacer(opts.Mapping)
	dmp := diffmatchpatch.New()
	result := &Result{}

	err := opts.Tree.Walk(func(e walk.Entry) error {
		if !e.Type.IsRegular() {
			return nil
		}
		if walk.HasBinaryExtension(e.Rel, opts.BinaryExtensions) {
			log.Debug("skipping binary file", zap.String("path", e.Rel))
			return nil
		}

		result.Scanned++
		before, err := os.ReadFile(e.Path)
		if err != nil {
			return fmt.Errorf("rewriting %s: %w", e.Rel, err)
		}

		after := replacer.Replace(string(before))
		if after == string(before) {
			return nil
		}

		change := Change{Rel: e.Rel}
		if opts.DryRun {
			diffs := dmp.DiffMain(string(before), after, false)
			change.Diffs = dmp.DiffCleanupSemantic(diffs)
		} else {
			if err := writeInPlace(e.Path, []byte(after)); err != nil {
				return fmt.Errorf("rewriting %s: %w", e.Rel, err)
			}
			log.Debug("rewrote file", zap.String("path", e.Rel))
		}
		result.Changes = append(result.Changes, change)
		return nil
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

// writeInPlace truncates and rewrites path, keeping its permissions.
func writeInPlace(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}
