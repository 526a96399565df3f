package initializer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kickoff-labs/kickoff/internal/manifest"
	"github.com/kickoff-labs/kickoff/internal/notice"
	"github.com/kickoff-labs/kickoff/internal/placeholder"
	"github.com/kickoff-labs/kickoff/internal/platform"
	"github.com/kickoff-labs/kickoff/internal/readme"
	"github.com/kickoff-labs/kickoff/internal/rename"
	"github.com/kickoff-labs/kickoff/internal/substitute"
	"github.com/kickoff-labs/kickoff/internal/ui"
	"github.com/kickoff-labs/kickoff/internal/walk"
)

// Options configures one initialization run.
type Options struct {
	Root     string
	Manifest *manifest.Manifest

	// SelfPath is the initializer file removed at the end. It is excluded from
	// substitution and renaming. SelfIsExecutable marks it as the running binary.
	SelfPath         string
	SelfIsExecutable bool

	// Values presets placeholder values. When non-nil no prompt is shown.
	Values map[string]string

	DryRun   bool
	KeepSelf bool

	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger
}

// Report summarizes a completed run.
type Report struct {
	Mapping       placeholder.Mapping
	Contents      *substitute.Result
	Renames       *rename.Result
	Readme        *readme.Result // nil when the README was missing
	ReadmeMissing bool
	Removed       []string // Initializer files deleted in the last step
}

// Run executes the pipeline. The returned Report holds whatever completed
// before an error.
func Run(opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	p := ui.New(opts.Out)
	report := &Report{}

	if opts.Manifest == nil {
		def, err := manifest.Default()
		if err != nil {
			return report, err
		}
		opts.Manifest = def
	}
	m := opts.Manifest

	tree, err := walk.New(opts.Root, opts.SelfPath, m.Path)
	if err != nil {
		return report, err
	}
	opts.Root = tree.Root()
	log.Debug("starting", zap.String("root", tree.Root()), zap.String("self", opts.SelfPath), zap.Bool("dry_run", opts.DryRun))

	// 1. Prompt.
	mapping, err := collect(opts, p)
	if err != nil {
		return report, fmt.Errorf("collecting placeholder values: %w", err)
	}
	report.Mapping = mapping

	// 2. Contents.
	p.Header("Replacing placeholders in file contents")
	report.Contents, err = substitute.Run(substitute.Options{
		Tree:             tree,
		Mapping:          mapping,
		BinaryExtensions: m.BinaryExtensions,
		DryRun:           opts.DryRun,
		Logger:           log,
	})
	if err != nil {
		return report, fmt.Errorf("substituting contents: %w", err)
	}
	for _, ch := range report.Contents.Changes {
		if opts.DryRun {
			substitute.WriteDiff(p, ch)
		} else {
			p.Item("%s", ch.Rel)
		}
	}
	p.Success("%d of %d files updated", len(report.Contents.Changes), report.Contents.Scanned)

	// 3. Paths.
	p.Header("Renaming files and directories")
	report.Renames, err = rename.Run(rename.Options{
		Tree:    tree,
		Mapping: mapping,
		DryRun:  opts.DryRun,
		Logger:  log,
	})
	if err != nil {
		return report, fmt.Errorf("renaming paths: %w", err)
	}
	for _, mv := range report.Renames.Moves {
		p.Item("%s → %s", mv.From, mv.To)
	}
	for _, mv := range report.Renames.Skipped {
		p.Item("%s", p.Faint(fmt.Sprintf("%s kept, %s already exists", mv.From, mv.To)))
	}
	p.Success("%d paths renamed", len(report.Renames.Moves))

	// 4. README.
	if err := trimReadme(opts, p, report); err != nil {
		return report, fmt.Errorf("trimming README: %w", err)
	}

	// 5. Notice.
	fmt.Fprintln(opts.Out)
	if err := notice.Print(opts.Out, m.Notice); err != nil {
		return report, err
	}

	// 6. Self-deletion.
	if err := removeSelf(opts, p, report); err != nil {
		return report, fmt.Errorf("removing initializer: %w", err)
	}
	return report, nil
}

func collect(opts Options, p *ui.Printer) (placeholder.Mapping, error) {
	defs := opts.Manifest.Placeholders
	if opts.Values != nil {
		return placeholder.FromValues(defs, opts.Values)
	}
	p.Header("Project details (press enter to accept the suggestion)")
	return placeholder.Collect(defs, opts.In, opts.Out)
}

func trimReadme(opts Options, p *ui.Printer, report *Report) error {
	m := opts.Manifest
	path := filepath.Join(opts.Root, m.Readme)

	p.Header("Trimming %s", m.Readme)
	result, err := readme.Trim(path, m.Separator, opts.DryRun)
	if errors.Is(err, readme.ErrNotFound) {
		report.ReadmeMissing = true
		p.Warn("%s not found, skipping", m.Readme)
		return nil
	}
	if err != nil {
		return err
	}
	report.Readme = result

	if !result.Found {
		p.Warn("separator %q not found, %s is now empty", m.Separator, m.Readme)
	}
	p.Success("removed %d lines, kept %d", result.Dropped, result.Kept)
	return nil
}

func removeSelf(opts Options, p *ui.Printer, report *Report) error {
	if opts.DryRun || opts.KeepSelf {
		p.Item("%s", p.Faint("keeping the initializer"))
		return nil
	}

	if opts.Manifest.Path != "" {
		if err := platform.RemoveSelf(opts.Manifest.Path, false); err != nil {
			return err
		}
		report.Removed = append(report.Removed, opts.Manifest.Path)
	}
	if opts.SelfPath != "" {
		if err := platform.RemoveSelf(opts.SelfPath, opts.SelfIsExecutable); err != nil {
			return err
		}
		report.Removed = append(report.Removed, opts.SelfPath)
	}
	p.Success("initializer removed")
	return nil
}
