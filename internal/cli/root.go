package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kickoff-labs/kickoff/internal/branding"
	"github.com/kickoff-labs/kickoff/internal/config"
	"github.com/kickoff-labs/kickoff/internal/initializer"
	"github.com/kickoff-labs/kickoff/internal/manifest"
	"github.com/kickoff-labs/kickoff/internal/platform"
	"github.com/kickoff-labs/kickoff/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` turns a fresh copy of this template into your project.

It asks for a few project details, replaces the template placeholders in file
contents and in file and directory names, drops the template instructions from
the README, prints the remaining manual steps and finally deletes itself.

Run it once from the project root. There is no undo: commit or stash anything
you care about first, or preview with --dry-run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInit,
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		ui.New(rootCmd.ErrOrStderr()).Error("%v", err)
		return err
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := newLogger(settings.Verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	m, err := manifest.Load(settings.Root, branding.ManifestFile())
	if err != nil {
		return err
	}
	if err := m.CheckVersion(buildVersion); err != nil {
		return err
	}

	self, isExecutable, err := resolveSelf(settings)
	if err != nil {
		return err
	}
	log.Debug("resolved initializer", zap.String("path", self), zap.Bool("executable", isExecutable))

	_, err = initializer.Run(initializer.Options{
		Root:             settings.Root,
		Manifest:         m,
		SelfPath:         self,
		SelfIsExecutable: isExecutable,
		Values:           settings.Values,
		DryRun:           settings.DryRun,
		KeepSelf:         settings.KeepSelf,
		In:               cmd.InOrStdin(),
		Out:              cmd.OutOrStdout(),
		Logger:           log,
	})
	return err
}

// resolveSelf returns the initializer path to delete. A --self value is taken
// relative to the project root; otherwise the running executable is used.
func resolveSelf(s *config.Settings) (string, bool, error) {
	if s.Self == "" {
		path, err := platform.SelfPath()
		if err != nil {
			return "", false, err
		}
		return path, true, nil
	}

	path := s.Self
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.Root, path)
	}
	resolved, err := platform.ResolvePath(path)
	if err != nil {
		return "", false, fmt.Errorf("resolving --%s: %w", config.KeySelf, err)
	}
	return resolved, false, nil
}

// newLogger returns a development console logger writing to w when verbose
// is set, and a no-op logger otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
