package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kickoff-labs/kickoff/internal/branding"
	"github.com/kickoff-labs/kickoff/internal/manifest"
	"github.com/kickoff-labs/kickoff/internal/placeholder"
)

var placeholdersRoot string

func init() {
	placeholdersCmd.Flags().StringVar(&placeholdersRoot, "root", ".", "Project root holding the template manifest")
	rootCmd.AddCommand(placeholdersCmd)
}

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "List the placeholder tokens and their suggested values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(placeholdersRoot)
		if err != nil {
			return fmt.Errorf("resolving root: %w", err)
		}
		m, err := manifest.Load(root, branding.ManifestFile())
		if err != nil {
			return err
		}

		source := "built-in defaults"
		if m.Path != "" {
			source = m.Path
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Placeholders from %s:\n\n", source)

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TOKEN\tPROMPT\tSUGGESTION")
		for _, d := range m.Placeholders {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Token, d.Label(), placeholder.DefaultSuggestion(d.Token))
		}
		return w.Flush()
	},
}
