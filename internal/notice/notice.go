// Package notice prints the manual follow-up steps shown once a project has
// been initialized. The text is markdown and is rendered for the terminal when
// the output is one; otherwise it is laid out without styling.
package notice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// WordWrap is the column at which rendered text is wrapped.
const WordWrap = 80

// Print renders markdown to w. If rendering fails the raw text is written
// instead, so the steps are never lost.
func Print(w io.Writer, markdown string) error {
	out, err := render(markdown, isTerminal(w))
	if err != nil {
		out = markdown
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("printing notice: %w", err)
	}
	return nil
}

func render(markdown string, tty bool) (string, error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if tty {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(WordWrap))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(markdown)
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
