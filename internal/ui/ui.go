// Package ui formats the initializer's progress output. Colors are only
// emitted when the destination writer is a terminal that supports them.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to one writer.
type Printer struct {
	w io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

// New returns a Printer whose color profile is detected from w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		success: r.NewStyle().Foreground(lipgloss.Color("78")),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("197")),
		faint:   r.NewStyle().Faint(true),
		added:   r.NewStyle().Foreground(lipgloss.Color("78")),
		removed: r.NewStyle().Foreground(lipgloss.Color("197")).Strikethrough(true),
	}
}

// Header prints a section title.
func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.w, p.header.Render(fmt.Sprintf(format, args...)))
}

// Success prints a completion line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warn prints a non-fatal warning.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, p.warning.Render("! "+fmt.Sprintf(format, args...)))
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.failure.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Item prints an indented detail line.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+fmt.Sprintf(format, args...))
}

// Faint renders s de-emphasized.
func (p *Printer) Faint(s string) string { return p.faint.Render(s) }

// Added renders inserted diff text.
func (p *Printer) Added(s string) string { return p.added.Render(s) }

// Removed renders deleted diff text.
func (p *Printer) Removed(s string) string { return p.removed.Render(s) }
