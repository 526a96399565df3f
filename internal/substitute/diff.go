package substitute

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kickoff-labs/kickoff/internal/ui"
)

// contextChars is how much unchanged text is kept on each side of a change.
const contextChars = 24

// WriteDiff prints a compact character diff of a dry-run change.
func WriteDiff(p *ui.Printer, ch Change) {
	p.Item("%s", ch.Rel)

	var b strings.Builder
	for i, d := range ch.Diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(p.Added(d.Text))
		case diffmatchpatch.DiffDelete:
			b.WriteString(p.Removed(d.Text))
		case diffmatchpatch.DiffEqual:
			b.WriteString(p.Faint(elide(d.Text, i == 0, i == len(ch.Diffs)-1)))
		}
	}

	for _, line := range strings.Split(b.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.Item("    %s", line)
	}
}

// elide shortens unchanged text to the context around neighbouring changes.
func elide(s string, first, last bool) string {
	r := []rune(s)
	switch {
	case first && len(r) > contextChars:
		return "…" + string(r[len(r)-contextChars:])
	case last && len(r) > contextChars:
		return string(r[:contextChars]) + "…"
	case !first && !last && len(r) > 2*contextChars:
		return string(r[:contextChars]) + "…" + string(r[len(r)-contextChars:])
	}
	return s
}
