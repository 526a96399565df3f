package initializer

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/kickoff-labs/kickoff/internal/manifest"
)

const templateReadme = `# Using this template

Run bin/setup once after cloning.

---
# :application_title

Maintained by :author_name.
`

type project struct {
	root string
	self string
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected %s not to exist (err: %v)", path, err)
	}
}

// setupProject creates a template checkout with an initializer at bin/setup.
func setupProject(t *testing.T) project {
	t.Helper()
	root := t.TempDir()
	p := project{root: root, self: filepath.Join(root, "bin", "setup")}

	writeFile(t, p.self, "#!/bin/sh\n# replaces :application_title\n")
	writeFile(t, filepath.Join(root, "README.md"), templateReadme)
	writeFile(t, filepath.Join(root, ":application_title.txt"), "Built by :author_name")
	writeFile(t, filepath.Join(root, "docs", "logo.png"), ":application_title")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/:author_name\n")
	return p
}

func defaultManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Default()
	if err != nil {
		t.Fatalf("manifest.Default: %v", err)
	}
	return m
}

func baseOptions(t *testing.T, p project, out *bytes.Buffer) Options {
	return Options{
		Root:     p.root,
		Manifest: defaultManifest(t),
		SelfPath: p.self,
		Values: map[string]string{
			":application_title": "My App",
			":author_name":       "Jane Doe",
		},
		In:     strings.NewReader(""),
		Out:    out,
		Logger: zaptest.NewLogger(t),
	}
}

func TestRunEndToEnd(t *testing.T) {
	p := setupProject(t)
	var out bytes.Buffer

	report, err := Run(baseOptions(t, p, &out))
	if err != nil {
		t.Fatalf("Run() error: %v\n%s", err, out.String())
	}

	if got := readFile(t, filepath.Join(p.root, "My App.txt")); got != "Built by Jane Doe" {
		t.Errorf("My App.txt = %q", got)
	}
	assertNotExists(t, filepath.Join(p.root, ":application_title.txt"))

	if got := readFile(t, filepath.Join(p.root, "README.md")); got != "# My App\n\nMaintained by Jane Doe.\n" {
		t.Errorf("README.md = %q", got)
	}

	// Binary files and VCS metadata keep their tokens.
	if got := readFile(t, filepath.Join(p.root, "docs", "logo.png")); got != ":application_title" {
		t.Errorf("logo.png modified: %q", got)
	}
	if got := readFile(t, filepath.Join(p.root, ".git", "HEAD")); !strings.Contains(got, ":author_name") {
		t.Errorf(".git/HEAD modified: %q", got)
	}

	// Placeholders without a preset value fall back to their suggestion.
	if v, _ := report.Mapping.Value(":author_email"); v != "Author Email" {
		t.Errorf(":author_email = %q, want default", v)
	}

	assertNotExists(t, p.self)
	if len(report.Removed) != 1 || report.Removed[0] != p.self {
		t.Errorf("Removed = %v, want [%s]", report.Removed, p.self)
	}
	if !strings.Contains(out.String(), "Create the repository") {
		t.Errorf("notice missing from output:\n%s", out.String())
	}
}

func TestRunInteractive(t *testing.T) {
	p := setupProject(t)
	var out bytes.Buffer

	opts := baseOptions(t, p, &out)
	opts.Values = nil
	opts.In = strings.NewReader("My App\nJane Doe\n\n\n")

	if _, err := Run(opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := readFile(t, filepath.Join(p.root, "My App.txt")); got != "Built by Jane Doe" {
		t.Errorf("My App.txt = %q", got)
	}
	if !strings.Contains(out.String(), "Application title [Application Title]: ") {
		t.Errorf("prompt missing from output:\n%s", out.String())
	}
}

func TestRunMissingReadmeIsNotFatal(t *testing.T) {
	p := setupProject(t)
	if err := os.Remove(filepath.Join(p.root, "README.md")); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	report, err := Run(baseOptions(t, p, &out))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !report.ReadmeMissing {
		t.Error("ReadmeMissing should be set")
	}
	assertNotExists(t, filepath.Join(p.root, "README.md"))
	if !strings.Contains(out.String(), "README.md not found") {
		t.Errorf("warning missing from output:\n%s", out.String())
	}
	assertNotExists(t, p.self)
}

func TestRunDryRunChangesNothing(t *testing.T) {
	p := setupProject(t)
	var out bytes.Buffer

	opts := baseOptions(t, p, &out)
	opts.DryRun = true

	report, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := readFile(t, filepath.Join(p.root, "README.md")); got != templateReadme {
		t.Errorf("dry run modified README.md: %q", got)
	}
	if got := readFile(t, filepath.Join(p.root, ":application_title.txt")); got != "Built by :author_name" {
		t.Errorf("dry run modified contents: %q", got)
	}
	if _, err := os.Stat(p.self); err != nil {
		t.Errorf("dry run removed the initializer: %v", err)
	}
	if len(report.Renames.Moves) != 1 || report.Renames.Moves[0].To != "My App.txt" {
		t.Errorf("planned moves = %+v", report.Renames.Moves)
	}
	if !strings.Contains(out.String(), ":application_title.txt → My App.txt") {
		t.Errorf("planned rename missing from output:\n%s", out.String())
	}
}

func TestRunKeepSelf(t *testing.T) {
	p := setupProject(t)
	var out bytes.Buffer

	opts := baseOptions(t, p, &out)
	opts.KeepSelf = true

	if _, err := Run(opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := readFile(t, p.self); !strings.Contains(got, ":application_title") {
		t.Errorf("initializer should be kept and untouched, got %q", got)
	}
}

func TestRunProjectManifest(t *testing.T) {
	p := setupProject(t)
	writeFile(t, filepath.Join(p.root, ".kickoff.yaml"), `placeholders:
  - token: ":application_title"
notice: "Push to :application_title remote."
`)
	m, err := manifest.Load(p.root, ".kickoff.yaml")
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}

	var out bytes.Buffer
	opts := baseOptions(t, p, &out)
	opts.Manifest = m
	opts.Values = map[string]string{":application_title": "My App"}

	report, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Only the manifest's token is replaced.
	if got := readFile(t, filepath.Join(p.root, "My App.txt")); got != "Built by :author_name" {
		t.Errorf("My App.txt = %q", got)
	}
	assertNotExists(t, filepath.Join(p.root, ".kickoff.yaml"))
	if len(report.Removed) != 2 {
		t.Errorf("Removed = %v, want manifest and initializer", report.Removed)
	}
	if !strings.Contains(out.String(), "Push to") {
		t.Errorf("custom notice missing:\n%s", out.String())
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	p := setupProject(t)
	var out bytes.Buffer

	opts := baseOptions(t, p, &out)
	opts.Values = map[string]string{":application_title": "no/such/dir"}

	_, err := Run(opts)
	if err == nil || !strings.Contains(err.Error(), "renaming paths") {
		t.Fatalf("expected rename failure, got %v", err)
	}

	// Contents were already rewritten, later steps never ran.
	if got := readFile(t, filepath.Join(p.root, ":application_title.txt")); got != "Built by Author Name" {
		t.Errorf("contents = %q, want substituted before the failure", got)
	}
	if got := readFile(t, filepath.Join(p.root, "README.md")); !strings.HasPrefix(got, "# Using this template") {
		t.Errorf("README should not be trimmed after a failure: %q", got)
	}
	if _, err := os.Stat(p.self); err != nil {
		t.Errorf("initializer should survive a failed run: %v", err)
	}
}

func TestRunUnknownPresetFails(t *testing.T) {
	p := setupProject(t)
	var out bytes.Buffer

	opts := baseOptions(t, p, &out)
	opts.Values = map[string]string{":nope": "x"}

	if _, err := Run(opts); err == nil || !strings.Contains(err.Error(), "collecting placeholder values") {
		t.Errorf("expected collection error, got %v", err)
	}
}
