//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/kickoff-labs/kickoff/internal/branding"
	"github.com/kickoff-labs/kickoff/internal/initializer"
	"github.com/kickoff-labs/kickoff/internal/manifest"
)

// testTemplate is a freshly cloned template checkout.
type testTemplate struct {
	Root string // Project root
	Self string // Initializer script deleted at the end
}

// setupTemplate lays out a small web application template with placeholders
// in contents, file names and nested directory names.
func setupTemplate(t *testing.T) *testTemplate {
	t.Helper()

	root := t.TempDir()
	tpl := &testTemplate{Root: root, Self: filepath.Join(root, "bin", "setup")}

	writeFile(t, tpl.Self, "#!/bin/sh\nexec kickoff --self bin/setup \"$@\"\n")
	writeFile(t, filepath.Join(root, "README.md"), `# Template

Clone, then run bin/setup.

---
# :application_title

Created by :author_name (:author_email).
`)
	writeFile(t, filepath.Join(root, "LICENSE"), "Copyright (c) :author_name\n")
	writeFile(t, filepath.Join(root, "config", ":application_title.yml"), "name: :application_title\nowner: :github_username\n")
	writeFile(t, filepath.Join(root, "app", ":github_username", ":application_title", "main.go"),
		"package main\n\n// :application_title by :author_name\nfunc main() {}\n")
	writeFile(t, filepath.Join(root, "app", "assets", ":application_title.png"), "\x89PNG :application_title")
	writeFile(t, filepath.Join(root, ".git", "config"), "[remote \"origin\"]\n\turl = :github_username\n")

	return tpl
}

// runInitializer runs the full pipeline against tpl with preset values and
// returns the captured output.
func runInitializer(t *testing.T, tpl *testTemplate, values map[string]string, dryRun bool) (*initializer.Report, string) {
	t.Helper()

	m, err := manifest.Load(tpl.Root, branding.ManifestFile())
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}

	var out bytes.Buffer
	report, err := initializer.Run(initializer.Options{
		Root:     tpl.Root,
		Manifest: m,
		SelfPath: tpl.Self,
		Values:   values,
		DryRun:   dryRun,
		In:       strings.NewReader(""),
		Out:      &out,
		Logger:   zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("initializer.Run: %v\nOutput:\n%s", err, out.String())
	}
	return report, out.String()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileEquals fails if the file doesn't exist or its contents differ.
func assertFileEquals(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s:\n got: %q\nwant: %q", path, string(data), want)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertNoTokens fails if any non-excluded text file under root still holds
// one of the tokens, in its contents or in its path.
func assertNoTokens(t *testing.T, root string, tokens []string, binaryExts []string) {
	t.Helper()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		rel, _ := filepath.Rel(root, path)
		for _, tok := range tokens {
			if strings.Contains(rel, tok) {
				t.Errorf("path %s still contains %s", rel, tok)
			}
		}
		if d.IsDir() || isBinary(d.Name(), binaryExts) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			if strings.Contains(string(data), tok) {
				t.Errorf("file %s still contains %s", rel, tok)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
}

func isBinary(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
