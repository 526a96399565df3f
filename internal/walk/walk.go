package walk

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// VCSDir is the version-control metadata entry excluded from every walk.
const VCSDir = ".git"

// Entry is a file or directory found under the root.
type Entry struct {
	Path  string // Absolute path
	Rel   string // Path relative to the root, slash-separated
	IsDir bool
	Type  fs.FileMode
}

// Tree walks one project root.
type Tree struct {
	root    string
	exclude map[string]bool
}

// New returns a Tree rooted at root. Paths in exclude are skipped wherever they
// appear in the walk; relative paths are resolved against root.
func New(root string, exclude ...string) (*Tree, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	t := &Tree{root: abs, exclude: make(map[string]bool, len(exclude))}
	for _, p := range exclude {
		if p == "" {
			continue
		}
		t.exclude[t.normalize(p)] = true
	}
	return t, nil
}

// Root returns the absolute root path.
func (t *Tree) Root() string { return t.root }

// Excluded reports whether path is one of the excluded paths.
func (t *Tree) Excluded(path string) bool {
	return t.exclude[t.normalize(path)]
}

func (t *Tree) normalize(p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(t.root, p)
	}
	p = filepath.Clean(p)
	// Resolve symlinks in the parent so /tmp vs /private/tmp style aliases
	// compare equal; the base is kept so a symlinked entry matches itself.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(p)); err == nil {
		p = filepath.Join(dir, filepath.Base(p))
	}
	return p
}

// Walk calls fn for every entry below the root, in lexical order, skipping
// VCSDir entries and excluded paths. The root itself is not reported. An error
// from fn stops the walk and is returned as is.
func (t *Tree) Walk(fn func(Entry) error) error {
	return filepath.WalkDir(t.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == t.root {
			return nil
		}

		if d.Name() == VCSDir || t.exclude[path] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(t.root, path)
		if err != nil {
			return err
		}

		return fn(Entry{
			Path:  path,
			Rel:   filepath.ToSlash(rel),
			IsDir: d.IsDir(),
			Type:  d.Type(),
		})
	})
}

// HasBinaryExtension reports whether the base name of name ends with one of
// exts. The match is case-sensitive, so ".DS_Store" also matches that file.
func HasBinaryExtension(name string, exts []string) bool {
	base := filepath.Base(name)
	for _, ext := range exts {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}
