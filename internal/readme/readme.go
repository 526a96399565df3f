// Package readme removes the template-usage section from the top of a
// project's README. Everything up to and including the first separator line
// is dropped; the rest of the file is kept byte for byte.
package readme

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultSeparator delimits the template-usage section.
const DefaultSeparator = "---"

// ErrNotFound is returned when the README does not exist.
var ErrNotFound = errors.New("readme not found")

// Result describes a trim.
type Result struct {
	Dropped int  // Lines removed, separator included
	Kept    int  // Lines written back
	Found   bool // Whether the separator was seen
}

// Trim rewrites path without its leading section. When the separator never
// appears the file ends up empty. A missing file yields ErrNotFound and nothing
// is created. With dryRun the file is left untouched.
func Trim(path, separator string, dryRun bool) (*Result, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	kept, result, err := split(f, separator)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if dryRun {
		return result, nil
	}
	if err := os.WriteFile(path, kept, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return result, nil
}

// split returns the bytes following the first separator line.
func split(r io.Reader, separator string) ([]byte, *Result, error) {
	reader := bufio.NewReader(r)
	var kept bytes.Buffer
	result := &Result{}

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			switch {
			case result.Found:
				kept.WriteString(line)
				result.Kept++
			case isSeparator(line, separator):
				result.Found = true
				result.Dropped++
			default:
				result.Dropped++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return kept.Bytes(), result, nil
}

func isSeparator(line, separator string) bool {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line == separator
}
