package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ErrLocked is returned when the running executable cannot be removed by the
// process itself.
var ErrLocked = errors.New("running executable cannot be removed while it runs")

// SelfPath returns the absolute path of the file backing the running process,
// with symlinks resolved.
func SelfPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return ResolvePath(exe)
}

// ResolvePath returns path as an absolute path with symlinks resolved. A path
// that does not exist is returned cleaned but unresolved.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return resolved, nil
}

// RemoveSelf deletes the file at path. isRunning marks path as the executable
// of the current process, which Windows refuses to delete.
func RemoveSelf(path string, isRunning bool) error {
	if err := os.Remove(path); err != nil {
		if isRunning && runtime.GOOS == "windows" {
			return fmt.Errorf("removing %s: %w; delete it manually: %v", path, ErrLocked, err)
		}
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
