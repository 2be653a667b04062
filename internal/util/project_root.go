package util

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var ErrNoProjectRoot = errors.New("go.mod not found in any parent directory")

// GetProjectRoot returns WORKING_DIRECTORY when set, otherwise the closest
// parent of the current directory that holds a go.mod. Outside a source
// checkout the current directory itself is the root.
func GetProjectRoot() (string, error) {
	dir, set := os.LookupEnv("WORKING_DIRECTORY")
	if set {
		return filepath.Clean(dir), nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "get working directory")
	}

	root, err := findModuleRoot(dir, "")
	if errors.Is(err, ErrNoProjectRoot) {
		return dir, nil
	}
	return root, err
}

// findModuleRoot walks up from start. The search ends after ceiling has been
// checked, or at the filesystem root when ceiling is empty.
func findModuleRoot(start string, ceiling string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == ceiling {
			return "", errors.Wrapf(ErrNoProjectRoot, "search started at %s", start)
		}
		dir = parent
	}
}
