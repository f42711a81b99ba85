// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"errors"
	"path/filepath"
	"strings"
)

// Crawl returns the configuration file candidates for path: name inside the
// directory of path, then inside every ancestor up to the filesystem root.
// path does not have to exist; relative paths are resolved against the
// working directory.
func Crawl(path, name string) ([]string, error) {
	_, candidates, err := crawl(path, name)
	return candidates, err
}

// crawl also returns the absolute form of path.
func crawl(path, name string) (string, []string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil, newPathError("crawl", path, ErrMalformedPath, errors.New("empty configuration file name"))
	}

	abs, err := absPath(path)
	if err != nil {
		return "", nil, err
	}

	dir := filepath.Dir(abs)
	if dir == abs {
		return "", nil, newPathError("crawl", path, ErrMalformedPath, errors.New("path has no parent directory"))
	}

	var candidates []string
	for {
		candidates = append(candidates, filepath.Join(dir, name))
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return abs, candidates, nil
}

func absPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", newPathError("resolve", path, ErrMalformedPath, errors.New("empty path"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", newPathError("resolve", path, ErrMalformedPath, err)
	}
	return abs, nil
}
