// SPDX-License-Identifier: MPL-2.0

package editorconfig

import "path/filepath"

// Find returns the nearest ".editorconfig" declaring root = true, starting in
// path when it is a directory or in its parent otherwise.
func Find(path string) (*File, error) {
	return NewResolver().Find(path)
}

// Find returns the parsed content of the nearest configuration file whose
// preamble declares root = true. Files without the marker are skipped. The
// error wraps ErrNotFound when the filesystem root is reached first.
func (r *Resolver) Find(path string) (*File, error) {
	abs, err := absPath(path)
	if err != nil {
		return nil, err
	}

	dir := abs
	if info, statErr := r.fs.Stat(abs); statErr != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		candidate := filepath.Join(dir, r.confName)
		f, err := r.load(candidate)
		if err != nil {
			return nil, err
		}
		if f != nil && f.Root {
			return f, nil
		}
		if f != nil {
			r.logger.Debug("skipping non-root configuration file", "path", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, newPathError("find", path, ErrNotFound, nil)
		}
		dir = parent
	}
}
