// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// DefaultConfFileName is the configuration file looked up by default.
const DefaultConfFileName = ".editorconfig"

type (
	// Resolver resolves properties against a filesystem. It holds no state
	// between calls and is safe for concurrent use.
	Resolver struct {
		fs       afero.Fs
		confName string
		logger   *log.Logger
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithFs sets the filesystem configuration files are read from. The
// default is the host filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(r *Resolver) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// WithConfFileName sets the configuration file name looked up in each
// directory.
func WithConfFileName(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.confName = name
		}
	}
}

// WithLogger sets the logger receiving debug traces of the cascade.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:       afero.NewOsFs(),
		confName: DefaultConfFileName,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the properties of target using ".editorconfig" files on
// the host filesystem.
func Resolve(target string) (*Properties, error) {
	return NewResolver().Resolve(target)
}

// ResolveNamed is Resolve with a custom configuration file name.
func ResolveNamed(target, confName string) (*Properties, error) {
	return NewResolver(WithConfFileName(confName)).Resolve(target)
}

// ConfFileName returns the configuration file name the Resolver looks up.
func (r *Resolver) ConfFileName() string { return r.confName }

// Resolve walks the configuration files from the directory of target up to
// the filesystem root, nearest first. A property set by a nearer file wins;
// the walk stops after a file declaring root = true. target does not have
// to exist.
//
// Missing configuration files are skipped. An empty result with a nil error
// means no file applied to target.
func (r *Resolver) Resolve(target string) (*Properties, error) {
	abs, candidates, err := crawl(target, r.confName)
	if err != nil {
		return nil, err
	}

	props := newProperties()
	for _, candidate := range candidates {
		f, err := r.load(candidate)
		if err != nil {
			return nil, err
		}
		if f == nil {
			continue
		}

		layer := resolveLayer(f, abs, r.logger)
		applied := r.merge(props, layer)
		r.logger.Debug("applied configuration file", "path", candidate, "matched", layer.Values.Len(), "applied", applied)

		if layer.Root {
			r.logger.Debug("cascade stopped at root file", "path", candidate)
			break
		}
	}

	return props, nil
}

// merge folds a layer into props under closest-wins precedence and returns
// how many properties it added.
func (r *Resolver) merge(props *Properties, layer *Layer) int {
	added := 0
	for key, value := range layer.Values.All() {
		key = strings.ToLower(key)
		if key == rootKey {
			continue
		}
		if IsKnownKey(key) {
			value = strings.ToLower(value)
		}
		if !withinLimits(key, value) {
			r.logger.Debug("property exceeds length limits", "key", key, "key_len", len(key), "value_len", len(value))
			continue
		}
		if props.setIfAbsent(key, value) {
			added++
		}
	}
	return added
}

// load parses the configuration file at path. It returns nil, nil when no
// regular file exists there.
func (r *Resolver) load(path string) (*File, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, newPathError("stat", path, ErrIO, err)
	}
	if info.IsDir() {
		r.logger.Debug("configuration path is a directory", "path", path)
		return nil, nil
	}

	return ParseFile(r.fs, path)
}

// isNotExist also accepts ENOTDIR, reported when a parent of path is a
// regular file.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
