// SPDX-License-Identifier: MPL-2.0

package editorconfig

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"

	"github.com/invowk/editorconfig/pkg/platform"
)

// absFrom turns a slash path like "/project/a.go" into an absolute host path.
func absFrom(t testing.TB, slashPath string) string {
	t.Helper()

	abs, err := filepath.Abs(filepath.FromSlash(slashPath))
	if err != nil {
		t.Fatalf("filepath.Abs(%q): %v", slashPath, err)
	}
	return abs
}

// memFs builds an in-memory tree. Keys are slash paths made absolute with
// absFrom; values are file contents.
func memFs(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for p, content := range files {
		abs := absFrom(t, p)
		if err := fsys.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): %v", filepath.Dir(abs), err)
		}
		if err := afero.WriteFile(fsys, abs, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): %v", abs, err)
		}
	}
	return fsys
}

func skipOnWindows(t testing.TB) {
	t.Helper()

	if runtime.GOOS == platform.Windows {
		t.Skip("expectations use a single-root unix layout")
	}
}

func assertProps(t testing.TB, got *Properties, want [][2]string) {
	t.Helper()

	if got.Len() != len(want) {
		t.Fatalf("got %d properties %v, want %d %v", got.Len(), got.Keys(), len(want), want)
	}
	keys := got.Keys()
	for i, kv := range want {
		if keys[i] != kv[0] {
			t.Errorf("key[%d] = %q, want %q (order %v)", i, keys[i], kv[0], keys)
			continue
		}
		if v := got.Value(kv[0]); v != kv[1] {
			t.Errorf("%s = %q, want %q", kv[0], v, kv[1])
		}
	}
}
