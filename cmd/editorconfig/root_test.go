// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/invowk/editorconfig/internal/config"
	"github.com/invowk/editorconfig/pkg/platform"

	"github.com/spf13/afero"
)

type staticConfig struct {
	cfg *config.Config
	err error
}

func (p staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	cfg := *p.cfg
	return &cfg, nil
}

// runCLI executes the command tree against an in-memory filesystem and
// returns stdout, stderr, and the exit code.
func runCLI(t *testing.T, files map[string]string, cfg *config.Config, args ...string) (string, string, int) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("in-memory fixtures use slash-rooted paths")
	}

	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticConfig{cfg: cfg},
		Fs:     fs,
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), exitCode(err)
}

var projectFiles = map[string]string{
	"/proj/.editorconfig": `root = true

[*]
indent_style = space
indent_size = 2
end_of_line = LF

[*.go]
indent_style = tab
`,
	"/proj/src/.editorconfig": `[main.go]
charset = utf-8
`,
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version, Commit, BuildDate = "v1.2.3", "abc1234", "2026-06-15T10:00:00Z"

		want := "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestRoot_SingleTarget(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := runCLI(t, projectFiles, nil, "/proj/src/main.go")
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	want := "charset=utf-8\nindent_style=tab\nindent_size=2\nend_of_line=lf\ntab_width=2\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}
}

func TestRoot_MultipleTargets(t *testing.T) {
	t.Parallel()

	stdout, _, code := runCLI(t, projectFiles, nil, "/proj/a.txt", "/proj/src/main.go")
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(stdout, "[/proj/a.txt]\nindent_style=space\n") {
		t.Errorf("first block missing header:\n%s", stdout)
	}
	if !strings.Contains(stdout, "\n[/proj/src/main.go]\ncharset=utf-8\n") {
		t.Errorf("second block missing header:\n%s", stdout)
	}
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"/proj/.ecfg": "root = true\n[*]\nindent_size = 8\n",
	}
	cfg := config.DefaultConfig()
	cfg.Format = config.FormatYAML

	stdout, stderr, code := runCLI(t, files, cfg, "-f", ".ecfg", "--format", "json", "/proj/x.c")
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := "{\n  \"indent_size\": \"8\",\n  \"tab_width\": \"8\"\n}\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRoot_ConfigFileNameFromConfig(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"/proj/.ecfg":         "root = true\n[*]\nindent_style = tab\n",
		"/proj/.editorconfig": "root = true\n[*]\nindent_style = space\n",
	}
	cfg := config.DefaultConfig()
	cfg.ConfFilename = ".ecfg"

	stdout, _, code := runCLI(t, files, cfg, "/proj/x.c")
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "indent_style=tab\nindent_size=tab\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRoot_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    map[string]string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "no targets",
			args:     nil,
			wantCode: ExitUsage,
			wantErr:  "no target files",
		},
		{
			name:     "unknown format",
			args:     []string{"--format", "xml", "/proj/a.c"},
			wantCode: ExitUsage,
			wantErr:  "invalid output format",
		},
		{
			name:     "conf filename with separator",
			args:     []string{"-f", "a/b", "/proj/a.c"},
			wantCode: ExitUsage,
			wantErr:  "path separator",
		},
		{
			name:     "parse error",
			files:    map[string]string{"/proj/.editorconfig": "[*\n"},
			args:     []string{"/proj/a.c"},
			wantCode: ExitFailure,
			wantErr:  "Fix the syntax of /proj/.editorconfig",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, code := runCLI(t, tt.files, nil, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stdout != "" {
				t.Errorf("stdout should be empty, got %q", stdout)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr should contain %q:\n%s", tt.wantErr, stderr)
			}
		})
	}
}

func TestRoot_ConfigLoadError(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == platform.Windows {
		t.Skip("in-memory fixtures use slash-rooted paths")
	}

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticConfig{err: errors.New("broken config")},
		Fs:     afero.NewMemMapFs(),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs([]string{"/proj/a.c"})

	err := root.ExecuteContext(context.Background())
	if exitCode(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCode(err), ExitUsage)
	}
	if !strings.Contains(stderr.String(), "broken config") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestFindCommand(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := runCLI(t, projectFiles, nil, "find", "--sections", "/proj/src")
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := "/proj/.editorconfig\nroot=true\n[*]\nindent_style=space\nindent_size=2\nend_of_line=LF\n[*.go]\nindent_style=tab\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}
}

func TestFindCommand_NotFound(t *testing.T) {
	t.Parallel()
	files := map[string]string{"/proj/.editorconfig": "[*]\nindent_style = tab\n"}

	_, stderr, code := runCLI(t, files, nil, "find", "/proj")
	if code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
	if !strings.Contains(stderr, "root = true") {
		t.Errorf("stderr should suggest adding root = true:\n%s", stderr)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	stdout, _, code := runCLI(t, nil, nil, "config", "show", "--format", "toml")
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	want := "conf_filename=.editorconfig\nformat=toml\nverbose=false\nexpand_globs=false\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	if got := exitCode(nil); got != ExitOK {
		t.Errorf("exitCode(nil) = %d", got)
	}
	if got := exitCode(errors.New("x")); got != ExitFailure {
		t.Errorf("exitCode(plain) = %d", got)
	}
	if got := exitCode(&ExitError{Code: 7}); got != 7 {
		t.Errorf("exitCode(ExitError{7}) = %d", got)
	}
}

func TestRoot_VerboseTracesCascade(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := runCLI(t, projectFiles, nil, "--verbose", "/proj/src/main.go")
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "charset=utf-8") {
		t.Errorf("stdout = %q", stdout)
	}
	for _, want := range []string{"applied configuration file", "cascade stopped at root file"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q:\n%s", want, stderr)
		}
	}
}

func TestRoot_QuietByDefault(t *testing.T) {
	t.Parallel()

	_, stderr, code := runCLI(t, projectFiles, nil, "/proj/src/main.go")
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	if stderr != "" {
		t.Errorf("stderr should be empty without --verbose, got %q", stderr)
	}
}
