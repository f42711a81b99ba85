// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestOutputFormat_Validate(t *testing.T) {
	t.Parallel()

	for _, f := range OutputFormats() {
		if err := f.Validate(); err != nil {
			t.Errorf("%q.Validate() = %v, want nil", f, err)
		}
	}
	for _, f := range []OutputFormat{"", "xml", "JSON"} {
		err := f.Validate()
		if !errors.Is(err, ErrInvalidOutputFormat) {
			t.Errorf("%q.Validate() = %v, want ErrInvalidOutputFormat", f, err)
		}
	}
}

func TestConfFilename_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ConfFilename
		wantErr bool
	}{
		{"default", ".editorconfig", false},
		{"custom", ".ecfg", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"slash", "conf/.editorconfig", true},
		{"backslash", `conf\.editorconfig`, true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"reserved device", "nul", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfFilename) {
				t.Errorf("error should wrap ErrInvalidConfFilename, got %v", err)
			}
		})
	}
}

func TestConfig_Validate_CollectsFieldErrors(t *testing.T) {
	t.Parallel()
	cfg := &Config{ConfFilename: "", Format: "xml"}

	err := cfg.Validate()
	var ice *InvalidConfigError
	if !errors.As(err, &ice) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(ice.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %d, want 2", len(ice.FieldErrors))
	}
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidOutputFormat) || !errors.Is(err, ErrInvalidConfFilename) {
		t.Errorf("error chain incomplete: %v", err)
	}
}
