// SPDX-License-Identifier: MPL-2.0

// Package config handles CLI configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/editorconfig/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/editorconfig/config.cue on macOS,
// %APPDATA%\editorconfig\config.cue on Windows). Every key can be overridden with an
// EDITORCONFIG_<KEY> environment variable, and command-line flags override both.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
