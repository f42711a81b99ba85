// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/invowk/editorconfig/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCommand(app *App, s *settings) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the CLI configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after the config file, EDITORCONFIG_* environment
variables, and command-line flags were applied.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(app.stdout, "conf_filename=%s\nformat=%s\nverbose=%t\nexpand_globs=%t\n",
				s.confFilename, s.format, s.verbose, s.expandGlobs)
			if err != nil || s.source == "" {
				return err
			}
			_, err = fmt.Fprintf(app.stdout, "source=%s\n", s.source)
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.stdout, PathStyle.Render(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)))
			return err
		},
	})

	return configCmd
}
