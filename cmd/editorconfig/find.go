// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"

	"github.com/invowk/editorconfig/internal/issue"
	"github.com/invowk/editorconfig/pkg/editorconfig"

	"github.com/spf13/cobra"
)

func newFindCommand(app *App, s *settings) *cobra.Command {
	var showSections bool

	cmd := &cobra.Command{
		Use:   "find [DIR]",
		Short: "Print the nearest configuration file declaring root = true",
		Long: `Walk up from DIR (default: the current directory) and print the path of
the nearest configuration file whose preamble declares root = true.
With --sections the parsed sections are printed below the path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}

			f, err := app.newResolver(s).Find(start)
			if err != nil {
				err = issue.ForResolve(err, "find root configuration", start)
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, s.verbose))
				return &ExitError{Code: ExitFailure, Err: err}
			}

			var buf bytes.Buffer
			buf.WriteString(f.Path)
			buf.WriteByte('\n')
			if showSections {
				writeSections(&buf, f)
			}
			_, err = app.stdout.Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVar(&showSections, "sections", false, "also print the parsed sections")
	return cmd
}

// writeSections prints f back in INI form, one pair per line.
func writeSections(buf *bytes.Buffer, f *editorconfig.File) {
	for _, p := range f.Preamble {
		fmt.Fprintf(buf, "%s=%s\n", p.Key, p.Value)
	}
	for _, sec := range f.Sections {
		fmt.Fprintf(buf, "[%s]\n", sec.Pattern)
		for _, p := range sec.Pairs {
			fmt.Fprintf(buf, "%s=%s\n", p.Key, p.Value)
		}
	}
}
