package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// sampleCommand creates the command that prints the built-in roster, a
// starting point for writing a real one.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		formatStr string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample roster",
		Long: `Print the built-in sample roster.

Without --output the roster is written to stdout as JSON (or --format).
With --output the format follows the file extension unless --format is given.

Examples:
  orgchart sample > roster.json
  orgchart sample -o roster.yaml
  orgchart sample -f toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := roster.FormatJSON
			if output != "" {
				format = roster.FormatFromPath(output)
			}
			if cmd.Flags().Changed("format") {
				f, err := roster.ParseFormat(formatStr)
				if err != nil {
					return err
				}
				format = f
			}

			if output == "" {
				return roster.Write(cmd.OutOrStdout(), roster.Default(), format)
			}
			if err := writeSample(output, format); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("wrote sample roster", "path", output, "format", string(format))
			printSuccess("Sample roster written")
			printFile(output, fmt.Sprintf("%d positions", len(roster.Default())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", "", "roster format: json (default), yaml, toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// writeSample writes the built-in roster to path in format, which wins over
// the file extension.
func writeSample(path string, format roster.Format) error {
	if format == roster.FormatFromPath(path) {
		return roster.Export(path, roster.Default())
	}

	var buf bytes.Buffer
	if err := roster.Write(&buf, roster.Default(), format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
