package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filegen/internal/adapters/tui/views"
	"filegen/internal/application"
	"filegen/internal/application/commands"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a structure without writing anything",
	Long: `Parse a file and check the structure it describes against the output
directory: invalid or duplicate names, reserved names, files in the way of
directories and files that already exist.

Use "-" to read standard input.

Examples:
  filegen validate project.md
  filegen validate reply.md --format chat -o ./app`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		format, err := application.ParseFormat(validateFormat)
		if err != nil {
			return err
		}

		in, err := readInput(cmd, args, inputOptions{})
		if err != nil {
			return err
		}

		parsed, err := parse(ctx, in, format, nil)
		if err != nil {
			return err
		}

		result, err := commands.NewValidateCommand(application.NewStructureValidator(), parsed.Entries, outputDir).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, views.RenderSummary(parsed.Entries))
		fmt.Fprint(out, views.RenderValidation(result))
		for _, path := range result.Conflicts {
			logger.Debug("Exists: %s", path)
		}

		if !result.OK {
			return &application.StructureError{Errors: result.Errors}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateFormat, "format", "auto", "input format: auto, markdown, chat or tree")
}
