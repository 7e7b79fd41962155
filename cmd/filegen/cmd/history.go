package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filegen/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Long: `List recent generation runs, newest first, with the files each run wrote.

Examples:
  filegen history
  filegen history --limit 5 --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noHistory {
			return fmt.Errorf("history is disabled by --no-history")
		}
		history := openHistory()
		if history == nil {
			return fmt.Errorf("history is not available")
		}
		defer history.Close()

		runs, err := commands.NewListHistoryCommand(history, historyLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(out, "#%d  %s  %-8s %s -> %s  (%d dirs, %d files, %d skipped)\n",
				r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Format, r.Source, r.OutputDir,
				r.Stats.DirectoriesCreated, r.Stats.FilesCreated, r.Stats.FilesSkipped)
			if verbose {
				for _, path := range r.Stats.Written {
					fmt.Fprintf(out, "    %s\n", path)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "maximum number of runs to list")
}
