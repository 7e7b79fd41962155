package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filegen/internal/adapters/console"
	"filegen/internal/application"
	"filegen/internal/config"
	"filegen/internal/domain"
)

var (
	outputDir   string
	force       bool
	preview     bool
	yes         bool
	verbose     bool
	noHistory   bool
	historyPath string
	execGlobs   []string
	openOutput  bool

	logger *console.Logger
)

var rootCmd = &cobra.Command{
	Use:   "filegen <file.md>",
	Short: "Create directories and files from text descriptions",
	Long: `filegen turns a textual description of a project into real directories
and files.

It reads Markdown outlines ("# directory" / "## file" headings followed by
the file content), chat assistant replies (a tree drawing plus code blocks
introduced by file names) and raw tree drawings such as the output of tree.

Examples:
  filegen project.md -o ./out
  filegen chat --clipboard -o ./app
  tree -F | filegen tree -p`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = console.NewLogger(cmd.ErrOrStderr(), verbose)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		in, err := readInput(cmd, args, inputOptions{})
		if err != nil {
			return err
		}
		return runPipeline(cmd, in, domain.FormatMarkdown, nil)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, application.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputDir, "output", "o", config.OutputDir(), "directory to create the structure in")
	flags.BoolVarP(&force, "force", "f", false, "overwrite existing files without asking")
	flags.BoolVarP(&preview, "preview", "p", false, "show the structure without writing anything")
	flags.BoolVarP(&yes, "yes", "y", false, "answer yes to the overwrite prompt")
	flags.BoolVar(&verbose, "verbose", false, "log every directory and file")
	flags.BoolVar(&noHistory, "no-history", false, "do not record this run in the history database")
	flags.StringVar(&historyPath, "history-db", "", "history database path (default $FILEGEN_HISTORY or the XDG data directory)")
	flags.StringSliceVar(&execGlobs, "exec-glob", nil, "glob of generated files to mark executable, e.g. *.sh")
	flags.BoolVar(&openOutput, "open", false, "open the output directory in the file manager afterwards")
}
