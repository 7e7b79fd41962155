package cmd

import (
	"github.com/spf13/cobra"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/parser"
)

var (
	treeClipboard bool
	treeEdit      bool
	treeMaxDepth  int
	treeTabWidth  int
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Generate a structure from a tree drawing",
	Long: `Generate a structure from a tree drawing: tree command output, Unicode or
ASCII diagrams, or a plain indented list. Names ending in "/" are
directories; other names are files when they carry an extension.

The root line is kept, so "app/" followed by "└── main.go" creates
app/main.go. Lines that break a limit are skipped with a warning.

Examples:
  filegen tree layout.txt -o ./out
  tree -F my-project | filegen tree -p`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if treeMaxDepth < 0 {
			return &application.ValidationError{Field: "max-depth", Message: "must be 0 or greater"}
		}
		if treeTabWidth < 1 {
			return &application.ValidationError{Field: "tab-width", Message: "must be 1 or greater"}
		}

		in, err := readInput(cmd, args, inputOptions{
			clipboard:  treeClipboard,
			edit:       treeEdit,
			pasteTitle: "Paste the tree",
		})
		if err != nil {
			return err
		}

		parsers := parser.NewParsers()
		parsers[domain.FormatTree] = parser.NewTreeParser(
			parser.WithMaxDepth(treeMaxDepth),
			parser.WithTabWidth(treeTabWidth),
		)
		return runPipeline(cmd, in, domain.FormatTree, parsers)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeClipboard, "clipboard", false, "read the tree from the system clipboard")
	treeCmd.Flags().BoolVarP(&treeEdit, "edit", "e", false, "review the tree in $EDITOR before parsing")
	treeCmd.Flags().IntVar(&treeMaxDepth, "max-depth", parser.DefaultMaxDepth, "deepest nesting level accepted")
	treeCmd.Flags().IntVar(&treeTabWidth, "tab-width", parser.DefaultTabWidth, "spaces per tab in indented lists")
}
