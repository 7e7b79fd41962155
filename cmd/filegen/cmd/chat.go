package cmd

import (
	"github.com/spf13/cobra"

	"filegen/internal/domain"
)

var (
	chatClipboard bool
	chatEdit      bool
)

var chatCmd = &cobra.Command{
	Use:   "chat [file]",
	Short: "Generate a structure from a chat assistant reply",
	Long: `Generate a structure from a chat assistant reply.

The reply may contain a tree drawing of the project and code blocks. Each
code block is matched to the file named just before it ("**src/app.py**",
"### main.go", a quoted name, ...).

Without a file argument the reply is read from piped standard input, or
pasted into an editor view when standard input is a terminal.

Examples:
  filegen chat reply.md -o ./app
  filegen chat --clipboard -p
  pbpaste | filegen chat -o ./app`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args, inputOptions{
			clipboard:  chatClipboard,
			edit:       chatEdit,
			pasteTitle: "Paste the chat response",
		})
		if err != nil {
			return err
		}
		return runPipeline(cmd, in, domain.FormatChat, nil)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatClipboard, "clipboard", false, "read the reply from the system clipboard")
	chatCmd.Flags().BoolVarP(&chatEdit, "edit", "e", false, "review the reply in $EDITOR before parsing")
}
