package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"filegen/internal/adapters/clipboard"
	"filegen/internal/adapters/editor"
	"filegen/internal/adapters/filesystem"
	"filegen/internal/adapters/tui"
)

// input is a loaded text buffer and where it came from
type input struct {
	content string
	source  string
}

type inputOptions struct {
	clipboard  bool   // Read the system clipboard
	edit       bool   // Review the text in $EDITOR before parsing
	pasteTitle string // Title of the paste view; empty disables pasting
}

// stdinIsTerminal reports whether standard input is interactive
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readInput loads the text to parse from, in order: the clipboard when asked,
// a file argument, piped standard input, or the interactive paste view
func readInput(cmd *cobra.Command, args []string, opts inputOptions) (*input, error) {
	in, err := loadInput(cmd, args, opts)
	if err != nil {
		return nil, err
	}

	if opts.edit {
		edited, err := editor.NewOpener().EditBuffer(in.content, "filegen-*.md")
		if err != nil {
			return nil, err
		}
		in.content = edited
	}

	logger.Debug("Read %d bytes from %s", len(in.content), in.source)
	return in, nil
}

func loadInput(cmd *cobra.Command, args []string, opts inputOptions) (*input, error) {
	switch {
	case opts.clipboard:
		content, err := clipboard.NewReader().Read()
		if err != nil {
			return nil, err
		}
		return &input{content: content, source: clipboard.Source}, nil

	case len(args) > 0 && args[0] != filesystem.StdinSource:
		content, err := filesystem.ReadSource(args[0])
		if err != nil {
			return nil, err
		}
		return &input{content: content, source: args[0]}, nil

	case len(args) > 0 || opts.pasteTitle == "" || !stdinIsTerminal():
		content, err := filesystem.ReadAll(cmd.InOrStdin(), "stdin")
		if err != nil {
			return nil, err
		}
		return &input{content: content, source: "stdin"}, nil

	default:
		content, err := tui.NewApp().RunPaste(opts.pasteTitle)
		if err != nil {
			return nil, err
		}
		return &input{content: content, source: "paste"}, nil
	}
}
