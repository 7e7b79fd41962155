package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filegen/internal/adapters/filesystem"
	"filegen/internal/adapters/opener"
	"filegen/internal/adapters/sqlite"
	"filegen/internal/adapters/tui"
	"filegen/internal/adapters/tui/views"
	"filegen/internal/application"
	"filegen/internal/application/commands"
	"filegen/internal/config"
	"filegen/internal/domain"
	"filegen/internal/parser"
	"filegen/internal/ports"
)

// parse runs the parser for format and logs its warnings
func parse(ctx context.Context, in *input, format domain.Format, parsers commands.Parsers) (*commands.ParseResult, error) {
	if parsers == nil {
		parsers = parser.NewParsers()
	}

	result, err := commands.NewParseCommand(parsers, in.content, format).Execute(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn("%s", w)
	}
	logger.Info("%s", result.Message)
	return result, nil
}

// runPipeline parses, previews, validates and generates a structure
func runPipeline(cmd *cobra.Command, in *input, format domain.Format, parsers commands.Parsers) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	parsed, err := parse(ctx, in, format, parsers)
	if err != nil {
		return err
	}

	root, err := application.ResolveOutputDir(outputDir)
	if err != nil {
		return err
	}
	logger.Debug("Output directory: %s", root)

	validator := application.NewStructureValidator()
	validation, err := commands.NewValidateCommand(validator, parsed.Entries, root).Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(out, views.RenderTree(parsed.Entries, validation.Conflicts))
	fmt.Fprintln(out, views.RenderSummary(parsed.Entries))
	fmt.Fprint(out, views.RenderValidation(validation))

	if preview {
		return nil
	}
	if !validation.OK {
		return &application.StructureError{Errors: validation.Errors}
	}

	writer := filesystem.NewGenerator(
		filesystem.WithExecGlobs(execGlobs...),
		filesystem.WithLogger(logger),
	)
	gen := commands.NewGenerateCommand(writer, validator, parsed.Entries, root)
	gen.Force = force || yes
	gen.Source = in.source
	gen.Format = parsed.Format
	if !gen.Force && stdinIsTerminal() {
		gen.WithConfirmer(tui.NewApp())
	}

	if history := openHistory(); history != nil {
		defer history.Close()
		gen.WithHistory(history)
	}

	result, err := gen.Execute(ctx)
	if err != nil {
		return err
	}

	logger.Success("%s", result.Message)
	if result.HistoryErr != nil {
		logger.Warn("Run not recorded in history: %v", result.HistoryErr)
	}

	if openOutput {
		if err := opener.NewOpener().Open(result.OutputDir); err != nil {
			logger.Warn("%v", err)
		}
	}
	return nil
}

// openHistory opens the history database unless disabled. A database that
// cannot be opened only costs the record of this run.
func openHistory() ports.GenerationHistory {
	if noHistory {
		return nil
	}

	path := historyPath
	if path == "" {
		path = config.HistoryPath()
	}

	history := sqlite.NewHistory()
	if err := history.Open(path); err != nil {
		logger.Warn("History disabled: %v", err)
		return nil
	}
	logger.Debug("Recording history in %s", path)
	return history
}
