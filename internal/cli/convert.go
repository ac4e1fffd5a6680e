package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/highlights2md/internal/config"
	"github.com/mrlokans/highlights2md/internal/exporters"
	"github.com/mrlokans/highlights2md/internal/importers"
	"github.com/mrlokans/highlights2md/internal/progress"
)

// ErrUsage signals that usage was printed instead of running the command.
// It is a normal exit, not a failure.
var ErrUsage = errors.New("usage shown")

// ConvertCommand turns an Instapaper highlights JSON export into one
// markdown file per highlighted page.
type ConvertCommand struct {
	InputPath string
	OutputDir string
	Quiet     bool
	Verbose   bool
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fs.SetOutput(os.Stdout)

	cfg := config.NewConfig()

	fs.StringVar(&cmd.OutputDir, "output", cfg.Export.OutputDir, "Output directory for markdown files")
	fs.BoolVar(&cmd.Quiet, "quiet", !cfg.UI.Progress, "Disable the progress bar")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print a line per exported document")

	fs.Usage = func() {
		fmt.Printf("Usage: %s convert [options] <highlights.json>\n\n", os.Args[0])
		fmt.Printf("Convert an Instapaper highlights JSON export into one markdown file\n")
		fmt.Printf("per highlighted page. The export is the JSON array produced by the\n")
		fmt.Printf("'Instapaper highlights exporter' browser extension.\n\n")
		fmt.Printf("Options:\n")
		fs.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  # Write markdown files into the current directory:\n")
		fmt.Printf("  %s convert highlights.json\n\n", os.Args[0])
		fmt.Printf("  # Write into an Obsidian vault folder:\n")
		fmt.Printf("  %s convert -output ~/Obsidian/Clippings highlights.json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Exactly one positional argument (the export path) is expected.
	// Anything else gets usage on stdout and a normal exit: asking for
	// help is not a failure.
	if fs.NArg() != 1 {
		fs.Usage()
		return ErrUsage
	}
	cmd.InputPath = fs.Arg(0)

	return nil
}

func (cmd *ConvertCommand) Run() error {
	file, err := os.Open(cmd.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open highlights file: %w", err)
	}
	defer file.Close()

	records, err := importers.ParseInstapaper(file)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No highlights found in export")
		return nil
	}

	exporter := exporters.NewMarkdownExporter(cmd.OutputDir)
	exporter.Verbose = cmd.Verbose

	// Verbose per-document lines and a redrawing bar fight over the
	// terminal, so verbose wins when both are requested.
	var buildProgress progress.Func
	if !cmd.Quiet && !cmd.Verbose {
		buildProgress = progress.NewBar(os.Stdout, "Building documents").Observer()
		exporter.OnProgress = progress.NewBar(os.Stdout, "Writing markdown").Observer()
	}

	pipeline := importers.NewPipeline(exporter, buildProgress)

	result, err := pipeline.Run(records)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d documents with %d highlights to %s\n",
		result.DocumentsProcessed, result.HighlightsProcessed, cmd.OutputDir)

	return nil
}
