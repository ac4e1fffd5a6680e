package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/highlights2md/internal/entities"
	"github.com/mrlokans/highlights2md/internal/progress"
	"github.com/mrlokans/highlights2md/internal/utils"
)

// MarkdownExporter writes one markdown file per document into OutputDir.
type MarkdownExporter struct {
	OutputDir  string
	OnProgress progress.Func
	Verbose    bool
	Result     ExportResult
}

func NewMarkdownExporter(outputDir string) *MarkdownExporter {
	return &MarkdownExporter{OutputDir: outputDir}
}

// GenerateMarkdown renders a document: a level-1 title heading, a Source
// link line, then each highlight verbatim on its own line. Highlight text
// is not escaped, so markdown control characters inside a highlight will
// affect how the file renders; that matches the export's contract.
func GenerateMarkdown(doc *entities.Document) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n", doc.Title)
	fmt.Fprintf(&builder, "[Source](%s)\n", doc.URL)
	for _, highlight := range doc.Highlights {
		fmt.Fprintf(&builder, "%s\n", highlight)
	}

	return builder.String()
}

func (exporter *MarkdownExporter) ensureDir() error {
	if exporter.OutputDir == "" || exporter.OutputDir == "." {
		return nil
	}
	if _, err := os.Stat(exporter.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(exporter.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}

// exportDocument writes a single document. The target file is created or
// truncated; two documents whose titles reduce to the same filename
// silently overwrite each other, last write wins.
func (exporter *MarkdownExporter) exportDocument(doc entities.Document) (string, error) {
	outputPath := filepath.Join(exporter.OutputDir, utils.TitleToFilename(doc.Title))

	if err := os.WriteFile(outputPath, []byte(GenerateMarkdown(&doc)), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	exporter.Result.HighlightsProcessed += len(doc.Highlights)

	if exporter.Verbose {
		fmt.Printf("Exported %q (%d highlights) to %s\n", doc.Title, len(doc.Highlights), outputPath)
	}

	return outputPath, nil
}

func (exporter *MarkdownExporter) Export(docs []entities.Document) (ExportResult, error) {
	// Reset result state for each export
	exporter.Result = ExportResult{}

	if err := exporter.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	for i, doc := range docs {
		if _, err := exporter.exportDocument(doc); err != nil {
			return ExportResult{}, err
		}
		exporter.Result.DocumentsProcessed++

		if exporter.OnProgress != nil {
			exporter.OnProgress(i+1, len(docs))
		}
	}

	return exporter.Result, nil
}

// Compile-time interface check
var _ DocumentExporter = (*MarkdownExporter)(nil)
