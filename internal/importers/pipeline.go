package importers

import (
	"github.com/mrlokans/highlights2md/internal/documents"
	"github.com/mrlokans/highlights2md/internal/entities"
	"github.com/mrlokans/highlights2md/internal/exporters"
	"github.com/mrlokans/highlights2md/internal/progress"
)

// Exporter persists rendered documents.
type Exporter interface {
	Export(docs []entities.Document) (exporters.ExportResult, error)
}

// Pipeline handles the conversion workflow:
// group by URL → build documents → export.
//
// This is the single orchestration point; the CLI command only does flag
// and file plumbing around it.
type Pipeline struct {
	exporter   Exporter
	onProgress progress.Func
}

// NewPipeline creates a conversion pipeline with the given exporter.
// onProgress is invoked once per built document and may be nil.
func NewPipeline(exporter Exporter, onProgress progress.Func) *Pipeline {
	return &Pipeline{exporter: exporter, onProgress: onProgress}
}

// Run processes parsed records and exports one document per source URL.
// This is the main entry point for a conversion.
func (p *Pipeline) Run(records []entities.HighlightRecord) (exporters.ExportResult, error) {
	if len(records) == 0 {
		return exporters.ExportResult{}, nil
	}

	groups := GroupBySource(records)

	docs := make([]entities.Document, 0, len(groups))
	for i, group := range groups {
		docs = append(docs, documents.Build(group))
		if p.onProgress != nil {
			p.onProgress(i+1, len(groups))
		}
	}

	return p.exporter.Export(docs)
}
