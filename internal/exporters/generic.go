package exporters

import "github.com/mrlokans/highlights2md/internal/entities"

type DocumentExporter interface {
	Export(docs []entities.Document) (ExportResult, error)
}

type ExportResult struct {
	DocumentsProcessed  int `json:"documents_processed"`
	HighlightsProcessed int `json:"highlights_processed"`
}
