package importers

import (
	"testing"

	"github.com/mrlokans/highlights2md/internal/entities"
	"github.com/mrlokans/highlights2md/internal/exporters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingExporter records what the pipeline hands it without touching the
// filesystem.
type capturingExporter struct {
	docs   []entities.Document
	called int
}

func (e *capturingExporter) Export(docs []entities.Document) (exporters.ExportResult, error) {
	e.docs = docs
	e.called++

	result := exporters.ExportResult{DocumentsProcessed: len(docs)}
	for _, doc := range docs {
		result.HighlightsProcessed += len(doc.Highlights)
	}
	return result, nil
}

func TestPipelineRun(t *testing.T) {
	t.Run("one document per distinct source", func(t *testing.T) {
		exporter := &capturingExporter{}
		pipeline := NewPipeline(exporter, nil)

		records := []entities.HighlightRecord{
			{Source: "http://a", Title: "A", Highlight: "h1"},
			{Source: "http://b", Title: "B", Highlight: "h2"},
			{Source: "http://a", Title: "A", Highlight: "h3"},
		}

		result, err := pipeline.Run(records)

		require.NoError(t, err)
		assert.Equal(t, 2, result.DocumentsProcessed)
		assert.Equal(t, 3, result.HighlightsProcessed)
		require.Len(t, exporter.docs, 2)
	})

	t.Run("later highlights render first", func(t *testing.T) {
		exporter := &capturingExporter{}
		pipeline := NewPipeline(exporter, nil)

		records := []entities.HighlightRecord{
			{Source: "http://a", Title: "A", Highlight: "h1"},
			{Source: "http://a", Title: "A", Highlight: "h2"},
		}

		_, err := pipeline.Run(records)

		require.NoError(t, err)
		require.Len(t, exporter.docs, 1)
		assert.Equal(t, []string{"h2", "h1"}, exporter.docs[0].Highlights)
	})

	t.Run("reports progress per document", func(t *testing.T) {
		exporter := &capturingExporter{}

		var updates [][2]int
		pipeline := NewPipeline(exporter, func(current, total int) {
			updates = append(updates, [2]int{current, total})
		})

		records := []entities.HighlightRecord{
			{Source: "http://a", Title: "A", Highlight: "h"},
			{Source: "http://b", Title: "B", Highlight: "h"},
		}

		_, err := pipeline.Run(records)

		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, updates)
	})

	t.Run("empty input exports nothing", func(t *testing.T) {
		exporter := &capturingExporter{}
		pipeline := NewPipeline(exporter, nil)

		result, err := pipeline.Run(nil)

		require.NoError(t, err)
		assert.Equal(t, exporters.ExportResult{}, result)
		assert.Zero(t, exporter.called)
	})
}
