package importers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrlokans/highlights2md/internal/entities"
)

// instapaperRecord mirrors one element of the export array. The fields are
// pointers so that a missing key can be told apart from an empty string.
type instapaperRecord struct {
	Source    *string `json:"source"`
	Title     *string `json:"title"`
	Highlight *string `json:"highlight"`
}

// ParseInstapaper decodes a JSON export produced by the Instapaper
// highlights exporter extension: a flat array of records, each carrying a
// page URL, the page title and one highlighted passage.
//
// Malformed JSON or a record missing a required field fails the whole
// parse; there is no skip-and-continue recovery for individual records.
func ParseInstapaper(r io.Reader) ([]entities.HighlightRecord, error) {
	var raw []instapaperRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse highlights JSON: %w", err)
	}

	records := make([]entities.HighlightRecord, 0, len(raw))
	for i, rec := range raw {
		switch {
		case rec.Source == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "source")
		case rec.Title == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "title")
		case rec.Highlight == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "highlight")
		}

		records = append(records, entities.HighlightRecord{
			Source:    *rec.Source,
			Title:     *rec.Title,
			Highlight: *rec.Highlight,
		})
	}

	return records, nil
}
