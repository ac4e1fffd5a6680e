package entities

// HighlightRecord is a single entry from an Instapaper highlights export:
// one highlighted passage together with the page it was taken from. Several
// records share the same Source when they were made on the same page.
type HighlightRecord struct {
	Source    string `json:"source"`
	Title     string `json:"title"`
	Highlight string `json:"highlight"`
}

// DocumentGroup aggregates every record that shares a source URL.
// Titles holds the distinct title strings in first-seen order (a page can
// change its title between highlighting sessions); Highlights holds the
// highlight text in input order, which is newest-first in the export.
type DocumentGroup struct {
	URL        string
	Titles     []string
	Highlights []string
}

// Document is a renderable document, one per source URL, with a single
// display title and highlights in reading order (oldest first).
type Document struct {
	URL        string
	Title      string
	Highlights []string
}
