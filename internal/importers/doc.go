// Package importers reads an Instapaper highlights export and drives the
// conversion pipeline.
//
// The flow mirrors the export's shape:
//
//	JSON array → ParseInstapaper → HighlightRecord → GroupBySource →
//	DocumentGroup → documents.Build → Document → Exporter
//
// Parsing is all-or-nothing: a malformed export aborts the run before any
// output file is written. Grouping keys on the source URL rather than the
// title, because two different pages can share a title while a URL is
// unique by construction.
package importers
