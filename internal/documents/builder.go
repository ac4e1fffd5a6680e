package documents

import (
	"sort"
	"strings"

	"github.com/mrlokans/highlights2md/internal/entities"
)

// CleanTitle derives the single display title for a document from the
// distinct titles observed for its URL. When more than one distinct title
// exists no canonical choice can be made, so the titles are sorted and
// joined with ", ". Brace and quote characters are stripped, trailing
// periods removed, and surrounding whitespace trimmed.
//
// An empty title set yields an empty string; that is not an error.
func CleanTitle(titles []string) string {
	sorted := make([]string, len(titles))
	copy(sorted, titles)
	sort.Strings(sorted)

	title := strings.Join(sorted, ", ")
	title = strings.NewReplacer("{", "", "}", "", "'", "", `"`, "").Replace(title)
	title = strings.TrimRight(title, ".")
	return strings.TrimSpace(title)
}

// Build turns a group into a renderable document. The export stores each
// page's highlights newest-first; reversing them restores the order they
// were highlighted in. Highlight text itself is carried over verbatim.
func Build(group entities.DocumentGroup) entities.Document {
	reversed := make([]string, len(group.Highlights))
	for i, highlight := range group.Highlights {
		reversed[len(group.Highlights)-1-i] = highlight
	}

	return entities.Document{
		URL:        group.URL,
		Title:      CleanTitle(group.Titles),
		Highlights: reversed,
	}
}
