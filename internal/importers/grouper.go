package importers

import (
	"sort"

	"github.com/mrlokans/highlights2md/internal/entities"
)

// GroupBySource partitions records by their source URL. Within a group the
// highlights keep their input order and the titles are deduplicated in
// first-seen order. Groups come back sorted by URL so repeated runs process
// documents in the same order.
func GroupBySource(records []entities.HighlightRecord) []entities.DocumentGroup {
	groupMap := make(map[string]*entities.DocumentGroup)
	seenTitles := make(map[string]map[string]bool)

	for _, record := range records {
		group, exists := groupMap[record.Source]
		if !exists {
			group = &entities.DocumentGroup{URL: record.Source}
			groupMap[record.Source] = group
			seenTitles[record.Source] = make(map[string]bool)
		}

		if !seenTitles[record.Source][record.Title] {
			seenTitles[record.Source][record.Title] = true
			group.Titles = append(group.Titles, record.Title)
		}
		group.Highlights = append(group.Highlights, record.Highlight)
	}

	groups := make([]entities.DocumentGroup, 0, len(groupMap))
	for _, group := range groupMap {
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].URL < groups[j].URL
	})

	return groups
}
