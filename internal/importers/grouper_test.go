package importers

import (
	"testing"

	"github.com/mrlokans/highlights2md/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBySource(t *testing.T) {
	t.Run("one group per distinct source", func(t *testing.T) {
		records := []entities.HighlightRecord{
			{Source: "http://a", Title: "A", Highlight: "h1"},
			{Source: "http://b", Title: "B", Highlight: "h2"},
			{Source: "http://a", Title: "A", Highlight: "h3"},
		}

		groups := GroupBySource(records)

		require.Len(t, groups, 2)
	})

	t.Run("groups are sorted by url", func(t *testing.T) {
		records := []entities.HighlightRecord{
			{Source: "http://c", Title: "C", Highlight: "h"},
			{Source: "http://a", Title: "A", Highlight: "h"},
			{Source: "http://b", Title: "B", Highlight: "h"},
		}

		groups := GroupBySource(records)

		require.Len(t, groups, 3)
		assert.Equal(t, "http://a", groups[0].URL)
		assert.Equal(t, "http://b", groups[1].URL)
		assert.Equal(t, "http://c", groups[2].URL)
	})

	t.Run("highlights keep input order within a group", func(t *testing.T) {
		records := []entities.HighlightRecord{
			{Source: "http://a", Title: "A", Highlight: "first"},
			{Source: "http://b", Title: "B", Highlight: "noise"},
			{Source: "http://a", Title: "A", Highlight: "second"},
			{Source: "http://a", Title: "A", Highlight: "third"},
		}

		groups := GroupBySource(records)

		require.Len(t, groups, 2)
		assert.Equal(t, []string{"first", "second", "third"}, groups[0].Highlights)
	})

	t.Run("titles are deduplicated in first-seen order", func(t *testing.T) {
		records := []entities.HighlightRecord{
			{Source: "http://a", Title: "New Title", Highlight: "h1"},
			{Source: "http://a", Title: "Old Title", Highlight: "h2"},
			{Source: "http://a", Title: "New Title", Highlight: "h3"},
		}

		groups := GroupBySource(records)

		require.Len(t, groups, 1)
		assert.Equal(t, []string{"New Title", "Old Title"}, groups[0].Titles)
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupBySource(nil))
	})
}
