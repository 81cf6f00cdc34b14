package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwaniki-news/pkg/models"
)

func sampleArticles() []models.Article {
	return []models.Article{
		{ID: 1, Title: "A", Description: "county budgets", Category: "News", Date: "2024-01-01"},
		{ID: 2, Title: "B", Description: "flooding in garissa", Category: "Breaking News", Date: "2024-06-01"},
		{ID: 3, Title: "C", Description: "harambee stars", Category: "Sports", Date: "2024-03-01", Views: 50},
		{ID: 4, Title: "D", Description: "sauti sol reunion", Category: "Entertainment", Date: "2024-06-01", Views: 200, IsFeatured: true},
		{ID: 5, Title: "E", Description: "mpesa api", Category: "Tech", Date: "not-a-date", Views: 10},
	}
}

func TestFilterByCategory(t *testing.T) {
	articles := sampleArticles()

	t.Run("all sentinel returns everything", func(t *testing.T) {
		assert.Len(t, FilterByCategory(articles, CategoryAll), len(articles))
	})

	t.Run("returns only matching articles", func(t *testing.T) {
		got := FilterByCategory(articles, "Breaking News")
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("unmatched category yields empty", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(articles, "Opinions"))
	})

	t.Run("empty collection yields empty", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(nil, "News"))
	})
}

func TestFilterByCategoryViaSlug(t *testing.T) {
	// The spec scenario: breaking-news slug resolves through the table,
	// not through string munging.
	articles := []models.Article{
		{ID: 1, Title: "A", Category: "News", Date: "2024-01-01"},
		{ID: 2, Title: "B", Category: "Breaking News", Date: "2024-06-01"},
	}

	name, ok := CategoryBySlug("breaking-news")
	require.True(t, ok)

	got := FilterByCategory(articles, name)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSortByDateDescending(t *testing.T) {
	articles := []models.Article{
		{ID: 1, Title: "A", Category: "News", Date: "2024-01-01"},
		{ID: 2, Title: "B", Category: "Breaking News", Date: "2024-06-01"},
	}

	got := SortByDateDescending(articles)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Title)
	assert.Equal(t, "A", got[1].Title)

	// Input untouched.
	assert.Equal(t, 1, articles[0].ID)
}

func TestSortByDateDescendingStableAndIdempotent(t *testing.T) {
	articles := []models.Article{
		{ID: 1, Date: "2024-06-01", Title: "first tie", Category: "News"},
		{ID: 2, Date: "2024-06-01", Title: "second tie", Category: "News"},
		{ID: 3, Date: "2024-01-01", Title: "older", Category: "News"},
	}

	once := SortByDateDescending(articles)
	twice := SortByDateDescending(once)

	assert.Equal(t, once, twice)
	// Ties keep their original relative order.
	assert.Equal(t, 1, once[0].ID)
	assert.Equal(t, 2, once[1].ID)
}

func TestSortByDateDescendingUnparsableLast(t *testing.T) {
	articles := []models.Article{
		{ID: 1, Date: "garbage", Category: "News"},
		{ID: 2, Date: "2024-06-01", Category: "News"},
		{ID: 3, Date: "also garbage", Category: "News"},
		{ID: 4, Date: "2023-01-01", Category: "News"},
	}

	got := SortByDateDescending(articles)
	require.Len(t, got, 4)
	assert.Equal(t, []int{2, 4, 1, 3}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestSearch(t *testing.T) {
	articles := sampleArticles()

	t.Run("blank query is identity", func(t *testing.T) {
		assert.Len(t, Search(articles, ""), len(articles))
		assert.Len(t, Search(articles, "   "), len(articles))
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := Search(articles, "a")
		require.NotEmpty(t, got)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		got := Search(articles, "GARISSA")
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("narrows monotonically", func(t *testing.T) {
		all := Search(articles, "")
		narrowed := Search(articles, "sol")
		assert.LessOrEqual(t, len(narrowed), len(all))
		for _, a := range narrowed {
			assert.Contains(t, idsOf(all), a.ID)
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, Search(articles, "zzz-no-such"))
	})
}

func TestSelectFeatured(t *testing.T) {
	articles := sampleArticles()

	got := SelectFeatured(articles, 10)
	// Only isFeatured or Breaking News articles qualify.
	require.Len(t, got, 2)
	for _, a := range got {
		assert.True(t, a.IsFeatured || a.Category == CategoryBreaking)
	}
	// Date descending, tie on 2024-06-01 broken by original order.
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)

	t.Run("never exceeds limit", func(t *testing.T) {
		assert.Len(t, SelectFeatured(articles, 1), 1)
		assert.Empty(t, SelectFeatured(articles, 0))
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, SelectFeatured(nil, 5))
	})
}

func TestSelectTrending(t *testing.T) {
	articles := sampleArticles()

	got := SelectTrending(articles, nil, 10)
	require.Len(t, got, len(articles))
	// Views descending: 200, 50, 10, then the zero-view pair by date.
	assert.Equal(t, []int{4, 3, 5, 2, 1}, idsOf(got))

	t.Run("excludes the given ids", func(t *testing.T) {
		got := SelectTrending(articles, []int{4, 3}, 10)
		assert.NotContains(t, idsOf(got), 4)
		assert.NotContains(t, idsOf(got), 3)
		assert.Equal(t, 5, got[0].ID)
	})

	t.Run("respects the limit", func(t *testing.T) {
		assert.Len(t, SelectTrending(articles, nil, 2), 2)
	})
}

func TestPaginate(t *testing.T) {
	articles := sampleArticles()

	t.Run("plain window", func(t *testing.T) {
		got := Paginate(articles, 1, 2)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("window past the end is clipped", func(t *testing.T) {
		assert.Len(t, Paginate(articles, 3, 10), 2)
	})

	t.Run("out of range yields empty, never an error", func(t *testing.T) {
		assert.Empty(t, Paginate(articles, 99, 10))
		assert.Empty(t, Paginate(articles, -1, 10))
		assert.Empty(t, Paginate(articles, 0, 0))
		assert.Empty(t, Paginate(nil, 0, 10))
	})
}

func idsOf(articles []models.Article) []int {
	ids := make([]int, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}
