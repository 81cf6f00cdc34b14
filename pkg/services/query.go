package services

import (
	"sort"
	"strings"

	"mwaniki-news/pkg/models"
)

// Pure listing transforms shared by every page. All of them return fresh
// slices and leave their input untouched.

// FilterByCategory keeps articles whose category equals the canonical
// display name. CategoryAll returns the whole collection.
func FilterByCategory(articles []models.Article, category string) []models.Article {
	if category == CategoryAll || category == "" {
		return append([]models.Article(nil), articles...)
	}
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// SortByDateDescending orders most recent first. The sort is stable, so
// ties and repeated renders come out identically. Records with an
// unparseable date sort after every dated one, keeping their relative
// order, instead of landing somewhere undefined.
func SortByDateDescending(articles []models.Article) []models.Article {
	out := append([]models.Article(nil), articles...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := out[i].ParsedDate()
		tj, jok := out[j].ParsedDate()
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
	return out
}

// Search matches the query case-insensitively against title or
// description. A blank query matches everything.
func Search(articles []models.Article, query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]models.Article(nil), articles...)
	}
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out
}

// SelectFeatured picks articles flagged as featured or categorized as
// breaking news, newest first, at most limit of them.
func SelectFeatured(articles []models.Article, limit int) []models.Article {
	picked := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.IsFeatured || a.Category == CategoryBreaking {
			picked = append(picked, a)
		}
	}
	return truncate(SortByDateDescending(picked), limit)
}

// SelectTrending orders by view count descending with date as the
// tie-break, skipping the excluded ids (typically the already-shown
// featured block). An absent views counter counts as zero.
func SelectTrending(articles []models.Article, excluding []int, limit int) []models.Article {
	skip := make(map[int]struct{}, len(excluding))
	for _, id := range excluding {
		skip[id] = struct{}{}
	}

	rest := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if _, excluded := skip[a.ID]; !excluded {
			rest = append(rest, a)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].Views != rest[j].Views {
			return rest[i].Views > rest[j].Views
		}
		ti, iok := rest[i].ParsedDate()
		tj, jok := rest[j].ParsedDate()
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
	return truncate(rest, limit)
}

// Paginate slices a window out of the sequence. Out-of-range windows
// yield an empty slice, never an error.
func Paginate(articles []models.Article, start, size int) []models.Article {
	if start < 0 || size <= 0 || start >= len(articles) {
		return []models.Article{}
	}
	end := start + size
	if end > len(articles) {
		end = len(articles)
	}
	return append([]models.Article(nil), articles[start:end]...)
}

func truncate(articles []models.Article, limit int) []models.Article {
	if limit < 0 {
		limit = 0
	}
	if limit > len(articles) {
		limit = len(articles)
	}
	return articles[:limit]
}
