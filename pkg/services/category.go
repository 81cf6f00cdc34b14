package services

// The category vocabulary lives in exactly one place. Articles store the
// display name verbatim ("Breaking News"); URLs carry the slug
// ("breaking-news"). Both lookup directions go through this table.

const (
	// CategoryAll is the unfiltered sentinel; it is never stored on an article.
	CategoryAll = "All"

	CategoryBreaking = "Breaking News"
)

var categoryTable = []struct {
	Slug string
	Name string
}{
	{"news", "News"},
	{"breaking-news", "Breaking News"},
	{"sports", "Sports"},
	{"entertainment", "Entertainment"},
	{"tech", "Tech"},
	{"opinions", "Opinions"},
	{"gossip", "Gossip"},
}

var (
	categoryBySlug = map[string]string{}
	slugByCategory = map[string]string{}
)

func init() {
	for _, entry := range categoryTable {
		categoryBySlug[entry.Slug] = entry.Name
		slugByCategory[entry.Name] = entry.Slug
	}
}

// CategoryBySlug maps a URL slug to the canonical display name.
func CategoryBySlug(slug string) (string, bool) {
	name, ok := categoryBySlug[slug]
	return name, ok
}

// SlugForCategory maps a display name back to its URL slug.
func SlugForCategory(name string) (string, bool) {
	slug, ok := slugByCategory[name]
	return slug, ok
}

func KnownCategory(name string) bool {
	_, ok := slugByCategory[name]
	return ok
}

// Categories returns the display names in their fixed navigation order.
func Categories() []string {
	names := make([]string, 0, len(categoryTable))
	for _, entry := range categoryTable {
		names = append(names, entry.Name)
	}
	return names
}
