package models

import "time"

// Article is a single news record. Field names match the persisted JSON
// layout, so a collection marshals 1:1 to the data file the admin edits.
type Article struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Category    string `json:"category" validate:"required"`
	Date        string `json:"date" validate:"required"`
	IsFeatured  bool   `json:"isFeatured,omitempty"`
	Views       int    `json:"views,omitempty" validate:"gte=0"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsedDate parses the article date. The second result is false when the
// date is unusable, so sorting code can keep such records out of the
// chronological order instead of comparing garbage.
func (a Article) ParsedDate() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, a.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
