package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTableIsBidirectional(t *testing.T) {
	for _, name := range Categories() {
		slug, ok := SlugForCategory(name)
		require.True(t, ok, "no slug for %q", name)

		back, ok := CategoryBySlug(slug)
		require.True(t, ok, "no category for slug %q", slug)
		assert.Equal(t, name, back)
	}
}

func TestCategoryBySlug(t *testing.T) {
	// Multi-word categories must survive the round trip; naive
	// replace-first-hyphen munging would not.
	name, ok := CategoryBySlug("breaking-news")
	require.True(t, ok)
	assert.Equal(t, "Breaking News", name)

	_, ok = CategoryBySlug("breaking news")
	assert.False(t, ok)

	_, ok = CategoryBySlug("cooking")
	assert.False(t, ok)
}

func TestKnownCategory(t *testing.T) {
	assert.True(t, KnownCategory("Gossip"))
	assert.False(t, KnownCategory("gossip"))
	assert.False(t, KnownCategory(CategoryAll), "the All sentinel is not a storable category")
}
