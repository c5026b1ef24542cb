package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()

	c, err := New(testItems(), testRecipes())
	require.NoError(t, err)

	s, err := NewSearcher(c)
	require.NoError(t, err)
	return s
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	s := newTestSearcher(t)

	items := s.Search("", TierAny)
	assert.Len(t, items, 3)
}

func TestSearchTierFilter(t *testing.T) {
	s := newTestSearcher(t)

	items := s.Search("", 2)
	require.Len(t, items, 1)
	assert.Equal(t, "refined_plank", items[0].ID)
}

func TestSearchFuzzyMatch(t *testing.T) {
	s := newTestSearcher(t)

	items := s.Search("plank", TierAny)
	require.NotEmpty(t, items)
	assert.Equal(t, "refined_plank", items[0].ID)
}

func TestSearchFuzzyMatchWithTier(t *testing.T) {
	s := newTestSearcher(t)

	// "r" fuzzy-matches every item name; the tier filter narrows it down
	items := s.Search("r", 3)
	require.Len(t, items, 1)
	assert.Equal(t, "sturdy_frame", items[0].ID)
}

func TestSearchNoMatch(t *testing.T) {
	s := newTestSearcher(t)

	items := s.Search("zzzzzz", TierAny)
	assert.Empty(t, items)
}

func TestSearchCachedResultsStable(t *testing.T) {
	s := newTestSearcher(t)

	first := s.Search("plank", TierAny)
	second := s.Search("plank", TierAny)
	assert.Equal(t, first, second)
}
