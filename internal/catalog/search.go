package catalog

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"

	"github.com/craftdex/companion/internal/domain"
)

// TierAny disables tier filtering.
const TierAny = 0

// searchCacheSize bounds the fuzzy-match result cache. Queries are cheap but
// the dashboard re-issues the same search on every keystroke.
const searchCacheSize = 256

// itemSource implements fuzzy.Source over the catalog's item names.
type itemSource []domain.Item

// Len returns the length of the collection
func (s itemSource) Len() int {
	return len(s)
}

// String returns the searchable string at index i
func (s itemSource) String(i int) string {
	return s[i].Name
}

// Searcher answers browse and search queries against an immutable catalog.
type Searcher struct {
	catalog *Catalog
	source  itemSource
	cache   *lru.Cache[string, []string]
}

// NewSearcher creates a searcher for the given catalog.
func NewSearcher(c *Catalog) (*Searcher, error) {
	cache, err := lru.New[string, []string](searchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}

	return &Searcher{
		catalog: c,
		source:  itemSource(c.Items()),
		cache:   cache,
	}, nil
}

// Search returns catalog items matching the query and tier filter. An empty
// query matches every item; TierAny disables the tier filter. Fuzzy matches
// are returned in relevance order, browse results in catalog load order.
func (s *Searcher) Search(query string, tier int) []domain.Item {
	query = strings.TrimSpace(query)

	if query == "" {
		return s.browse(tier)
	}

	key := cacheKey(query, tier)
	if ids, ok := s.cache.Get(key); ok {
		return s.resolve(ids)
	}

	matches := fuzzy.FindFrom(query, s.source)

	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		item := s.source[match.Index]
		if tier != TierAny && item.Tier != tier {
			continue
		}
		ids = append(ids, item.ID)
	}

	s.cache.Add(key, ids)
	return s.resolve(ids)
}

// browse lists items without a query, applying only the tier filter.
func (s *Searcher) browse(tier int) []domain.Item {
	if tier == TierAny {
		return s.catalog.Items()
	}

	var items []domain.Item
	for _, item := range s.source {
		if item.Tier == tier {
			items = append(items, item)
		}
	}
	return items
}

func (s *Searcher) resolve(ids []string) []domain.Item {
	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.catalog.Item(id); ok {
			items = append(items, item)
		}
	}
	return items
}

func cacheKey(query string, tier int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(query), tier)
}
