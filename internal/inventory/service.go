package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/metrics"
)

// Catalog defines the read-only item lookups the ledger needs. The inventory
// never reads recipe data.
type Catalog interface {
	Item(id string) (domain.Item, bool)
}

// Service defines the interface for inventory ledger operations
type Service interface {
	// Add merges quantity into the entry for the item, inserting the entry
	// if the item is not yet tracked.
	Add(ctx context.Context, itemID string, quantity int) error
	// SetQuantity overwrites the quantity of an existing entry. The value is
	// stored as given; the ledger performs no clamping.
	SetQuantity(ctx context.Context, itemID string, quantity int) error
	// Remove deletes the entry for the item. Removing an untracked item is a
	// no-op, not an error.
	Remove(ctx context.Context, itemID string)
	// Entries returns a copy of the ledger in insertion order.
	Entries(ctx context.Context) []domain.InventoryEntry
	// Quantity reports the owned quantity for an item, 0 if untracked.
	Quantity(ctx context.Context, itemID string) int
}

type service struct {
	mu      sync.RWMutex
	catalog Catalog
	entries []domain.InventoryEntry
}

// NewService creates a new inventory ledger backed by the given catalog.
func NewService(catalog Catalog) Service {
	return &service{catalog: catalog}
}

func (s *service) Add(ctx context.Context, itemID string, quantity int) error {
	log := logger.FromContext(ctx)

	item, ok := s.catalog.Item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(itemID); i != -1 {
		s.entries[i].Quantity += quantity
		log.Debug("Inventory entry merged", "item", itemID, "quantity", s.entries[i].Quantity)
	} else {
		s.entries = append(s.entries, domain.InventoryEntry{Item: item, Quantity: quantity})
		log.Debug("Inventory entry added", "item", itemID, "quantity", quantity)
	}

	metrics.InventoryUpdates.WithLabelValues(metrics.OpAdd).Inc()
	return nil
}

func (s *service) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(itemID)
	if i == -1 {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, itemID)
	}

	s.entries[i].Quantity = quantity
	metrics.InventoryUpdates.WithLabelValues(metrics.OpSet).Inc()
	return nil
}

func (s *service) Remove(ctx context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(itemID)
	if i == -1 {
		return
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	metrics.InventoryUpdates.WithLabelValues(metrics.OpRemove).Inc()
}

func (s *service) Entries(ctx context.Context) []domain.InventoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.InventoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *service) Quantity(ctx context.Context, itemID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(itemID); i != -1 {
		return s.entries[i].Quantity
	}
	return 0
}

// indexOf locates an entry by item id. Caller must hold the mutex.
func (s *service) indexOf(itemID string) int {
	for i := range s.entries {
		if s.entries[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}
