package planner

import (
	"context"
	"fmt"
	"sync"

	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/metrics"
)

// Planner field names accepted by UpdateField
const (
	FieldNeeded = "needed"
	FieldHave   = "have"
)

// Catalog defines the read-only lookups the planner needs.
type Catalog interface {
	Item(id string) (domain.Item, bool)
	Recipe(id string) (domain.Recipe, bool)
}

// Inventory defines the read-only inventory lookup used by reconciliation.
type Inventory interface {
	Quantity(ctx context.Context, itemID string) int
}

// Service defines the interface for planner ledger operations
type Service interface {
	// Add merges quantity into the entry keyed by (itemID, recipeID),
	// inserting the entry if absent. When recipeID resolves against the
	// catalog, the recipe's direct ingredients are expanded into the ledger
	// one level deep: per ingredient, demand = ingredient quantity *
	// quantity, merged by item id alone. Ingredients missing from the
	// catalog are skipped; an unknown recipeID adds the root entry without
	// expansion.
	Add(ctx context.Context, itemID, recipeID string, quantity int) error
	// UpdateField overwrites the needed or have field of the entry with the
	// given identity key. The value is stored as given, without clamping.
	UpdateField(ctx context.Context, key domain.PlannerKey, field string, value int) error
	// Remove deletes every entry whose identity key matches exactly. An
	// empty RecipeID matches only entries that carry no recipe. Removing a
	// missing key is a no-op.
	Remove(ctx context.Context, key domain.PlannerKey)
	// Entries returns a copy of the ledger in insertion order.
	Entries(ctx context.Context) []domain.PlannerEntry
	// Reconcile returns the ledger with each entry's Have recomputed from
	// the inventory at call time. Neither ledger is mutated.
	Reconcile(ctx context.Context) []domain.PlannerEntry
	// AddCustomIngredient attaches an ad-hoc ingredient to the planner item
	// with the given id, summing Qty when the ingredient id is already
	// present in that item's annotation list.
	AddCustomIngredient(ctx context.Context, plannerItemID string, ing domain.CustomIngredient)
	// CustomIngredients returns a copy of all annotation lists keyed by
	// planner item id.
	CustomIngredients(ctx context.Context) map[string][]domain.CustomIngredient
	// Snapshot captures the full planner state for export.
	Snapshot(ctx context.Context) domain.Snapshot
	// Restore replaces the full planner state with the snapshot contents.
	Restore(ctx context.Context, snap domain.Snapshot)
}

type service struct {
	mu        sync.RWMutex
	catalog   Catalog
	inventory Inventory
	entries   []domain.PlannerEntry
	custom    map[string][]domain.CustomIngredient
}

// NewService creates a new planner ledger backed by the given catalog and
// inventory. The ledgers are independent stores; the planner only ever reads
// the inventory during reconciliation.
func NewService(catalog Catalog, inventory Inventory) Service {
	return &service{
		catalog:   catalog,
		inventory: inventory,
		custom:    make(map[string][]domain.CustomIngredient),
	}
}

func (s *service) Add(ctx context.Context, itemID, recipeID string, quantity int) error {
	log := logger.FromContext(ctx)

	item, ok := s.catalog.Item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	// The whole add+expand sequence runs under one lock so ingredient merges
	// observe each other's writes within a single invocation.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mergeByKey(item, recipeID, quantity)
	metrics.PlannerAdds.Inc()

	if recipeID == "" {
		return nil
	}

	recipe, ok := s.catalog.Recipe(recipeID)
	if !ok {
		// Tolerated: the root entry stays, expansion is skipped.
		log.Warn("Recipe not in catalog, skipping expansion", "recipe", recipeID)
		return nil
	}

	for _, ing := range recipe.Ingredients {
		ingItem, ok := s.catalog.Item(ing.ResourceID)
		if !ok {
			log.Debug("Skipping dangling ingredient reference", "resource", ing.ResourceID, "recipe", recipeID)
			continue
		}
		s.mergeByItem(ingItem, ing.Quantity*quantity)
	}

	metrics.PlannerExpansions.Inc()
	log.Info("Planner entry expanded", "item", itemID, "recipe", recipeID, "quantity", quantity)
	return nil
}

// mergeByKey folds quantity into the entry matching the full (item, recipe)
// identity key, appending a new entry when no match exists. Caller must hold
// the mutex.
func (s *service) mergeByKey(item domain.Item, recipeID string, quantity int) {
	key := domain.PlannerKey{ItemID: item.ID, RecipeID: recipeID}
	for i := range s.entries {
		if s.entries[i].Key() == key {
			s.entries[i].Needed += quantity
			return
		}
	}
	s.entries = append(s.entries, domain.PlannerEntry{Item: item, Needed: quantity, RecipeID: recipeID})
}

// mergeByItem folds an ingredient demand into the first entry tracking the
// item, regardless of that entry's own recipe, so partial progress for a
// resource accumulates no matter which recipe demanded it. New entries carry
// no recipe. Caller must hold the mutex.
func (s *service) mergeByItem(item domain.Item, demand int) {
	for i := range s.entries {
		if s.entries[i].Item.ID == item.ID {
			s.entries[i].Needed += demand
			return
		}
	}
	s.entries = append(s.entries, domain.PlannerEntry{Item: item, Needed: demand})
}

func (s *service) UpdateField(ctx context.Context, key domain.PlannerKey, field string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Key() != key {
			continue
		}
		switch field {
		case FieldNeeded:
			s.entries[i].Needed = value
		case FieldHave:
			s.entries[i].Have = value
		default:
			return fmt.Errorf("%w: %s", domain.ErrInvalidField, field)
		}
		return nil
	}

	return fmt.Errorf("%w: %s/%s", domain.ErrEntryNotFound, key.ItemID, key.RecipeID)
}

func (s *service) Remove(ctx context.Context, key domain.PlannerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.Key() == key {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept

	if removed > 0 {
		metrics.PlannerRemovals.Add(float64(removed))
	}
}

func (s *service) Entries(ctx context.Context) []domain.PlannerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyEntries()
}

func (s *service) Reconcile(ctx context.Context) []domain.PlannerEntry {
	s.mu.RLock()
	entries := s.copyEntries()
	s.mu.RUnlock()

	for i := range entries {
		entries[i].Have = s.inventory.Quantity(ctx, entries[i].Item.ID)
	}
	return entries
}

func (s *service) AddCustomIngredient(ctx context.Context, plannerItemID string, ing domain.CustomIngredient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.custom[plannerItemID]
	for i := range list {
		if list[i].ID == ing.ID {
			list[i].Qty += ing.Qty
			return
		}
	}
	s.custom[plannerItemID] = append(list, ing)
}

func (s *service) CustomIngredients(ctx context.Context) map[string][]domain.CustomIngredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCustom(s.custom)
}

func (s *service) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Snapshot{
		PlannerEntries:    s.copyEntries(),
		CustomIngredients: copyCustom(s.custom),
	}
}

func (s *service) Restore(ctx context.Context, snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]domain.PlannerEntry, len(snap.PlannerEntries))
	copy(s.entries, snap.PlannerEntries)

	s.custom = copyCustom(snap.CustomIngredients)
	if s.custom == nil {
		s.custom = make(map[string][]domain.CustomIngredient)
	}
}

// copyEntries returns a non-nil copy of the ledger. Caller must hold at
// least a read lock. Non-nil matters for snapshot export: the planner list
// must serialize as a JSON array even when empty.
func (s *service) copyEntries() []domain.PlannerEntry {
	entries := make([]domain.PlannerEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func copyCustom(src map[string][]domain.CustomIngredient) map[string][]domain.CustomIngredient {
	if src == nil {
		return nil
	}
	dst := make(map[string][]domain.CustomIngredient, len(src))
	for id, list := range src {
		copied := make([]domain.CustomIngredient, len(list))
		copy(copied, list)
		dst[id] = copied
	}
	return dst
}
