package snapshot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/companion/internal/domain"
)

// fakePlanner records snapshot/restore calls.
type fakePlanner struct {
	state    domain.Snapshot
	restored int
}

func newFakePlanner() *fakePlanner {
	return &fakePlanner{
		state: domain.Snapshot{
			PlannerEntries:    []domain.PlannerEntry{},
			CustomIngredients: map[string][]domain.CustomIngredient{},
		},
	}
}

func (f *fakePlanner) Snapshot(ctx context.Context) domain.Snapshot {
	return f.state
}

func (f *fakePlanner) Restore(ctx context.Context, snap domain.Snapshot) {
	f.state = snap
	f.restored++
}

func seededPlanner() *fakePlanner {
	f := newFakePlanner()
	f.state = domain.Snapshot{
		PlannerEntries: []domain.PlannerEntry{
			{
				Item:     domain.Item{ID: "refined_plank", Name: "Refined Plank", Tier: 2},
				Needed:   3,
				RecipeID: "refined_plank_recipe",
			},
			{
				Item:   domain.Item{ID: "rough_log", Name: "Rough Log", Tier: 1},
				Needed: 6,
			},
		},
		CustomIngredients: map[string][]domain.CustomIngredient{
			"refined_plank": {{ID: "nails", Name: "Nails", Qty: 10}},
		},
	}
	return f
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := seededPlanner()

	data, err := NewService(source).Export(ctx)
	require.NoError(t, err)

	target := newFakePlanner()
	require.NoError(t, NewService(target).Import(ctx, data))

	assert.Equal(t, source.state, target.state)
}

func TestExportEmptyStateShape(t *testing.T) {
	ctx := context.Background()

	data, err := NewService(newFakePlanner()).Export(ctx)
	require.NoError(t, err)

	// Empty state must still export the canonical shape, so that a fresh
	// export is always importable.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `[]`, string(raw["plannerEntries"]))
	assert.JSONEq(t, `{}`, string(raw["customIngredientAnnotations"]))
}

func TestImportRejectsNonArrayPlannerEntries(t *testing.T) {
	ctx := context.Background()
	target := seededPlanner()
	before := target.state

	err := NewService(target).Import(ctx, []byte(`{"plannerEntries":"not-an-array","customIngredientAnnotations":{}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)

	// Existing state untouched, no partial apply.
	assert.Equal(t, 0, target.restored)
	assert.Equal(t, before, target.state)
}

func TestImportRejectsNonObjectAnnotations(t *testing.T) {
	ctx := context.Background()
	target := newFakePlanner()

	err := NewService(target).Import(ctx, []byte(`{"plannerEntries":[],"customIngredientAnnotations":[1,2]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
	assert.Equal(t, 0, target.restored)
}

func TestImportRejectsMissingKeys(t *testing.T) {
	ctx := context.Background()
	target := newFakePlanner()

	err := NewService(target).Import(ctx, []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
	assert.Equal(t, 0, target.restored)
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	ctx := context.Background()
	target := newFakePlanner()

	err := NewService(target).Import(ctx, []byte(`not json at all`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
	assert.Equal(t, 0, target.restored)
}

func TestImportRejectsMistypedEntryFields(t *testing.T) {
	ctx := context.Background()
	target := newFakePlanner()

	payload := `{"plannerEntries":[{"item":{"id":"x"},"needed":"three"}],"customIngredientAnnotations":{}}`
	err := NewService(target).Import(ctx, []byte(payload))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
	assert.Equal(t, 0, target.restored)
}

func TestImportAcceptsValidSnapshot(t *testing.T) {
	ctx := context.Background()
	target := newFakePlanner()

	payload := `{
		"plannerEntries": [
			{"item":{"id":"rough_log","name":"Rough Log","tier":1},"needed":6,"have":0}
		],
		"customIngredientAnnotations": {
			"rough_log": [{"id":"rope","name":"Rope","qty":2}]
		}
	}`
	require.NoError(t, NewService(target).Import(ctx, []byte(payload)))

	assert.Equal(t, 1, target.restored)
	require.Len(t, target.state.PlannerEntries, 1)
	assert.Equal(t, 6, target.state.PlannerEntries[0].Needed)
	assert.Equal(t, 2, target.state.CustomIngredients["rough_log"][0].Qty)
}
