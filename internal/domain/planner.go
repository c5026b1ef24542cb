package domain

// PlannerKey identifies a planner entry. RecipeID is empty for entries that
// are not tied to a recipe; the same item tracked via two different recipes
// yields two distinct keys. Struct equality is the identity comparison, so
// delimiter characters inside ids cannot cause key collisions.
type PlannerKey struct {
	ItemID   string `json:"itemId"`
	RecipeID string `json:"recipeId,omitempty"`
}

// PlannerEntry is a tracked crafting requirement for one item.
//
// Have is a display-time value: the authoritative amount owned always comes
// from the inventory ledger during reconciliation, never from this field.
type PlannerEntry struct {
	Item     Item   `json:"item"`
	Needed   int    `json:"needed"`
	Have     int    `json:"have"`
	RecipeID string `json:"recipeId,omitempty"`
}

// Key returns the identity key of the entry.
func (e PlannerEntry) Key() PlannerKey {
	return PlannerKey{ItemID: e.Item.ID, RecipeID: e.RecipeID}
}

// CustomIngredient is an ad-hoc ingredient a user attaches to a planner item
// outside the recipe system. Annotations are informational only and never
// feed into needed/have totals or trigger expansion.
type CustomIngredient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}
