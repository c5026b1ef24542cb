package domain

// Snapshot is the full serializable planner state: every planner entry with
// its identity key, plus the custom ingredient annotations keyed by the root
// planner item id. The inventory ledger is not part of the snapshot.
type Snapshot struct {
	PlannerEntries    []PlannerEntry                `json:"plannerEntries"`
	CustomIngredients map[string][]CustomIngredient `json:"customIngredientAnnotations"`
}
