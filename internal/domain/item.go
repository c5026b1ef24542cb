package domain

// Item represents a single catalog resource. The ID is derived from the
// display name by the scraper (lowercased, non-alphanumeric runs collapsed
// to "_") and is the sole identity of an item everywhere in the system.
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tier      int      `json:"tier"`
	Rarity    string   `json:"rarity,omitempty"`
	Icon      string   `json:"icon,omitempty"`
	RecipeIDs []string `json:"recipeIds,omitempty"`
}
