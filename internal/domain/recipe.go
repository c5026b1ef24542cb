package domain

// Ingredient is a single material requirement of a recipe. ResourceID may
// reference an item that is absent from the catalog; such dangling
// references are tolerated and skipped during planner expansion.
type Ingredient struct {
	ResourceID string `json:"resourceId"`
	Quantity   int    `json:"quantity"`
}

// Recipe is a transformation rule consuming ingredient items to produce one
// output item. Output quantity is conventionally 1 in the scraped dataset.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Profession  string       `json:"profession"`
	Ingredients []Ingredient `json:"ingredients"`
	Output      Ingredient   `json:"output"`
}
