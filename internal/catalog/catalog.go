package catalog

import (
	"fmt"

	"github.com/craftdex/companion/internal/domain"
)

// Catalog is the immutable set of items and recipes loaded at startup.
// It is safe for concurrent reads and is never mutated after New returns.
type Catalog struct {
	items       []domain.Item
	itemIndex   map[string]int
	recipes     []domain.Recipe
	recipeIndex map[string]int
}

// New builds a catalog from the given collections. Item and recipe ids must
// be unique within their collection; the catalog does not otherwise validate
// dataset consistency (dangling ingredient references are tolerated).
func New(items []domain.Item, recipes []domain.Recipe) (*Catalog, error) {
	c := &Catalog{
		items:       make([]domain.Item, len(items)),
		itemIndex:   make(map[string]int, len(items)),
		recipes:     make([]domain.Recipe, len(recipes)),
		recipeIndex: make(map[string]int, len(recipes)),
	}

	copy(c.items, items)
	copy(c.recipes, recipes)

	for i, item := range c.items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: item %d has empty id", domain.ErrInvalidInput, i)
		}
		if _, exists := c.itemIndex[item.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.ID)
		}
		c.itemIndex[item.ID] = i
	}

	for i, recipe := range c.recipes {
		if recipe.ID == "" {
			return nil, fmt.Errorf("%w: recipe %d has empty id", domain.ErrInvalidInput, i)
		}
		if _, exists := c.recipeIndex[recipe.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateRecipe, recipe.ID)
		}
		c.recipeIndex[recipe.ID] = i
	}

	return c, nil
}

// Item returns the item with the given id.
func (c *Catalog) Item(id string) (domain.Item, bool) {
	i, ok := c.itemIndex[id]
	if !ok {
		return domain.Item{}, false
	}
	return c.items[i], true
}

// Recipe returns the recipe with the given id.
func (c *Catalog) Recipe(id string) (domain.Recipe, bool) {
	i, ok := c.recipeIndex[id]
	if !ok {
		return domain.Recipe{}, false
	}
	return c.recipes[i], true
}

// Items returns a copy of all items in load order.
func (c *Catalog) Items() []domain.Item {
	items := make([]domain.Item, len(c.items))
	copy(items, c.items)
	return items
}

// Recipes returns a copy of all recipes in load order.
func (c *Catalog) Recipes() []domain.Recipe {
	recipes := make([]domain.Recipe, len(c.recipes))
	copy(recipes, c.recipes)
	return recipes
}

// RecipesFor returns the recipes that produce the given item. Recipe ids the
// item references but the catalog lacks are skipped.
func (c *Catalog) RecipesFor(itemID string) []domain.Recipe {
	item, ok := c.Item(itemID)
	if !ok {
		return nil
	}

	var recipes []domain.Recipe
	for _, recipeID := range item.RecipeIDs {
		if recipe, ok := c.Recipe(recipeID); ok {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

// ItemCount returns the number of items in the catalog.
func (c *Catalog) ItemCount() int {
	return len(c.items)
}

// RecipeCount returns the number of recipes in the catalog.
func (c *Catalog) RecipeCount() int {
	return len(c.recipes)
}
