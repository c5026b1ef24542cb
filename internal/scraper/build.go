package scraper

import (
	"regexp"
	"strings"

	"github.com/craftdex/companion/internal/domain"
)

// RecipeIDSuffix is appended to an item id to form its recipe id.
const RecipeIDSuffix = "_recipe"

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveID derives a stable item identifier from a display name: lowercase,
// with every run of non-alphanumeric characters collapsed to a single
// underscore. "Rough Tree Log" becomes "rough_tree_log".
func DeriveID(name string) string {
	return nonAlnumRuns.ReplaceAllString(strings.ToLower(name), "_")
}

// ScrapedItem pairs an index row with the ingredients found on its detail
// page. A nil or empty ingredient list means the item has no recipe.
type ScrapedItem struct {
	Row         ItemRow
	Ingredients []IngredientRow
}

// BuildCatalog normalizes scraped rows into catalog records. Identity is the
// derived id, so a name that normalizes to an already-seen id replaces the
// earlier record (and its recipe). Ingredient names are normalized with the
// same derivation; whether they resolve to real items is the dashboard's
// concern, not the scraper's.
func BuildCatalog(scraped []ScrapedItem) ([]domain.Item, []domain.Recipe) {
	order := make([]string, 0, len(scraped))
	itemsByID := make(map[string]domain.Item, len(scraped))
	recipesByItem := make(map[string]domain.Recipe)

	for _, s := range scraped {
		id := DeriveID(s.Row.Name)
		if id == "" || id == "_" {
			continue
		}

		if _, seen := itemsByID[id]; !seen {
			order = append(order, id)
		}

		item := domain.Item{
			ID:     id,
			Name:   s.Row.Name,
			Tier:   s.Row.Tier,
			Rarity: s.Row.Rarity,
			Icon:   s.Row.Icon,
		}

		delete(recipesByItem, id)
		if len(s.Ingredients) > 0 {
			recipeID := id + RecipeIDSuffix
			ingredients := make([]domain.Ingredient, 0, len(s.Ingredients))
			for _, ing := range s.Ingredients {
				ingredients = append(ingredients, domain.Ingredient{
					ResourceID: DeriveID(ing.Name),
					Quantity:   ing.Quantity,
				})
			}
			recipesByItem[id] = domain.Recipe{
				ID:          recipeID,
				Name:        s.Row.Name + " Recipe",
				Profession:  "",
				Ingredients: ingredients,
				Output:      domain.Ingredient{ResourceID: id, Quantity: 1},
			}
			item.RecipeIDs = []string{recipeID}
		}

		itemsByID[id] = item
	}

	items := make([]domain.Item, 0, len(order))
	recipes := make([]domain.Recipe, 0, len(recipesByItem))
	for _, id := range order {
		items = append(items, itemsByID[id])
		if recipe, ok := recipesByItem[id]; ok {
			recipes = append(recipes, recipe)
		}
	}
	return items, recipes
}
