package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/craftdex/companion/internal/catalog"
	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/metrics"
)

// ResolvedIngredient pairs an ingredient demand with its display name. For
// ids the catalog does not know, the raw id stands in for the name.
type ResolvedIngredient struct {
	ResourceID string `json:"resourceId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// RecipeDetail is a recipe with its ingredients resolved for display.
type RecipeDetail struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Profession  string               `json:"profession"`
	Ingredients []ResolvedIngredient `json:"ingredients"`
	Output      domain.Ingredient    `json:"output"`
}

// ItemDetailResponse is an item together with every recipe that produces it.
type ItemDetailResponse struct {
	Item    domain.Item    `json:"item"`
	Recipes []RecipeDetail `json:"recipes"`
}

// HandleListItems returns a handler that lists or searches catalog items.
//
// @Summary List or search items
// @Tags catalog
// @Produce json
// @Param q query string false "Fuzzy name query"
// @Param tier query int false "Tier filter, 0 for all"
// @Success 200 {object} DataResponse{data=[]domain.Item}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(searcher *catalog.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query := r.URL.Query().Get("q")

		tier := catalog.TierAny
		if raw := r.URL.Query().Get("tier"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				log.Debug("Rejected item listing with bad tier", "tier", raw)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			tier = parsed
		}

		items := searcher.Search(query, tier)
		if query != "" {
			metrics.SearchesPerformed.Inc()
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetItem returns a handler that fetches one item with its recipes
// resolved for display.
//
// @Summary Get item detail
// @Tags catalog
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} DataResponse{data=ItemDetailResponse}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func HandleGetItem(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id := chi.URLParam(r, "id")
		item, ok := c.Item(id)
		if !ok {
			log.Debug("Item not found", "item", id)
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		recipes := c.RecipesFor(id)
		details := make([]RecipeDetail, 0, len(recipes))
		for _, recipe := range recipes {
			details = append(details, resolveRecipe(c, recipe))
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Data: ItemDetailResponse{Item: item, Recipes: details},
		})
	}
}

// HandleListRecipes returns a handler that lists all recipes.
//
// @Summary List recipes
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse{data=[]domain.Recipe}
// @Router /api/v1/recipes [get]
func HandleListRecipes(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: c.Recipes()})
	}
}

// HandleGetRecipe returns a handler that fetches one recipe with resolved
// ingredient names.
//
// @Summary Get recipe detail
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} DataResponse{data=RecipeDetail}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func HandleGetRecipe(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id := chi.URLParam(r, "id")
		recipe, ok := c.Recipe(id)
		if !ok {
			log.Debug("Recipe not found", "recipe", id)
			respondError(w, http.StatusNotFound, ErrMsgRecipeNotFoundError)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: resolveRecipe(c, recipe)})
	}
}

// resolveRecipe attaches item names to a recipe's ingredient references.
// Dangling references keep their raw id as the name so the row still renders.
func resolveRecipe(c *catalog.Catalog, recipe domain.Recipe) RecipeDetail {
	resolved := make([]ResolvedIngredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		name := ing.ResourceID
		if item, ok := c.Item(ing.ResourceID); ok {
			name = item.Name
		}
		resolved = append(resolved, ResolvedIngredient{
			ResourceID: ing.ResourceID,
			Name:       name,
			Quantity:   ing.Quantity,
		})
	}

	return RecipeDetail{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Profession:  recipe.Profession,
		Ingredients: resolved,
		Output:      recipe.Output,
	}
}
