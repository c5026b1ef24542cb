package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
)

// Error message constants for loader failures
const (
	ErrMsgReadItemsFailed    = "failed to read items file: %w"
	ErrMsgReadRecipesFailed  = "failed to read recipes file: %w"
	ErrMsgParseItemsFailed   = "failed to parse items file: %w"
	ErrMsgParseRecipesFailed = "failed to parse recipes file: %w"
)

// Load reads the scraped items and recipes JSON files and builds the
// catalog. Both files must be fully loaded before any planner or inventory
// operation runs; the returned catalog is immutable.
func Load(itemsPath, recipesPath string) (*Catalog, error) {
	itemsData, err := os.ReadFile(itemsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadItemsFailed, err)
	}

	recipesData, err := os.ReadFile(recipesPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRecipesFailed, err)
	}

	return LoadBytes(itemsData, recipesData)
}

// LoadBytes builds the catalog from raw JSON documents.
func LoadBytes(itemsData, recipesData []byte) (*Catalog, error) {
	var items []domain.Item
	if err := json.Unmarshal(itemsData, &items); err != nil {
		return nil, fmt.Errorf(ErrMsgParseItemsFailed, err)
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(recipesData, &recipes); err != nil {
		return nil, fmt.Errorf(ErrMsgParseRecipesFailed, err)
	}

	c, err := New(items, recipes)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded",
		"items", c.ItemCount(),
		"recipes", c.RecipeCount())

	return c, nil
}
