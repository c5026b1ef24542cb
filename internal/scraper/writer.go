package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/craftdex/companion/internal/domain"
)

// WriteFiles writes the catalog dataset to items.json and recipes.json in
// dir, creating the directory if needed. File names match what the
// dashboard's catalog loader expects.
func WriteFiles(dir string, items []domain.Item, recipes []domain.Recipe) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, "items.json"), items); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "recipes.json"), recipes)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
