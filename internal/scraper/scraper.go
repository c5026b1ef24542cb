package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
)

// ItemRow is one row of the item index table as scraped from the site.
type ItemRow struct {
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	Tier     int    `json:"tier"`
	ViewLink string `json:"viewLink"`
	Icon     string `json:"icon"`
}

// IngredientRow is one row of a per-item recipe table.
type IngredientRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// itemTableJS extracts the item index table. Rows with fewer than four cells
// or a non-numeric tier are header/decoration rows and are dropped.
const itemTableJS = `
Array.from(document.querySelectorAll('table tr')).map(row => {
	const cols = row.querySelectorAll('td');
	if (cols.length < 4) return null;
	const link = cols[3].querySelector('a');
	const img = cols[0].querySelector('img');
	const iconSrc = img ? img.getAttribute('src') : '';
	const iconFile = iconSrc ? iconSrc.split('/').pop().replace('.png', '') : '';
	return {
		name: cols[0].textContent.trim(),
		rarity: cols[1].textContent.trim(),
		tier: parseInt(cols[2].textContent.trim(), 10),
		viewLink: link ? link.href : '',
		icon: iconFile
	};
}).filter(r => r && r.name && !isNaN(r.tier))
`

// recipeTableJS extracts the ingredient table following the "Recipe" heading
// on an item detail page. Returns an empty array when the item has none.
const recipeTableJS = `
(() => {
	const heading = Array.from(document.querySelectorAll('h2'))
		.find(h => h.textContent.includes('Recipe'));
	if (!heading) return [];
	const table = heading.nextElementSibling;
	if (!table || table.tagName !== 'TABLE') return [];
	return Array.from(table.querySelectorAll('tr')).map(row => {
		const cols = row.querySelectorAll('td');
		if (cols.length < 2) return null;
		return {
			name: cols[0].textContent.trim(),
			quantity: parseInt(cols[1].textContent.trim(), 10) || 1
		};
	}).filter(r => r && r.name);
})()
`

// Scraper fetches the third-party item index and produces the catalog
// dataset consumed by the dashboard.
type Scraper struct {
	baseURL     string
	pageTimeout time.Duration
}

// New creates a scraper rooted at the given item index URL.
func New(baseURL string, pageTimeout time.Duration) *Scraper {
	return &Scraper{
		baseURL:     strings.TrimRight(baseURL, "/") + "/",
		pageTimeout: pageTimeout,
	}
}

// Run scrapes the full catalog: the item index first, then each item's
// detail page for its recipe. Items whose detail page has no recipe table
// simply contribute no recipe record.
func (s *Scraper) Run(ctx context.Context) ([]domain.Item, []domain.Recipe, error) {
	log := logger.FromContext(ctx)

	browserCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	rows, err := s.fetchItemIndex(browserCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch item index: %w", err)
	}
	log.Info("Item index fetched", "items", len(rows))

	scraped := make([]ScrapedItem, 0, len(rows))
	for i, row := range rows {
		item := ScrapedItem{Row: row}

		if row.ViewLink != "" {
			ingredients, err := s.fetchRecipe(browserCtx, row.ViewLink)
			if err != nil {
				// One broken detail page should not sink the whole run.
				log.Warn("Failed to fetch recipe page", "item", row.Name, "url", row.ViewLink, "error", err)
			} else {
				item.Ingredients = ingredients
			}
		}

		scraped = append(scraped, item)
		log.Debug("Item processed", "index", i+1, "total", len(rows), "item", row.Name, "ingredients", len(item.Ingredients))
	}

	items, recipes := BuildCatalog(scraped)
	log.Info("Scrape complete", "items", len(items), "recipes", len(recipes))
	return items, recipes, nil
}

func (s *Scraper) fetchItemIndex(ctx context.Context) ([]ItemRow, error) {
	ctx, cancel := context.WithTimeout(ctx, s.pageTimeout)
	defer cancel()

	var rows []ItemRow
	err := chromedp.Run(ctx,
		chromedp.Navigate(s.baseURL),
		chromedp.WaitVisible("table", chromedp.ByQuery),
		chromedp.Evaluate(itemTableJS, &rows),
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Scraper) fetchRecipe(ctx context.Context, url string) ([]IngredientRow, error) {
	ctx, cancel := context.WithTimeout(ctx, s.pageTimeout)
	defer cancel()

	var rows []IngredientRow
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(recipeTableJS, &rows),
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
