package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/scraper"
)

const (
	defaultBaseURL     = "https://bitcraftdex.com/item/"
	defaultOutDir      = "data"
	defaultPageTimeout = 30 * time.Second
)

func main() {
	baseURL := flag.String("url", defaultBaseURL, "item index URL to scrape")
	outDir := flag.String("out", defaultOutDir, "directory to write items.json and recipes.json")
	pageTimeout := flag.Duration("timeout", defaultPageTimeout, "per-page load timeout")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg := logger.DefaultConfig()
	if *verbose {
		cfg.Level = logger.LogLevelDebug
	}
	logger.InitLogger(cfg)

	s := scraper.New(*baseURL, *pageTimeout)

	items, recipes, err := s.Run(context.Background())
	if err != nil {
		logger.Error("Scrape failed", "error", err)
		os.Exit(1)
	}

	if err := scraper.WriteFiles(*outDir, items, recipes); err != nil {
		logger.Error("Failed to write dataset", "error", err)
		os.Exit(1)
	}

	logger.Info("Dataset written", "dir", *outDir, "items", len(items), "recipes", len(recipes))
}
