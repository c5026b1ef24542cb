package config

// Default configuration values
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "INFO"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultDataDir          = "data"
	DefaultSnapshotMaxBytes = "1048576" // 1MB
)

// Catalog dataset file names, as written by cmd/scraper
const (
	ItemsFileName   = "items.json"
	RecipesFileName = "recipes.json"
)
