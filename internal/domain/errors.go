package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgRecipeNotFound  = "recipe not found"
	ErrMsgDuplicateItem   = "duplicate item id"
	ErrMsgDuplicateRecipe = "duplicate recipe id"

	// Ledger errors
	ErrMsgEntryNotFound = "entry not found"
	ErrMsgInvalidField  = "invalid planner field"

	// Snapshot errors
	ErrMsgInvalidSnapshot = "invalid snapshot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap them with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context.
var (
	// Catalog errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound  = errors.New(ErrMsgRecipeNotFound)
	ErrDuplicateItem   = errors.New(ErrMsgDuplicateItem)
	ErrDuplicateRecipe = errors.New(ErrMsgDuplicateRecipe)

	// Ledger errors
	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)
	ErrInvalidField  = errors.New(ErrMsgInvalidField)

	// Snapshot errors
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
