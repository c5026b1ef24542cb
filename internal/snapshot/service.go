package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/metrics"
)

// Planner defines the planner state access the snapshot service needs.
type Planner interface {
	Snapshot(ctx context.Context) domain.Snapshot
	Restore(ctx context.Context, snap domain.Snapshot)
}

// Service exports and imports the full planner state as JSON.
type Service interface {
	// Export serializes the current planner state.
	Export(ctx context.Context) ([]byte, error)
	// Import validates and applies a previously exported snapshot. On any
	// structural mismatch the whole payload is rejected with
	// domain.ErrInvalidSnapshot and existing state is left untouched.
	Import(ctx context.Context, data []byte) error
}

type service struct {
	planner Planner
}

// NewService creates a new snapshot service over the given planner.
func NewService(planner Planner) Service {
	return &service{planner: planner}
}

func (s *service) Export(ctx context.Context) ([]byte, error) {
	snap := s.planner.Snapshot(ctx)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	metrics.SnapshotExports.Inc()
	return data, nil
}

func (s *service) Import(ctx context.Context, data []byte) error {
	log := logger.FromContext(ctx)

	snap, err := parse(data)
	if err != nil {
		log.Warn("Snapshot import rejected", "error", err)
		metrics.SnapshotImports.WithLabelValues(metrics.ResultRejected).Inc()
		return err
	}

	s.planner.Restore(ctx, snap)

	metrics.SnapshotImports.WithLabelValues(metrics.ResultAccepted).Inc()
	log.Info("Snapshot imported",
		"entries", len(snap.PlannerEntries),
		"annotations", len(snap.CustomIngredients))
	return nil
}

// parse validates the snapshot shape before anything is applied: the top
// level must be an object, plannerEntries a JSON array and
// customIngredientAnnotations a JSON object. Field-level decoding runs after
// the shape checks so a rejection can never leave partial state behind.
func parse(data []byte) (domain.Snapshot, error) {
	var raw struct {
		PlannerEntries    json.RawMessage `json:"plannerEntries"`
		CustomIngredients json.RawMessage `json:"customIngredientAnnotations"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: not a JSON object: %v", domain.ErrInvalidSnapshot, err)
	}

	if !startsWith(raw.PlannerEntries, '[') {
		return domain.Snapshot{}, fmt.Errorf("%w: plannerEntries must be an array", domain.ErrInvalidSnapshot)
	}
	if !startsWith(raw.CustomIngredients, '{') {
		return domain.Snapshot{}, fmt.Errorf("%w: customIngredientAnnotations must be an object", domain.ErrInvalidSnapshot)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(raw.PlannerEntries, &snap.PlannerEntries); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: malformed planner entries: %v", domain.ErrInvalidSnapshot, err)
	}
	if err := json.Unmarshal(raw.CustomIngredients, &snap.CustomIngredients); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: malformed annotations: %v", domain.ErrInvalidSnapshot, err)
	}

	return snap, nil
}

// startsWith reports whether the raw JSON value's first significant byte is c.
func startsWith(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == c
}
