// Package params provides ParameterStore implementations and typed accessors
// over node parameters.
package params

import (
	"fmt"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.ParameterStore = (*SnapshotStore)(nil)

// SnapshotStore serves parameters from in-memory per-item snapshots. This is
// the store the host hands a node during execution: one parameter map per
// workflow input item, immutable for the duration of the run.
type SnapshotStore struct {
	items []map[string]any
}

// NewSnapshotStore creates a store over the given per-item parameter maps.
func NewSnapshotStore(items []map[string]any) *SnapshotStore {
	return &SnapshotStore{items: items}
}

// GetParameter returns the raw parameter value for an item index.
func (s *SnapshotStore) GetParameter(name string, itemIndex int) (any, error) {
	if itemIndex < 0 || itemIndex >= len(s.items) {
		return nil, fmt.Errorf("%w: %q (item %d out of range)", domain.ErrParameterNotFound, name, itemIndex)
	}
	val, ok := s.items[itemIndex][name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (item %d)", domain.ErrParameterNotFound, name, itemIndex)
	}
	return val, nil
}

// Items returns the number of item snapshots in the store.
func (s *SnapshotStore) Items() int {
	return len(s.items)
}
