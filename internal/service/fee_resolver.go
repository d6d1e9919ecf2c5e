package service

import (
	"context"
	"fmt"

	"github.com/kinderly/kinderly/internal/models"
	"github.com/kinderly/kinderly/internal/storage"
)

// FeeResolver answers "what is the per-child fee right now".
//
// Several fee structures may be registered over time; the active one is
// the most recently created. This is an explicit policy: relying on
// store iteration order would make the active fee an accident of the
// backend.
type FeeResolver struct {
	store storage.Store
}

// NewFeeResolver creates a FeeResolver backed by the given store.
func NewFeeResolver(store storage.Store) *FeeResolver {
	return &FeeResolver{store: store}
}

// Resolve returns the active fee structure. It has no side effects and
// fails with a not_found error when no fee structure has been registered.
func (r *FeeResolver) Resolve(ctx context.Context) (*models.FeeStructure, error) {
	fees, err := r.store.ListFeeStructures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fee structures: %w", err)
	}
	if len(fees) == 0 {
		return nil, NotFoundf("no fee structure registered")
	}

	active := fees[0]
	for _, fee := range fees[1:] {
		if fee.CreatedAt > active.CreatedAt {
			active = fee
		}
	}
	return active, nil
}
