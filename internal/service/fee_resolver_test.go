package service

import (
	"context"
	"testing"

	"github.com/kinderly/kinderly/internal/models"
)

func TestFeeResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("no fee structure registered", func(t *testing.T) {
		resolver := NewFeeResolver(newTestStore(t))

		_, err := resolver.Resolve(ctx)
		wantKind(t, err, KindNotFound)
	})

	t.Run("single fee structure is active", func(t *testing.T) {
		store := newTestStore(t)
		resolver := NewFeeResolver(store)

		fee := &models.FeeStructure{Name: "Standard", Amount: 100}
		if err := store.InsertFeeStructure(ctx, fee); err != nil {
			t.Fatalf("InsertFeeStructure failed: %v", err)
		}

		active, err := resolver.Resolve(ctx)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if active.ID != fee.ID || active.Amount != 100 {
			t.Errorf("Resolve = %+v, want the registered fee", active)
		}
	})

	t.Run("most recently created wins", func(t *testing.T) {
		store := newTestStore(t)
		resolver := NewFeeResolver(store)

		older := &models.FeeStructure{Name: "2025 Rates", Amount: 90, CreatedAt: 1000}
		newer := &models.FeeStructure{Name: "2026 Rates", Amount: 110, CreatedAt: 2000}
		middle := &models.FeeStructure{Name: "Mid-year Adjustment", Amount: 95, CreatedAt: 1500}

		// Insert out of creation order to prove selection is not
		// driven by store iteration order.
		for _, fee := range []*models.FeeStructure{newer, older, middle} {
			if err := store.InsertFeeStructure(ctx, fee); err != nil {
				t.Fatalf("InsertFeeStructure failed: %v", err)
			}
		}

		active, err := resolver.Resolve(ctx)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if active.ID != newer.ID {
			t.Errorf("active fee = %s (%s), want the most recently created %s", active.ID, active.Name, newer.ID)
		}
		if active.Amount != 110 {
			t.Errorf("active amount = %v, want 110", active.Amount)
		}
	})
}
