package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/kinderly/kinderly/internal/allocator"
	"github.com/kinderly/kinderly/internal/models"
	"github.com/kinderly/kinderly/internal/storage"
)

// ChildBalance is the amount a child still owes after an allocation.
type ChildBalance struct {
	ChildID string  `json:"childId"`
	Balance float64 `json:"balance"`
}

// AllocationResult is the outcome of one allocation call: one payment
// and one balance entry per child, both in request order.
type AllocationResult struct {
	Payments []*models.Payment `json:"payments"`
	Balances []ChildBalance    `json:"balancePerChild"`
}

// PaymentService is the payment allocation engine. It validates every
// referenced entity before touching the store, distributes the requested
// amount across the children first-come-first-funded, and persists one
// payment record per child.
type PaymentService struct {
	store storage.Store
	fees  *FeeResolver
}

// NewPaymentService creates a PaymentService with the given storage
// backend and fee resolver.
func NewPaymentService(store storage.Store, fees *FeeResolver) *PaymentService {
	return &PaymentService{store: store, fees: fees}
}

// AllocatePayment distributes amount across childIDs in order.
//
// The precondition pass runs to completion before any write: a missing
// guardian, a bad amount, any unresolved child ID, or an absent fee
// structure fails the whole call with zero payments persisted. Only
// after every child resolves and the arithmetic is done are the payment
// rows inserted, exactly one per child.
func (s *PaymentService) AllocatePayment(ctx context.Context, guardianID string, childIDs []string, amount float64) (*AllocationResult, error) {
	if guardianID == "" {
		return nil, Validationf("guardianId is required")
	}
	guardian, err := s.store.GetGuardian(ctx, guardianID)
	if err != nil {
		return nil, err
	}
	if guardian == nil {
		return nil, NotFoundf("guardian %s not found", guardianID)
	}

	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if len(childIDs) == 0 {
		return nil, Validationf("childIds must not be empty")
	}

	// Resolve every child before any mutation so a bad ID cannot leave
	// partial payments behind.
	var invalid []string
	for _, childID := range childIDs {
		child, err := s.store.GetChild(ctx, childID)
		if err != nil {
			return nil, err
		}
		if child == nil {
			invalid = append(invalid, childID)
		}
	}
	if len(invalid) > 0 {
		return nil, InvalidChildIDsError(invalid)
	}

	fee, err := s.fees.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	allocations, err := allocator.Allocate(childIDs, fee.Amount, amount)
	if err != nil {
		return nil, Validationf("%s", err.Error())
	}

	result := &AllocationResult{
		Payments: make([]*models.Payment, 0, len(allocations)),
		Balances: make([]ChildBalance, 0, len(allocations)),
	}
	for _, alloc := range allocations {
		payment := &models.Payment{
			ChildID: alloc.ChildID,
			Amount:  alloc.Applied,
			Status:  models.PaymentPaid,
		}
		if err := s.store.InsertPayment(ctx, payment); err != nil {
			return nil, err
		}
		result.Payments = append(result.Payments, payment)
		result.Balances = append(result.Balances, ChildBalance{
			ChildID: alloc.ChildID,
			Balance: alloc.Balance,
		})
	}

	slog.Info("Payment allocated",
		"guardian_id", guardianID,
		"children", len(childIDs),
		"requested", amount,
		"fee_per_child", fee.Amount,
	)
	return result, nil
}

// ListPayments returns all persisted payments in insertion order.
func (s *PaymentService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.store.ListPayments(ctx)
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Validationf("amount must be a finite number")
	}
	if amount <= 0 {
		return Validationf("amount must be greater than zero")
	}
	return nil
}
