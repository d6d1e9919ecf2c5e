// Package allocator implements the payment distribution arithmetic.
//
// A single requested amount is spread across an ordered list of children
// under a first-come-first-funded policy: children earlier in the list
// are funded up to the full fee before any later child receives a cent.
// The caller's ordering therefore decides who is treated as paid when
// the amount cannot cover the whole group, and must be preserved.
package allocator

import "fmt"

// ChildAllocation is the computed outcome for one child.
type ChildAllocation struct {
	// ChildID identifies the child this entry applies to.
	ChildID string

	// Applied is the amount funded for this child, in [0, feePerChild].
	Applied float64

	// Balance is the shortfall still owed: feePerChild - Applied,
	// never negative.
	Balance float64
}

// Allocate distributes requested across childIDs in order.
//
// Each child is funded min(feePerChild, remaining); once the requested
// amount is exhausted every later child receives zero and owes the full
// fee. Any surplus left after all fees are covered is dropped, not
// refunded or carried over. The result preserves childIDs order.
func Allocate(childIDs []string, feePerChild, requested float64) ([]ChildAllocation, error) {
	if len(childIDs) == 0 {
		return nil, fmt.Errorf("must have at least one child")
	}
	if feePerChild <= 0 {
		return nil, fmt.Errorf("fee per child must be positive, got %v", feePerChild)
	}
	if requested <= 0 {
		return nil, fmt.Errorf("requested amount must be positive, got %v", requested)
	}

	allocations := make([]ChildAllocation, 0, len(childIDs))
	remaining := requested

	for _, childID := range childIDs {
		applied := feePerChild
		if remaining < applied {
			applied = remaining
		}
		remaining -= applied

		allocations = append(allocations, ChildAllocation{
			ChildID: childID,
			Applied: applied,
			Balance: feePerChild - applied,
		})
	}

	return allocations, nil
}
