package models

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment records an amount applied to a single child by one allocation
// call. Payments are written only by the payment service and never
// mutated afterward; the applied amount may be zero when the requested
// amount ran out before this child's turn.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// ChildID references the child this payment was applied to.
	ChildID string `json:"childId"`

	// Amount is the amount actually applied to this child, in
	// [0, feePerChild].
	Amount float64 `json:"amount"`

	// Status is the payment state. Allocation writes PAID.
	Status PaymentStatus `json:"status"`

	// CreatedAt is the Unix-millisecond timestamp when the payment was recorded.
	CreatedAt int64 `json:"createdAt"`
}
