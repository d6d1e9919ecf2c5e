package models

// FeeStructure is a named per-child fee amount applied uniformly to all
// children. Several may exist; the most recently created one is treated
// as active by the fee resolver.
type FeeStructure struct {
	// ID is the unique identifier for the fee structure (UUID format).
	ID string `json:"id"`

	// Name is the display name of the schedule (e.g. "Full Day 2026").
	Name string `json:"name"`

	// Amount is the per-child fee, always positive.
	Amount float64 `json:"amount"`

	// CreatedAt is the Unix-millisecond timestamp when the fee structure
	// was registered. The resolver orders by this field.
	CreatedAt int64 `json:"createdAt"`
}
