package models

// Owner is the facility owner record. At most one Owner may exist
// system-wide; the registration service enforces this, not the store.
type Owner struct {
	// ID is the unique identifier for the owner (UUID format).
	ID string `json:"id"`

	// Name is the owner's full name.
	Name string `json:"name"`

	// Email is the owner's contact email.
	Email string `json:"email"`

	// Phone is the owner's contact number, exactly 10 digits.
	Phone string `json:"phone"`

	// CreatedAt is the Unix-millisecond timestamp when the owner was registered.
	CreatedAt int64 `json:"createdAt"`
}
