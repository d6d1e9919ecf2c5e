package models

// Guardian is a responsible adult linked to one or more children.
// Guardians are identified by a unique email; the registration service
// rejects duplicates.
type Guardian struct {
	// ID is the unique identifier for the guardian (UUID format).
	ID string `json:"id"`

	// Name is the guardian's full name.
	Name string `json:"name"`

	// Email is the guardian's contact email, unique across guardians.
	Email string `json:"email"`

	// Phone is the guardian's contact number, exactly 10 digits.
	Phone string `json:"phone"`

	// ChildIDs lists the IDs of children registered under this guardian.
	// The list grows as children are created; it is never edited directly.
	ChildIDs []string `json:"childIds"`

	// CreatedAt is the Unix-millisecond timestamp when the guardian was registered.
	CreatedAt int64 `json:"createdAt"`
}
