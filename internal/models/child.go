package models

// Child is an enrolled child. A child always belongs to exactly one
// guardian, referenced by ID. Only Name and BirthDate may change after
// creation; GuardianID is fixed for the lifetime of the record.
type Child struct {
	// ID is the unique identifier for the child (UUID format).
	ID string `json:"id"`

	// Name is the child's full name.
	Name string `json:"name"`

	// BirthDate is the child's date of birth in YYYY-MM-DD form.
	BirthDate string `json:"birthDate"`

	// GuardianID references the owning guardian.
	GuardianID string `json:"guardianId"`

	// CreatedAt is the Unix-millisecond timestamp when the child was registered.
	CreatedAt int64 `json:"createdAt"`
}
