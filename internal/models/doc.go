// Package models defines the core domain entities for Kinderly.
//
// All entities are keyed by UUID strings and carry Unix-millisecond
// creation timestamps. Relationships are expressed as ID references
// rather than embedded structs to avoid circular references:
//
//   - Owner: the single facility owner record
//   - Guardian: a responsible adult, linked to zero or more Children by ID
//   - Child: an enrolled child, referencing its Guardian by ID
//   - FeeStructure: a named per-child fee amount
//   - Payment: an amount applied to one Child by the allocation engine
//
// Entities are immutable once created, with two exceptions: a Guardian's
// ChildIDs list grows when a Child is registered under it, and a Child's
// Name and BirthDate may be updated. Payments are never mutated after
// insertion.
package models
