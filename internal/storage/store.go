// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/kinderly/kinderly/internal/models"
)

// Store defines the interface for entity storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Contract, uniform across entity types:
//   - Get returns (nil, nil) when no entity has the given ID, so callers
//     can tell absence from a storage failure.
//   - Insert assigns a UUID and creation timestamp when unset, and has
//     upsert semantics: inserting an existing ID overwrites the row.
//   - List returns entities in insertion order.
//
// The store enforces no cross-entity referential checks and no
// uniqueness beyond the primary key; those invariants belong to the
// service layer.
type Store interface {
	GetOwner(ctx context.Context, id string) (*models.Owner, error)
	InsertOwner(ctx context.Context, owner *models.Owner) error
	ListOwners(ctx context.Context) ([]*models.Owner, error)

	GetGuardian(ctx context.Context, id string) (*models.Guardian, error)
	// GetGuardianByEmail serves the unique-email invariant check.
	// Returns (nil, nil) when no guardian has the email.
	GetGuardianByEmail(ctx context.Context, email string) (*models.Guardian, error)
	InsertGuardian(ctx context.Context, guardian *models.Guardian) error
	ListGuardians(ctx context.Context) ([]*models.Guardian, error)

	GetChild(ctx context.Context, id string) (*models.Child, error)
	InsertChild(ctx context.Context, child *models.Child) error
	ListChildren(ctx context.Context) ([]*models.Child, error)

	GetFeeStructure(ctx context.Context, id string) (*models.FeeStructure, error)
	InsertFeeStructure(ctx context.Context, fee *models.FeeStructure) error
	ListFeeStructures(ctx context.Context) ([]*models.FeeStructure, error)

	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	InsertPayment(ctx context.Context, payment *models.Payment) error
	ListPayments(ctx context.Context) ([]*models.Payment, error)

	// Close releases any resources held by the store.
	Close() error
}
