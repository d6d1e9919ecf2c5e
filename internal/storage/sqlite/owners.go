package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinderly/kinderly/internal/models"
)

// InsertOwner persists an owner. An existing ID is overwritten.
func (s *SQLiteStore) InsertOwner(ctx context.Context, owner *models.Owner) error {
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	if owner.CreatedAt == 0 {
		owner.CreatedAt = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO owners (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone
	`

	_, err := s.db.ExecContext(ctx, query,
		owner.ID,
		owner.Name,
		owner.Email,
		owner.Phone,
		owner.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner: %w", err)
	}

	return nil
}

// GetOwner retrieves an owner by ID.
func (s *SQLiteStore) GetOwner(ctx context.Context, id string) (*models.Owner, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM owners
		WHERE id = ?
	`

	owner := &models.Owner{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&owner.ID,
		&owner.Name,
		&owner.Email,
		&owner.Phone,
		&owner.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Owner not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return owner, nil
}

// ListOwners returns all owners in insertion order.
func (s *SQLiteStore) ListOwners(ctx context.Context) ([]*models.Owner, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM owners
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	var owners []*models.Owner
	for rows.Next() {
		owner := &models.Owner{}
		if err := rows.Scan(&owner.ID, &owner.Name, &owner.Email, &owner.Phone, &owner.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate owners: %w", err)
	}

	return owners, nil
}
