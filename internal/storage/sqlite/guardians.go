package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinderly/kinderly/internal/models"
)

// InsertGuardian persists a guardian and its child links inside one
// transaction. An existing ID is overwritten, including the child list.
func (s *SQLiteStore) InsertGuardian(ctx context.Context, guardian *models.Guardian) error {
	if guardian.ID == "" {
		guardian.ID = uuid.New().String()
	}
	if guardian.CreatedAt == 0 {
		guardian.CreatedAt = time.Now().UnixMilli()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO guardians (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone
	`, guardian.ID, guardian.Name, guardian.Email, guardian.Phone, guardian.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert guardian: %w", err)
	}

	// Replace child links wholesale so upserts stay consistent.
	_, err = tx.ExecContext(ctx, "DELETE FROM guardian_children WHERE guardian_id = ?", guardian.ID)
	if err != nil {
		return fmt.Errorf("failed to clear guardian children: %w", err)
	}
	for i, childID := range guardian.ChildIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO guardian_children (guardian_id, child_id, position) VALUES (?, ?, ?)",
			guardian.ID, childID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert guardian child link: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGuardian retrieves a guardian by ID, including its child ID list.
func (s *SQLiteStore) GetGuardian(ctx context.Context, id string) (*models.Guardian, error) {
	guardian := &models.Guardian{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, created_at FROM guardians WHERE id = ?",
		id,
	).Scan(&guardian.ID, &guardian.Name, &guardian.Email, &guardian.Phone, &guardian.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Guardian not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guardian: %w", err)
	}

	if err := s.loadChildIDs(ctx, guardian); err != nil {
		return nil, err
	}

	return guardian, nil
}

// GetGuardianByEmail retrieves a guardian by email address.
func (s *SQLiteStore) GetGuardianByEmail(ctx context.Context, email string) (*models.Guardian, error) {
	guardian := &models.Guardian{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, created_at FROM guardians WHERE email = ?",
		email,
	).Scan(&guardian.ID, &guardian.Name, &guardian.Email, &guardian.Phone, &guardian.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Guardian not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guardian by email: %w", err)
	}

	if err := s.loadChildIDs(ctx, guardian); err != nil {
		return nil, err
	}

	return guardian, nil
}

// ListGuardians returns all guardians in insertion order.
func (s *SQLiteStore) ListGuardians(ctx context.Context) ([]*models.Guardian, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, phone, created_at FROM guardians ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guardians: %w", err)
	}
	defer rows.Close()

	var guardians []*models.Guardian
	for rows.Next() {
		guardian := &models.Guardian{}
		if err := rows.Scan(&guardian.ID, &guardian.Name, &guardian.Email, &guardian.Phone, &guardian.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guardian: %w", err)
		}
		guardians = append(guardians, guardian)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guardians: %w", err)
	}

	for _, guardian := range guardians {
		if err := s.loadChildIDs(ctx, guardian); err != nil {
			return nil, err
		}
	}

	return guardians, nil
}

func (s *SQLiteStore) loadChildIDs(ctx context.Context, guardian *models.Guardian) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT child_id FROM guardian_children WHERE guardian_id = ? ORDER BY position",
		guardian.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get guardian children: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var childID string
		if err := rows.Scan(&childID); err != nil {
			return fmt.Errorf("failed to scan guardian child link: %w", err)
		}
		guardian.ChildIDs = append(guardian.ChildIDs, childID)
	}
	return rows.Err()
}
