package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinderly/kinderly/internal/models"
)

// InsertChild persists a child. An existing ID is overwritten.
func (s *SQLiteStore) InsertChild(ctx context.Context, child *models.Child) error {
	if child.ID == "" {
		child.ID = uuid.New().String()
	}
	if child.CreatedAt == 0 {
		child.CreatedAt = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO children (id, name, birth_date, guardian_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			guardian_id = excluded.guardian_id
	`

	_, err := s.db.ExecContext(ctx, query,
		child.ID,
		child.Name,
		child.BirthDate,
		child.GuardianID,
		child.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert child: %w", err)
	}

	return nil
}

// GetChild retrieves a child by ID.
func (s *SQLiteStore) GetChild(ctx context.Context, id string) (*models.Child, error) {
	query := `
		SELECT id, name, birth_date, guardian_id, created_at
		FROM children
		WHERE id = ?
	`

	child := &models.Child{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&child.ID,
		&child.Name,
		&child.BirthDate,
		&child.GuardianID,
		&child.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Child not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	return child, nil
}

// ListChildren returns all children in insertion order.
func (s *SQLiteStore) ListChildren(ctx context.Context) ([]*models.Child, error) {
	query := `
		SELECT id, name, birth_date, guardian_id, created_at
		FROM children
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		child := &models.Child{}
		if err := rows.Scan(&child.ID, &child.Name, &child.BirthDate, &child.GuardianID, &child.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate children: %w", err)
	}

	return children, nil
}
