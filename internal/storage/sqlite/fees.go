package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinderly/kinderly/internal/models"
)

// InsertFeeStructure persists a fee structure. An existing ID is overwritten.
func (s *SQLiteStore) InsertFeeStructure(ctx context.Context, fee *models.FeeStructure) error {
	if fee.ID == "" {
		fee.ID = uuid.New().String()
	}
	if fee.CreatedAt == 0 {
		fee.CreatedAt = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO fee_structures (id, name, amount, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			amount = excluded.amount
	`

	_, err := s.db.ExecContext(ctx, query,
		fee.ID,
		fee.Name,
		fee.Amount,
		fee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fee structure: %w", err)
	}

	return nil
}

// GetFeeStructure retrieves a fee structure by ID.
func (s *SQLiteStore) GetFeeStructure(ctx context.Context, id string) (*models.FeeStructure, error) {
	query := `
		SELECT id, name, amount, created_at
		FROM fee_structures
		WHERE id = ?
	`

	fee := &models.FeeStructure{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&fee.ID,
		&fee.Name,
		&fee.Amount,
		&fee.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Fee structure not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fee structure: %w", err)
	}

	return fee, nil
}

// ListFeeStructures returns all fee structures in insertion order.
func (s *SQLiteStore) ListFeeStructures(ctx context.Context) ([]*models.FeeStructure, error) {
	query := `
		SELECT id, name, amount, created_at
		FROM fee_structures
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fee structures: %w", err)
	}
	defer rows.Close()

	var fees []*models.FeeStructure
	for rows.Next() {
		fee := &models.FeeStructure{}
		if err := rows.Scan(&fee.ID, &fee.Name, &fee.Amount, &fee.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fee structure: %w", err)
		}
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fee structures: %w", err)
	}

	return fees, nil
}
