package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinderly/kinderly/internal/models"
)

// InsertPayment persists a payment record. An existing ID is overwritten,
// though the service layer never rewrites a payment.
func (s *SQLiteStore) InsertPayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO payments (id, child_id, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			child_id = excluded.child_id,
			amount = excluded.amount,
			status = excluded.status
	`

	_, err := s.db.ExecContext(ctx, query,
		payment.ID,
		payment.ChildID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	query := `
		SELECT id, child_id, amount, status, created_at
		FROM payments
		WHERE id = ?
	`

	payment := &models.Payment{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&payment.ID,
		&payment.ChildID,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Payment not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}

// ListPayments returns all payments in insertion order.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	query := `
		SELECT id, child_id, amount, status, created_at
		FROM payments
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.ChildID, &payment.Amount, &payment.Status, &payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
