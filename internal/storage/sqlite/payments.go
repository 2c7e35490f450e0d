package sqlite

import (
	"context"
	"database/sql"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
)

// ListPayments returns a project's ledger in the order entries were recorded.
func (s *SQLiteStore) ListPayments(ctx context.Context, userID, projectID string) ([]models.Payment, error) {
	if err := ownsProject(ctx, s.db, userID, projectID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, value, date, note, created_at FROM payments WHERE project_id = ? ORDER BY rowid`,
		projectID)
	if err != nil {
		return nil, failed("list payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Value, &p.Date, &p.Note, &p.CreatedAt); err != nil {
			return nil, failed("scan payment", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, failed("iterate payments", err)
	}
	return payments, nil
}

func insertPayment(ctx context.Context, tx *sql.Tx, userID, projectID string, p *models.Payment) error {
	if err := ownsProject(ctx, tx, userID, projectID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO payments (id, project_id, value, date, note, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, projectID, p.Value, p.Date, p.Note, p.CreatedAt,
	)
	if err != nil {
		return failed("insert payment", err)
	}
	return nil
}

func deletePayment(ctx context.Context, tx *sql.Tx, userID, projectID, paymentID string) error {
	if err := ownsProject(ctx, tx, userID, projectID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`DELETE FROM payments WHERE id = ? AND project_id = ?`, paymentID, projectID)
	return affected(res, err, "payment", paymentID, "delete payment")
}

// ledgerTotal sums a project's payments as seen inside tx.
func ledgerTotal(ctx context.Context, tx *sql.Tx, projectID string) (money.Amount, error) {
	rows, err := tx.QueryContext(ctx, `SELECT value FROM payments WHERE project_id = ?`, projectID)
	if err != nil {
		return money.Amount{}, failed("sum payments", err)
	}
	defer rows.Close()

	var values []money.Amount
	for rows.Next() {
		var v money.Amount
		if err := rows.Scan(&v); err != nil {
			return money.Amount{}, failed("scan payment value", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return money.Amount{}, failed("iterate payments", err)
	}
	return money.Sum(values...), nil
}
