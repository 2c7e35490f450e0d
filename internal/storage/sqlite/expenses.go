package sqlite

import (
	"context"
	"database/sql"

	"github.com/mmynk/devarc/internal/models"
)

// ListExpenses returns the user's expenses, most recent date first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, value, date, category, client_id, client_name, project_id, project_name, created_at
		FROM expenses
		WHERE user_id = ?
		ORDER BY date DESC, rowid`, userID)
	if err != nil {
		return nil, failed("list expenses", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var (
			e        models.Expense
			category string
		)
		if err := rows.Scan(&e.ID, &e.Description, &e.Value, &e.Date, &category,
			&e.ClientID, &e.ClientName, &e.ProjectID, &e.ProjectName, &e.CreatedAt); err != nil {
			return nil, failed("scan expense", err)
		}
		if c, err := models.ParseCategory(category); err == nil {
			e.Category = c
		} else {
			e.Category = models.Category(category)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, failed("iterate expenses", err)
	}
	return expenses, nil
}

func insertExpense(ctx context.Context, tx *sql.Tx, userID string, e *models.Expense) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, description, value, date, category, client_id, client_name, project_id, project_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, userID, e.Description, e.Value, e.Date, string(e.Category),
		e.ClientID, e.ClientName, e.ProjectID, e.ProjectName, e.CreatedAt,
	)
	if err != nil {
		return failed("insert expense", err)
	}
	return nil
}
