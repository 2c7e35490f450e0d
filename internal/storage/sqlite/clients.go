package sqlite

import (
	"context"
	"database/sql"

	"github.com/mmynk/devarc/internal/models"
)

const clientColumns = `id, name, company, cpf, email, phone, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.CPF, &c.Email, &c.Phone, &c.CreatedAt)
	return c, err
}

// ListClients returns the user's clients in creation order.
func (s *SQLiteStore) ListClients(ctx context.Context, userID string) ([]models.Client, error) {
	return listClients(ctx, s.db, userID)
}

func listClients(ctx context.Context, q querier, userID string) ([]models.Client, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, failed("list clients", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, failed("scan client", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, failed("iterate clients", err)
	}
	return clients, nil
}

// GetClient retrieves one of the user's clients.
func (s *SQLiteStore) GetClient(ctx context.Context, userID, clientID string) (*models.Client, error) {
	c, err := scanClient(s.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ? AND user_id = ?`, clientID, userID))
	if err != nil {
		return nil, notFound(err, "client", clientID, "get client")
	}
	return &c, nil
}

var clientFields = map[string]string{
	"name":    "name",
	"company": "company",
	"cpf":     "cpf",
	"email":   "email",
	"phone":   "phone",
}

func insertClient(ctx context.Context, tx *sql.Tx, userID string, c *models.Client) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO clients (user_id, `+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, c.ID, c.Name, c.Company, c.CPF, c.Email, c.Phone, c.CreatedAt,
	)
	if err != nil {
		return failed("insert client", err)
	}
	return nil
}
