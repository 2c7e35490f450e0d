package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mmynk/devarc/internal/models"
)

// GetSettings returns the user's company settings. A user who never saved any gets the
// zero value, which renders with the default template and company name.
func (s *SQLiteStore) GetSettings(ctx context.Context, userID string) (*models.CompanySettings, error) {
	var company, template string
	err := s.db.QueryRowContext(ctx,
		`SELECT company, contract_template FROM settings WHERE user_id = ?`, userID,
	).Scan(&company, &template)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.CompanySettings{}, nil
	}
	if err != nil {
		return nil, failed("get settings", err)
	}

	settings := &models.CompanySettings{ContractTemplate: template}
	if err := json.Unmarshal([]byte(company), &settings.Company); err != nil {
		return nil, failed("decode company settings", err)
	}
	return settings, nil
}

func saveSettings(ctx context.Context, tx *sql.Tx, userID string, settings *models.CompanySettings) error {
	company, err := json.Marshal(settings.Company)
	if err != nil {
		return failed("encode company settings", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (user_id, company, contract_template) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET company = excluded.company, contract_template = excluded.contract_template`,
		userID, string(company), settings.ContractTemplate)
	if err != nil {
		return failed("save settings", err)
	}
	return nil
}
