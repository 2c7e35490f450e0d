package sqlite

import (
	"context"
	"database/sql"

	"github.com/mmynk/devarc/internal/models"
)

// ListNotes returns a project's timeline, newest first.
func (s *SQLiteStore) ListNotes(ctx context.Context, userID, projectID string) ([]models.Note, error) {
	if err := ownsProject(ctx, s.db, userID, projectID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, text, created_at FROM notes WHERE project_id = ? ORDER BY created_at DESC, rowid DESC`,
		projectID)
	if err != nil {
		return nil, failed("list notes", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.Text, &n.CreatedAt); err != nil {
			return nil, failed("scan note", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, failed("iterate notes", err)
	}
	return notes, nil
}

func insertNote(ctx context.Context, tx *sql.Tx, userID, projectID string, n *models.Note) error {
	if err := ownsProject(ctx, tx, userID, projectID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO notes (id, project_id, text, created_at) VALUES (?, ?, ?, ?)`,
		n.ID, projectID, n.Text, n.CreatedAt)
	if err != nil {
		return failed("insert note", err)
	}
	return nil
}
