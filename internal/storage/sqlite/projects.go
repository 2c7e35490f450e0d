package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mmynk/devarc/internal/models"
)

const projectColumns = `id, name, client_id, client_name, status, type, value, total_paid, due_date, start_date, description, tasks, created_at`

// projectFields maps write-intent field names to columns.
var projectFields = map[string]string{
	models.FieldName:        "name",
	models.FieldClientID:    "client_id",
	models.FieldClientName:  "client_name",
	models.FieldStatus:      "status",
	models.FieldType:        "type",
	models.FieldValue:       "value",
	models.FieldTotalPaid:   "total_paid",
	models.FieldDueDate:     "due_date",
	models.FieldStartDate:   "start_date",
	models.FieldDescription: "description",
	models.FieldTasks:       "tasks",
}

func scanProject(row scanner) (models.Project, error) {
	var (
		p            models.Project
		status, kind string
		tasks        string
	)
	err := row.Scan(&p.ID, &p.Name, &p.ClientID, &p.ClientName, &status, &kind,
		&p.Value, &p.TotalPaid, &p.DueDate, &p.StartDate, &p.Description, &tasks, &p.CreatedAt)
	if err != nil {
		return p, err
	}

	// Rows written by older versions may carry the Portuguese labels.
	if st, err := models.ParseStatus(status); err == nil {
		p.Status = st
	} else {
		p.Status = models.Status(status)
	}
	if bt, err := models.ParseBillingType(kind); err == nil {
		p.Type = bt
	} else {
		p.Type = models.BillingType(kind)
	}

	p.Tasks = []models.Task{}
	if tasks != "" {
		if err := json.Unmarshal([]byte(tasks), &p.Tasks); err != nil {
			return p, err
		}
	}
	return p, nil
}

// ListProjects returns the user's projects in creation order.
func (s *SQLiteStore) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return listProjects(ctx, s.db, userID)
}

func listProjects(ctx context.Context, q querier, userID string) ([]models.Project, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, failed("list projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, failed("scan project", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, failed("iterate projects", err)
	}
	return projects, nil
}

// GetProject retrieves one of the user's projects.
func (s *SQLiteStore) GetProject(ctx context.Context, userID, projectID string) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ? AND user_id = ?`, projectID, userID))
	if err != nil {
		return nil, notFound(err, "project", projectID, "get project")
	}
	return &p, nil
}

func insertProject(ctx context.Context, tx *sql.Tx, userID string, p *models.Project) error {
	tasks, err := encodeTasks(p.Tasks)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (user_id, `+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, p.ID, p.Name, p.ClientID, p.ClientName, string(p.Status), string(p.Type),
		p.Value, p.TotalPaid, p.DueDate, p.StartDate, p.Description, tasks, p.CreatedAt,
	)
	if err != nil {
		return failed("insert project", err)
	}
	return nil
}

// ownsProject reports whether projectID exists and belongs to userID.
func ownsProject(ctx context.Context, q querier, userID, projectID string) error {
	var one int
	err := q.QueryRowContext(ctx,
		`SELECT 1 FROM projects WHERE id = ? AND user_id = ?`, projectID, userID).Scan(&one)
	if err != nil {
		return notFound(err, "project", projectID, "check project")
	}
	return nil
}

func encodeTasks(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", failed("encode tasks", err)
	}
	return string(b), nil
}
