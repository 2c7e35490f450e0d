package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Apply writes every intent of batch in a single transaction.
//
// Before committing, each totalPaid written by the batch is checked against the ledger as it
// stands inside the transaction. A mismatch means the batch was computed from a stale ledger
// (another session wrote in between) and the whole batch is rolled back with ErrConflict.
func (s *SQLiteStore) Apply(ctx context.Context, userID string, batch models.Batch) error {
	if batch.Empty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return failed("begin transaction", err)
	}
	defer tx.Rollback()

	paid := make(map[string]money.Amount)
	deleted := make(map[string]bool)

	for _, wi := range batch {
		if err := applyIntent(ctx, tx, userID, wi); err != nil {
			return err
		}
		if wi.Collection != models.CollectionProjects {
			continue
		}
		switch wi.Op {
		case models.OpCreate:
			paid[wi.ID] = wi.Doc.(*models.Project).TotalPaid
		case models.OpUpdate:
			if v, ok := wi.Fields[models.FieldTotalPaid]; ok {
				paid[wi.ID] = v.(money.Amount)
			}
		case models.OpDelete:
			deleted[wi.ID] = true
		}
	}

	for projectID, want := range paid {
		if deleted[projectID] {
			continue
		}
		got, err := ledgerTotal(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if !got.Equal(want) {
			return fmt.Errorf("project %s: ledger sums to %s, batch writes %s: %w", projectID, got, want, models.ErrConflict)
		}
	}

	if err := tx.Commit(); err != nil {
		return failed("commit transaction", err)
	}
	return nil
}

func applyIntent(ctx context.Context, tx *sql.Tx, userID string, wi models.WriteIntent) error {
	switch wi.Collection {
	case models.CollectionClients:
		switch wi.Op {
		case models.OpCreate:
			return insertClient(ctx, tx, userID, wi.Doc.(*models.Client))
		case models.OpUpdate:
			return updateFields(ctx, tx, "clients", clientFields, userID, wi)
		case models.OpDelete:
			return deleteOwned(ctx, tx, "clients", userID, wi.ID)
		}

	case models.CollectionProjects:
		switch wi.Op {
		case models.OpCreate:
			return insertProject(ctx, tx, userID, wi.Doc.(*models.Project))
		case models.OpUpdate:
			return updateFields(ctx, tx, "projects", projectFields, userID, wi)
		case models.OpDelete:
			return deleteOwned(ctx, tx, "projects", userID, wi.ID)
		}

	case models.CollectionPayments:
		switch wi.Op {
		case models.OpCreate:
			return insertPayment(ctx, tx, userID, wi.ParentID, wi.Doc.(*models.Payment))
		case models.OpDelete:
			return deletePayment(ctx, tx, userID, wi.ParentID, wi.ID)
		}

	case models.CollectionExpenses:
		switch wi.Op {
		case models.OpCreate:
			return insertExpense(ctx, tx, userID, wi.Doc.(*models.Expense))
		case models.OpDelete:
			return deleteOwned(ctx, tx, "expenses", userID, wi.ID)
		}

	case models.CollectionNotes:
		// Notes are an append-only timeline.
		if wi.Op == models.OpCreate {
			return insertNote(ctx, tx, userID, wi.ParentID, wi.Doc.(*models.Note))
		}

	case models.CollectionSettings:
		if wi.Op == models.OpCreate || wi.Op == models.OpUpdate {
			return saveSettings(ctx, tx, userID, wi.Doc.(*models.CompanySettings))
		}
	}
	return fmt.Errorf("unsupported write: %s %s", wi.Op, wi.Collection)
}

// updateFields runs a partial UPDATE of the columns named by wi.Fields.
func updateFields(ctx context.Context, tx *sql.Tx, table string, columns map[string]string, userID string, wi models.WriteIntent) error {
	if len(wi.Fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(wi.Fields))
	for name := range wi.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	sets := make([]string, 0, len(names))
	args := make([]any, 0, len(names)+2)
	for _, name := range names {
		col, ok := columns[name]
		if !ok {
			return models.Invalid(name, "cannot be updated")
		}
		v, err := columnValue(wi.Fields[name])
		if err != nil {
			return err
		}
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	args = append(args, wi.ID, userID)

	res, err := tx.ExecContext(ctx,
		`UPDATE `+table+` SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	return affected(res, err, kindOf(table), wi.ID, "update "+kindOf(table))
}

func deleteOwned(ctx context.Context, tx *sql.Tx, table, userID, id string) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ? AND user_id = ?`, id, userID)
	return affected(res, err, kindOf(table), id, "delete "+kindOf(table))
}

// affected turns "no row matched" into a NotFoundError.
func affected(res sql.Result, err error, kind, id, op string) error {
	if err != nil {
		return failed(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return failed(op, err)
	}
	if n == 0 {
		return models.NotFound(kind, id)
	}
	return nil
}

func kindOf(table string) string { return strings.TrimSuffix(table, "s") }

// columnValue converts a write-intent field value to something the driver accepts.
func columnValue(v any) (any, error) {
	switch x := v.(type) {
	case string, int64, bool:
		return x, nil
	case models.Status:
		return string(x), nil
	case models.BillingType:
		return string(x), nil
	case models.Category:
		return string(x), nil
	case money.Amount:
		return x.Value()
	case date.Date:
		return x.Value()
	case []models.Task:
		return encodeTasks(x)
	}
	return nil, fmt.Errorf("unsupported field value %T", v)
}
