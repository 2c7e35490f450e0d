// Package ledger keeps a project's cached totalPaid consistent with its payment ledger.
//
// Every mutation returns a models.Batch holding the ledger change and the cache update. The
// two intents must be applied in one transaction; the cache is always recomputed from the
// full resulting ledger rather than adjusted by the delta.
package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
)

// Entry is a payment as submitted by the user, before it becomes a ledger record.
type Entry struct {
	Value money.Amount
	Date  string
	Note  string
}

// AddPayment validates entry and returns the new payment together with the batch that appends
// it to the ledger and sets the project's totalPaid to the new ledger sum.
func AddPayment(project models.Project, payments []models.Payment, entry Entry, now time.Time) (models.Payment, models.Batch, error) {
	if !entry.Value.IsPositive() {
		return models.Payment{}, nil, models.Invalid("value", "must be greater than zero")
	}
	if strings.TrimSpace(entry.Date) == "" {
		return models.Payment{}, nil, models.Invalid("date", "is required")
	}
	on, err := date.Parse(entry.Date)
	if err != nil {
		return models.Payment{}, nil, models.Invalid("date", err.Error())
	}

	p := models.Payment{
		ID:        uuid.New().String(),
		ProjectID: project.ID,
		Value:     entry.Value,
		Date:      on,
		Note:      strings.TrimSpace(entry.Note),
		CreatedAt: now.Unix(),
	}

	total := Total(payments).Add(p.Value)
	batch := models.Batch{
		{Op: models.OpCreate, Collection: models.CollectionPayments, ParentID: project.ID, ID: p.ID, Doc: &p},
		models.UpdateProject(project.ID, map[string]any{models.FieldTotalPaid: total}),
	}
	return p, batch, nil
}

// RemovePayment returns the batch that deletes entryID from the ledger and sets totalPaid to
// the sum of the remaining entries.
func RemovePayment(project models.Project, payments []models.Payment, entryID string) (models.Batch, error) {
	idx := slices.IndexFunc(payments, func(p models.Payment) bool { return p.ID == entryID })
	if idx < 0 {
		return nil, models.NotFound("payment", entryID)
	}

	remaining := slices.Delete(slices.Clone(payments), idx, idx+1)
	total := money.Max(Total(remaining), money.Amount{})

	return models.Batch{
		{Op: models.OpDelete, Collection: models.CollectionPayments, ParentID: project.ID, ID: entryID},
		models.UpdateProject(project.ID, map[string]any{models.FieldTotalPaid: total}),
	}, nil
}

// Reconcile returns a batch repairing the project's totalPaid when it no longer matches the
// ledger, or an empty batch when the cache is correct.
func Reconcile(project models.Project, payments []models.Payment) models.Batch {
	total := Total(payments)
	if project.TotalPaid.Equal(total) {
		return nil
	}
	return models.Batch{models.UpdateProject(project.ID, map[string]any{models.FieldTotalPaid: total})}
}

// Total sums the ledger.
func Total(payments []models.Payment) money.Amount {
	total := money.Amount{}
	for _, p := range payments {
		total = total.Add(p.Value)
	}
	return total
}

// ProgressPercent reports how much of the project value has been received, in [0, 100].
// A project with no value counts as worth 1 so the ratio stays defined.
func ProgressPercent(project models.Project, payments []models.Payment) float64 {
	return Progress(Total(payments), project.Value)
}

// Progress is ProgressPercent for a known paid amount.
func Progress(paid, value money.Amount) float64 {
	denom := money.Max(value, money.New(1))
	pct := paid.Decimal().Mul(money.New(100).Decimal()).Div(denom.Decimal()).InexactFloat64()
	return min(100, max(0, pct))
}

// Sorted returns a copy of payments in display order: newest date first, and entries sharing
// a date keep the order they were given in.
func Sorted(payments []models.Payment) []models.Payment {
	out := slices.Clone(payments)
	slices.SortStableFunc(out, func(a, b models.Payment) int {
		switch {
		case a.Date == b.Date:
			return 0
		case a.Date.IsZero():
			return 1
		case b.Date.IsZero():
			return -1
		}
		return b.Date.Compare(a.Date)
	})
	return out
}
