// Package stats computes portfolio-wide figures from a user's projects and expenses.
// Everything is recomputed from the full collections; nothing is maintained incrementally.
package stats

import (
	"context"
	"slices"

	"github.com/mmynk/devarc/internal/feed"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
)

// Stats are the dashboard counters.
type Stats struct {
	ActiveProjectCount      int          `json:"activeProjectCount"`
	PendingTaskCount        int          `json:"pendingTaskCount"`
	MonthlyRecurringRevenue money.Amount `json:"monthlyRecurringRevenue"`
	TotalReceived           money.Amount `json:"totalReceived"`
}

// Compute derives Stats from the projects collection. Amounts that could not be read as
// numbers are already zero, so they add nothing.
func Compute(projects []models.Project) Stats {
	var s Stats
	for _, p := range projects {
		if p.Status == models.StatusActive {
			s.ActiveProjectCount++
			if p.Type == models.BillingRecurringMonthly {
				s.MonthlyRecurringRevenue = s.MonthlyRecurringRevenue.Add(p.Value)
			}
		}
		s.PendingTaskCount += p.PendingTasks()
		s.TotalReceived = s.TotalReceived.Add(p.TotalPaid)
	}
	return s
}

// CategoryTotal is the amount spent in one expense category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    money.Amount    `json:"total"`
}

// Financials is the revenue/expense overview.
type Financials struct {
	// Revenue is the contracted value of every project, paid or not.
	Revenue      money.Amount    `json:"revenue"`
	Received     money.Amount    `json:"received"`
	Expenses     money.Amount    `json:"expenses"`
	Profit       money.Amount    `json:"profit"`
	ByCategory   []CategoryTotal `json:"byCategory"`
	ExpenseCount int             `json:"expenseCount"`
	ProjectCount int             `json:"projectCount"`
}

// Summarize totals projects against expenses. ByCategory lists every category, in the order
// of models.Categories, including empty ones.
func Summarize(projects []models.Project, expenses []models.Expense) Financials {
	f := Financials{ProjectCount: len(projects), ExpenseCount: len(expenses)}
	for _, p := range projects {
		f.Revenue = f.Revenue.Add(p.Value)
		f.Received = f.Received.Add(p.TotalPaid)
	}

	byCat := make(map[models.Category]money.Amount, len(models.Categories))
	for _, e := range expenses {
		f.Expenses = f.Expenses.Add(e.Value)
		cat := e.Category
		if !slices.Contains(models.Categories, cat) {
			cat = models.CategoryOther
		}
		byCat[cat] = byCat[cat].Add(e.Value)
	}
	for _, c := range models.Categories {
		f.ByCategory = append(f.ByCategory, CategoryTotal{Category: c, Total: byCat[c]})
	}

	f.Profit = f.Revenue.Sub(f.Expenses)
	return f
}

// UpcomingDue returns up to limit Active projects that have a due date, soonest first.
// A limit of zero or less returns all of them.
func UpcomingDue(projects []models.Project, limit int) []models.Project {
	var out []models.Project
	for _, p := range projects {
		if p.Status == models.StatusActive && !p.DueDate.IsZero() {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Project) int { return a.DueDate.Compare(b.DueDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Watch recomputes Stats for every projects snapshot received on snapshots and passes them to
// fn. It returns when ctx is done, when the channel is closed, or when fn fails.
func Watch(ctx context.Context, snapshots <-chan feed.Snapshot, fn func(Stats) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			if err := fn(Compute(snap.Projects)); err != nil {
				return err
			}
		}
	}
}
