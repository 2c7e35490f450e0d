package ledger

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
)

var now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

// book applies ledger batches the way the store does, in memory.
type book struct {
	project  models.Project
	payments []models.Payment
}

func (b *book) apply(t *testing.T, batch models.Batch) {
	t.Helper()
	for _, wi := range batch {
		switch {
		case wi.Collection == models.CollectionPayments && wi.Op == models.OpCreate:
			b.payments = append(b.payments, *wi.Doc.(*models.Payment))
		case wi.Collection == models.CollectionPayments && wi.Op == models.OpDelete:
			b.payments = slices.DeleteFunc(b.payments, func(p models.Payment) bool { return p.ID == wi.ID })
		case wi.Collection == models.CollectionProjects && wi.Op == models.OpUpdate:
			if v, ok := wi.Fields[models.FieldTotalPaid]; ok {
				b.project.TotalPaid = v.(money.Amount)
			}
		default:
			t.Fatalf("unexpected intent %+v", wi)
		}
	}
}

func (b *book) add(t *testing.T, value float64, on string) models.Payment {
	t.Helper()
	p, batch, err := AddPayment(b.project, b.payments, Entry{Value: money.New(value), Date: on}, now)
	if err != nil {
		t.Fatalf("AddPayment(%v) failed: %v", value, err)
	}
	b.apply(t, batch)
	return p
}

func (b *book) checkCache(t *testing.T) {
	t.Helper()
	if !b.project.TotalPaid.Equal(Total(b.payments)) {
		t.Errorf("totalPaid = %s, ledger sum = %s", b.project.TotalPaid, Total(b.payments))
	}
}

func TestScenario_AddAddRemove(t *testing.T) {
	b := &book{project: models.Project{ID: "p1", Value: money.New(1000)}}

	first := b.add(t, 400, "2024-01-10")
	if len(b.payments) != 1 {
		t.Fatalf("ledger has %d entries, want 1", len(b.payments))
	}
	if !b.project.TotalPaid.Equal(money.New(400)) {
		t.Errorf("totalPaid = %s, want 400", b.project.TotalPaid)
	}
	if got := ProgressPercent(b.project, b.payments); math.Abs(got-40) > 0.01 {
		t.Errorf("progress = %v, want 40", got)
	}

	b.add(t, 700, "2024-01-20")
	if !b.project.TotalPaid.Equal(money.New(1100)) {
		t.Errorf("totalPaid = %s, want 1100", b.project.TotalPaid)
	}
	if got := ProgressPercent(b.project, b.payments); got != 100 {
		t.Errorf("progress = %v, want 100 (clamped)", got)
	}

	batch, err := RemovePayment(b.project, b.payments, first.ID)
	if err != nil {
		t.Fatalf("RemovePayment failed: %v", err)
	}
	b.apply(t, batch)
	if !b.project.TotalPaid.Equal(money.New(700)) {
		t.Errorf("totalPaid = %s, want 700", b.project.TotalPaid)
	}
	b.checkCache(t)
}

func TestCacheMatchesLedger_AcrossSequences(t *testing.T) {
	b := &book{project: models.Project{ID: "p1", Value: money.New(5000)}}

	var ids []string
	for i, v := range []float64{0.1, 0.2, 99.99, 1250, 3.33, 0.01} {
		p := b.add(t, v, date.New(2024, time.March, i+1).String())
		ids = append(ids, p.ID)
		b.checkCache(t)
	}
	for _, id := range []string{ids[1], ids[4], ids[0]} {
		batch, err := RemovePayment(b.project, b.payments, id)
		if err != nil {
			t.Fatalf("RemovePayment(%s) failed: %v", id, err)
		}
		b.apply(t, batch)
		b.checkCache(t)
	}
}

func TestRemovePayment_EmptiesLedger(t *testing.T) {
	b := &book{project: models.Project{ID: "p1", Value: money.New(100)}}
	p := b.add(t, 50, "2024-02-01")

	batch, err := RemovePayment(b.project, b.payments, p.ID)
	if err != nil {
		t.Fatalf("RemovePayment failed: %v", err)
	}
	b.apply(t, batch)
	if !b.project.TotalPaid.IsZero() {
		t.Errorf("totalPaid = %s, want 0", b.project.TotalPaid)
	}
}

// A drifted cache must not leak into the new total.
func TestRemovePayment_RecomputesFromRemaining(t *testing.T) {
	project := models.Project{ID: "p1", TotalPaid: money.New(10)}
	payments := []models.Payment{
		{ID: "a", Value: money.New(300)},
		{ID: "b", Value: money.New(200)},
	}

	batch, err := RemovePayment(project, payments, "a")
	if err != nil {
		t.Fatalf("RemovePayment failed: %v", err)
	}
	got := batch[1].Fields[models.FieldTotalPaid].(money.Amount)
	if !got.Equal(money.New(200)) {
		t.Errorf("totalPaid = %s, want 200", got)
	}
	if len(payments) != 2 {
		t.Errorf("input ledger was modified")
	}
}

func TestRemovePayment_NotFound(t *testing.T) {
	batch, err := RemovePayment(models.Project{ID: "p1"}, nil, "missing")
	if !models.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if batch != nil {
		t.Errorf("batch = %v, want none", batch)
	}
}

func TestAddPayment_Validation(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantField string
	}{
		{"zero value", Entry{Value: money.New(0), Date: "2024-01-10"}, "value"},
		{"negative value", Entry{Value: money.New(-5), Date: "2024-01-10"}, "value"},
		{"missing date", Entry{Value: money.New(5)}, "date"},
		{"bad date", Entry{Value: money.New(5), Date: "10/01/2024"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, batch, err := AddPayment(models.Project{ID: "p1"}, nil, tt.entry, now)
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
			if batch != nil {
				t.Errorf("batch = %v, want none", batch)
			}
		})
	}
}

func TestAddPayment_Entry(t *testing.T) {
	p, batch, err := AddPayment(models.Project{ID: "p1"}, nil, Entry{Value: money.New(400), Date: "2024-01-10", Note: " sinal "}, now)
	if err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	if p.ID == "" || p.ProjectID != "p1" || p.Note != "sinal" || p.CreatedAt != now.Unix() {
		t.Errorf("unexpected payment %+v", p)
	}
	if p.Date != date.New(2024, time.January, 10) {
		t.Errorf("Date = %v", p.Date)
	}
	if len(batch) != 2 || batch[0].ParentID != "p1" || batch[1].ID != "p1" {
		t.Errorf("unexpected batch %+v", batch)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		paid, value float64
		want        float64
	}{
		{"zero value project", 50, 0, 100},
		{"nothing paid", 0, 1000, 0},
		{"half", 250, 500, 50},
		{"overpaid", 1100, 1000, 100},
		{"negative cache", -10, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(money.New(tt.paid), money.New(tt.value))
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Progress(%v, %v) = %v, want %v", tt.paid, tt.value, got, tt.want)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	payments := []models.Payment{{ID: "a", Value: money.New(100)}, {ID: "b", Value: money.New(50)}}

	if batch := Reconcile(models.Project{ID: "p1", TotalPaid: money.New(150)}, payments); !batch.Empty() {
		t.Errorf("consistent cache produced %v", batch)
	}

	batch := Reconcile(models.Project{ID: "p1", TotalPaid: money.New(100)}, payments)
	if len(batch) != 1 {
		t.Fatalf("batch = %v, want one update", batch)
	}
	if got := batch[0].Fields[models.FieldTotalPaid].(money.Amount); !got.Equal(money.New(150)) {
		t.Errorf("totalPaid = %s, want 150", got)
	}
}

func TestSorted(t *testing.T) {
	payments := []models.Payment{
		{ID: "old", Date: date.MustParse("2024-01-01")},
		{ID: "tie-1", Date: date.MustParse("2024-03-01")},
		{ID: "new", Date: date.MustParse("2024-04-01")},
		{ID: "tie-2", Date: date.MustParse("2024-03-01")},
	}

	var got []string
	for _, p := range Sorted(payments) {
		got = append(got, p.ID)
	}
	want := []string{"new", "tie-1", "tie-2", "old"}
	if !slices.Equal(got, want) {
		t.Errorf("Sorted = %v, want %v", got, want)
	}
	if payments[0].ID != "old" {
		t.Error("input was reordered")
	}
}
