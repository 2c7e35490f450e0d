package models

import (
	"errors"
	"testing"

	"github.com/mmynk/devarc/internal/money"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"Active", StatusActive, false},
		{"pending", StatusPending, false},
		{"Concluído", StatusCompleted, false},
		{"Atrasado", StatusOverdue, false},
		{"Ativo", StatusActive, false},
		{"Archived", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				var ise *InvalidStatusError
				if !errors.As(err, &ise) {
					t.Errorf("expected InvalidStatusError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBillingType(t *testing.T) {
	for in, want := range map[string]BillingType{
		"":                  BillingOneTime,
		"unico":             BillingOneTime,
		"mensal":            BillingRecurringMonthly,
		"recurring-monthly": BillingRecurringMonthly,
	} {
		got, err := ParseBillingType(in)
		if err != nil || got != want {
			t.Errorf("ParseBillingType(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseBillingType("weekly"); err == nil {
		t.Error("expected error for weekly")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        any
		wantField string
	}{
		{"valid client", &Client{Name: "Acme", Phone: "(11) 98765-4321"}, ""},
		{"client without name", &Client{Phone: "11987654321"}, "name"},
		{"client phone without digits", &Client{Name: "Acme", Phone: "n/a"}, "phone"},
		{"client bad email", &Client{Name: "Acme", Phone: "1", Email: "nope"}, "email"},
		{"valid project", &Project{Name: "Site", ClientID: "c1", Value: money.New(0)}, ""},
		{"negative project value", &Project{Name: "Site", ClientID: "c1", Value: money.New(-1)}, "value"},
		{"project without client", &Project{Name: "Site"}, "clientId"},
		{"zero expense", &Expense{Description: "Figma", Category: CategorySoftware}, "value"},
		{"valid expense", &Expense{Description: "Figma", Category: CategorySoftware, Value: money.New(80)}, ""},
		{"settings bad email", &CompanySettings{Company: Company{Email: "x"}}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestProjectPendingTasks(t *testing.T) {
	p := Project{Tasks: []Task{{Desc: "a"}, {Desc: "b", Done: true}, {Desc: "c"}}}
	if got := p.PendingTasks(); got != 2 {
		t.Errorf("PendingTasks() = %d, want 2", got)
	}
	if got := (Project{}).PendingTasks(); got != 0 {
		t.Errorf("PendingTasks() on empty project = %d, want 0", got)
	}
}
