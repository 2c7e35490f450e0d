package models

import "strings"

// Status is the stored lifecycle label of a project.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusOverdue   Status = "Overdue"
)

// Statuses lists every recognized status.
var Statuses = []Status{StatusPending, StatusActive, StatusCompleted, StatusOverdue}

// legacy labels written by the first version of the app.
var statusAliases = map[string]Status{
	"pendente":  StatusPending,
	"ativo":     StatusActive,
	"concluído": StatusCompleted,
	"concluido": StatusCompleted,
	"atrasado":  StatusOverdue,
}

// ParseStatus maps a status string to a Status. It accepts the canonical names in any case
// and the legacy Portuguese labels.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses {
		if key == strings.ToLower(string(st)) {
			return st, nil
		}
	}
	if st, ok := statusAliases[key]; ok {
		return st, nil
	}
	return "", &InvalidStatusError{Value: s}
}

// BillingType tells whether a project is billed once or every month.
type BillingType string

const (
	BillingOneTime          BillingType = "one-time"
	BillingRecurringMonthly BillingType = "recurring-monthly"
)

// ParseBillingType maps a billing type string, accepting the legacy "unico" and "mensal".
// Empty input means one-time.
func ParseBillingType(s string) (BillingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "one-time", "unico", "único":
		return BillingOneTime, nil
	case "recurring-monthly", "mensal":
		return BillingRecurringMonthly, nil
	}
	return "", Invalid("type", "must be one-time or recurring-monthly")
}

// Label returns the pt-BR label used on invoices.
func (b BillingType) Label() string {
	if b == BillingRecurringMonthly {
		return "Recorrente Mensal"
	}
	return "Pagamento Único"
}
