package models

import (
	"strings"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/money"
)

// Category classifies an expense.
type Category string

const (
	CategorySoftware  Category = "Software"
	CategoryMarketing Category = "Marketing"
	CategoryEquipment Category = "Equipment"
	CategoryTaxes     Category = "Taxes"
	CategoryOther     Category = "Other"
)

// Categories lists every expense category in display order.
var Categories = []Category{CategorySoftware, CategoryMarketing, CategoryEquipment, CategoryTaxes, CategoryOther}

// ParseCategory accepts the canonical names and the legacy pt-BR labels.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "software":
		return CategorySoftware, nil
	case "marketing":
		return CategoryMarketing, nil
	case "equipment", "equipamentos":
		return CategoryEquipment, nil
	case "taxes", "impostos":
		return CategoryTaxes, nil
	case "other", "outros":
		return CategoryOther, nil
	}
	return "", Invalid("category", "must be one of Software, Marketing, Equipment, Taxes, Other")
}

// Expense is money spent by the user. Expenses never touch a project's TotalPaid.
type Expense struct {
	ID          string       `json:"id"`
	Description string       `json:"description" validate:"required"`
	Value       money.Amount `json:"value" validate:"gt=0"`
	Date        date.Date    `json:"date"`
	Category    Category     `json:"category" validate:"required"`

	// Optional tags. Names are snapshots taken when the expense was recorded.
	ClientID    string `json:"clientId,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	ProjectName string `json:"projectName,omitempty"`

	CreatedAt int64 `json:"createdAt"`
}
