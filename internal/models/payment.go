package models

import (
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/money"
)

// Payment is a ledger entry: money received for a project.
// Entries are added or removed, never edited.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// ProjectID is the project whose ledger holds this entry.
	ProjectID string `json:"-"`

	// Value is the amount received; always positive.
	Value money.Amount `json:"value"`

	// Date is the day the money was received.
	Date date.Date `json:"date"`

	// Note is an optional free-text comment.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64 `json:"createdAt"`
}
