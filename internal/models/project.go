package models

import (
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/money"
)

// Project is a piece of work sold to a client.
type Project struct {
	// ID is the unique identifier for the project (UUID format).
	ID string `json:"id"`

	// Name is the project title.
	Name string `json:"name" validate:"required"`

	// ClientID references the owning client.
	ClientID string `json:"clientId" validate:"required"`

	// ClientName is a copy of the client's name taken when the project was created or
	// edited. It is not kept in sync when the client is renamed later.
	ClientName string `json:"clientName"`

	// Status is the stored lifecycle label. New projects start Pending.
	Status Status `json:"status"`

	// Type is the billing type.
	Type BillingType `json:"type"`

	// Value is the contracted amount.
	Value money.Amount `json:"value" validate:"gte=0"`

	// TotalPaid caches the sum of the project's payments. Only ledger batches write it.
	TotalPaid money.Amount `json:"totalPaid"`

	DueDate     date.Date `json:"dueDate,omitzero"`
	StartDate   date.Date `json:"startDate,omitzero"`
	Description string    `json:"description,omitempty"`

	// Tasks is the ordered checklist; the index is the task's identity.
	Tasks []Task `json:"tasks"`

	// CreatedAt is the Unix timestamp when the project was created.
	CreatedAt int64 `json:"createdAt"`
}

// Task is one checklist item embedded in a project.
type Task struct {
	Desc string `json:"desc" validate:"required"`
	Done bool   `json:"done"`
}

// PendingTasks counts the tasks not done yet.
func (p Project) PendingTasks() int {
	n := 0
	for _, t := range p.Tasks {
		if !t.Done {
			n++
		}
	}
	return n
}
