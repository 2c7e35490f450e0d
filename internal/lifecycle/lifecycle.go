// Package lifecycle drives project status changes.
//
// The status graph is open: every status can move to every other one and none is terminal.
// Changes come from form edits (ApplyTransition) or from dragging a card between board
// columns (Move). Either way the result is at most one {status} write-intent.
package lifecycle

import (
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
)

// ApplyTransition validates status and returns the update that sets it on project.
// Moving a project to the status it already has yields an empty batch.
func ApplyTransition(project models.Project, status string) (models.Batch, error) {
	next, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if next == project.Status {
		return nil, nil
	}
	return models.Batch{models.UpdateProject(project.ID, map[string]any{models.FieldStatus: next})}, nil
}

// Position locates a card on the board.
type Position struct {
	Column string `json:"column"`
	Index  int    `json:"index"`
}

// Drag is a finished drag gesture. Destination is nil when the card was dropped outside
// every column.
type Drag struct {
	Source      Position  `json:"source"`
	Destination *Position `json:"destination,omitempty"`
}

// Move turns a drag into a status change. Reordering inside a column is not persisted, so only
// a drop on a different column writes; the destination column id becomes the new status.
func Move(project models.Project, drag Drag) (models.Batch, error) {
	if drag.Destination == nil {
		return nil, nil
	}
	if sameColumn(drag.Source.Column, drag.Destination.Column) {
		return nil, nil
	}
	next, err := models.ParseStatus(drag.Destination.Column)
	if err != nil {
		return nil, err
	}
	return models.Batch{models.UpdateProject(project.ID, map[string]any{models.FieldStatus: next})}, nil
}

func sameColumn(a, b string) bool {
	if a == b {
		return true
	}
	sa, errA := models.ParseStatus(a)
	sb, errB := models.ParseStatus(b)
	return errA == nil && errB == nil && Column(sa) == Column(sb)
}

// Column returns the board column a stored status is shown in. Overdue cards sit in the
// Pending column.
func Column(s models.Status) models.Status {
	if s == models.StatusOverdue {
		return models.StatusPending
	}
	return s
}

// IsOverdue reports whether the project should be flagged as late on the given day: either
// it was explicitly marked Overdue, or it is still Pending past its due date.
func IsOverdue(p models.Project, today date.Date) bool {
	switch p.Status {
	case models.StatusOverdue:
		return true
	case models.StatusPending:
		return !p.DueDate.IsZero() && p.DueDate.Before(today)
	}
	return false
}
