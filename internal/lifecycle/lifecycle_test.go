package lifecycle

import (
	"errors"
	"testing"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
)

func TestApplyTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   models.Status
		next      string
		wantWrite models.Status
		wantErr   bool
	}{
		{"pending to active", models.StatusPending, "Active", models.StatusActive, false},
		{"completed reopened", models.StatusCompleted, "Pending", models.StatusPending, false},
		{"active to overdue", models.StatusActive, "Overdue", models.StatusOverdue, false},
		{"legacy label", models.StatusPending, "Concluído", models.StatusCompleted, false},
		{"same status", models.StatusActive, "Active", "", false},
		{"unknown status", models.StatusActive, "Archived", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := ApplyTransition(models.Project{ID: "p1", Status: tt.current}, tt.next)
			if tt.wantErr {
				var ise *models.InvalidStatusError
				if !errors.As(err, &ise) {
					t.Fatalf("err = %v, want InvalidStatusError", err)
				}
				if batch != nil {
					t.Errorf("batch = %v, want none", batch)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyTransition failed: %v", err)
			}
			if tt.wantWrite == "" {
				if !batch.Empty() {
					t.Errorf("batch = %v, want no write", batch)
				}
				return
			}
			if len(batch) != 1 {
				t.Fatalf("batch has %d intents, want 1", len(batch))
			}
			wi := batch[0]
			if wi.ID != "p1" || len(wi.Fields) != 1 || wi.Fields[models.FieldStatus] != tt.wantWrite {
				t.Errorf("intent = %+v, want {status: %s}", wi, tt.wantWrite)
			}
		})
	}
}

func TestMove(t *testing.T) {
	project := models.Project{ID: "p1", Status: models.StatusPending}

	tests := []struct {
		name      string
		drag      Drag
		wantWrite models.Status
	}{
		{
			name:      "pending to active",
			drag:      Drag{Source: Position{"Pending", 0}, Destination: &Position{"Active", 3}},
			wantWrite: models.StatusActive,
		},
		{
			name:      "different column same index",
			drag:      Drag{Source: Position{"Pending", 1}, Destination: &Position{"Completed", 1}},
			wantWrite: models.StatusCompleted,
		},
		{
			name: "same column new index",
			drag: Drag{Source: Position{"Pending", 0}, Destination: &Position{"Pending", 2}},
		},
		{
			name: "same column same index",
			drag: Drag{Source: Position{"Active", 1}, Destination: &Position{"Active", 1}},
		},
		{
			name: "dropped outside",
			drag: Drag{Source: Position{"Pending", 0}},
		},
		{
			name:      "legacy column ids",
			drag:      Drag{Source: Position{"Pendente", 0}, Destination: &Position{"Ativo", 0}},
			wantWrite: models.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := Move(project, tt.drag)
			if err != nil {
				t.Fatalf("Move failed: %v", err)
			}
			if tt.wantWrite == "" {
				if !batch.Empty() {
					t.Errorf("batch = %v, want no write", batch)
				}
				return
			}
			if len(batch) != 1 || batch[0].Fields[models.FieldStatus] != tt.wantWrite {
				t.Errorf("batch = %+v, want one {status: %s}", batch, tt.wantWrite)
			}
		})
	}
}

// A move to another column is written even when the stored status already matches.
func TestMove_AlwaysEmitsAcrossColumns(t *testing.T) {
	project := models.Project{ID: "p1", Status: models.StatusActive}
	batch, err := Move(project, Drag{Source: Position{"Pending", 0}, Destination: &Position{"Active", 0}})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if len(batch) != 1 {
		t.Errorf("batch = %v, want one write", batch)
	}
}

func TestMove_UnknownColumn(t *testing.T) {
	_, err := Move(models.Project{ID: "p1"}, Drag{Source: Position{"Pending", 0}, Destination: &Position{"Backlog", 0}})
	var ise *models.InvalidStatusError
	if !errors.As(err, &ise) {
		t.Errorf("err = %v, want InvalidStatusError", err)
	}
}

func TestIsOverdue(t *testing.T) {
	today := date.MustParse("2024-05-10")

	tests := []struct {
		name    string
		project models.Project
		want    bool
	}{
		{"stored overdue", models.Project{Status: models.StatusOverdue}, true},
		{"pending past due", models.Project{Status: models.StatusPending, DueDate: date.MustParse("2024-05-09")}, true},
		{"pending due today", models.Project{Status: models.StatusPending, DueDate: today}, false},
		{"pending without due date", models.Project{Status: models.StatusPending}, false},
		{"active past due", models.Project{Status: models.StatusActive, DueDate: date.MustParse("2024-01-01")}, false},
		{"completed past due", models.Project{Status: models.StatusCompleted, DueDate: date.MustParse("2024-01-01")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.project, today); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoard(t *testing.T) {
	today := date.MustParse("2024-05-10")
	projects := []models.Project{
		{ID: "a", Status: models.StatusActive},
		{ID: "b", Status: models.StatusOverdue},
		{ID: "c", Status: models.StatusPending, Tasks: []models.Task{{Desc: "x"}, {Desc: "y", Done: true}}},
		{ID: "d", Status: models.StatusCompleted},
	}

	board := Board(projects, today)
	if len(board) != 3 {
		t.Fatalf("board has %d columns, want 3", len(board))
	}

	pending := board[0]
	if pending.ID != models.StatusPending || len(pending.Cards) != 2 {
		t.Fatalf("pending column = %+v", pending)
	}
	if pending.Cards[0].Project.ID != "b" || !pending.Cards[0].Overdue {
		t.Errorf("first pending card = %+v, want overdue b", pending.Cards[0])
	}
	if pending.Cards[1].PendingTasks != 1 {
		t.Errorf("PendingTasks = %d, want 1", pending.Cards[1].PendingTasks)
	}
	if len(board[1].Cards) != 1 || board[1].Cards[0].Project.ID != "a" {
		t.Errorf("active column = %+v", board[1])
	}
	if len(board[2].Cards) != 1 || board[2].Title != "Concluído" {
		t.Errorf("completed column = %+v", board[2])
	}
}
