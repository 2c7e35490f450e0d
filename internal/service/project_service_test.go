package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/lifecycle"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
	"github.com/mmynk/devarc/pkg/api"
)

func TestCreateProject(t *testing.T) {
	srv := setupTestServer(t)
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")

	p := user.createProject(t, api.ProjectInput{
		Name:     "Loja Virtual",
		ClientID: c.ID,
		Type:     "mensal",
		Value:    money.New(1500),
		DueDate:  date.MustParse("2024-02-01"),
	})

	if p.Status != models.StatusPending {
		t.Errorf("Status = %s, want Pending", p.Status)
	}
	if p.Type != models.BillingRecurringMonthly {
		t.Errorf("Type = %s, want recurring-monthly", p.Type)
	}
	if p.ClientName != "Maria" {
		t.Errorf("ClientName = %q, want Maria", p.ClientName)
	}
	if !p.TotalPaid.IsZero() || len(p.Tasks) != 0 {
		t.Errorf("new project has TotalPaid %s and %d tasks", p.TotalPaid, len(p.Tasks))
	}
}

func TestCreateProject_Invalid(t *testing.T) {
	srv := setupTestServer(t)
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")

	tests := []struct {
		name string
		in   api.ProjectInput
		want connect.Code
	}{
		{"missing name", api.ProjectInput{ClientID: c.ID}, connect.CodeInvalidArgument},
		{"negative value", api.ProjectInput{Name: "X", ClientID: c.ID, Value: money.New(-1)}, connect.CodeInvalidArgument},
		{"unknown status", api.ProjectInput{Name: "X", ClientID: c.ID, Status: "Archived"}, connect.CodeInvalidArgument},
		{"unknown type", api.ProjectInput{Name: "X", ClientID: c.ID, Type: "weekly"}, connect.CodeInvalidArgument},
		{"unknown client", api.ProjectInput{Name: "X", ClientID: "nope"}, connect.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.projects.CreateProject(context.Background(), connect.NewRequest(&api.CreateProjectRequest{Project: tt.in}))
			assertCode(t, err, tt.want)
		})
	}
}

func TestUpdateProject_KeepsLedgerAndTasks(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID, Value: money.New(1000)})

	if _, err := user.ledger.AddPayment(ctx, connect.NewRequest(&api.AddPaymentRequest{ProjectID: p.ID, Value: money.New(300), Date: "2024-01-10"})); err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	if _, err := user.projects.AddTask(ctx, connect.NewRequest(&api.AddTaskRequest{ProjectID: p.ID, Desc: "Layout"})); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	resp, err := user.projects.UpdateProject(ctx, connect.NewRequest(&api.UpdateProjectRequest{
		ID:      p.ID,
		Project: api.ProjectInput{Name: "Site novo", ClientID: c.ID, Status: "Ativo", Value: money.New(2000)},
	}))
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	got := resp.Msg.Project
	if got.Name != "Site novo" || got.Status != models.StatusActive || !got.Value.Equal(money.New(2000)) {
		t.Errorf("UpdateProject = %+v", got)
	}
	if !got.TotalPaid.Equal(money.New(300)) {
		t.Errorf("TotalPaid = %s, want 300", got.TotalPaid)
	}
	if len(got.Tasks) != 1 {
		t.Errorf("Tasks = %v, want 1 task", got.Tasks)
	}
}

func TestUpdateProject_BlankStatusAndTypeKeepStored(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Suporte", ClientID: c.ID, Status: "Active", Type: "recurring-monthly", Value: money.New(500)})

	resp, err := user.projects.UpdateProject(ctx, connect.NewRequest(&api.UpdateProjectRequest{
		ID:      p.ID,
		Project: api.ProjectInput{Name: "Suporte mensal", ClientID: c.ID, Value: money.New(600)},
	}))
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	got := resp.Msg.Project
	if got.Status != models.StatusActive {
		t.Errorf("Status = %s, want %s", got.Status, models.StatusActive)
	}
	if got.Type != models.BillingRecurringMonthly {
		t.Errorf("Type = %s, want %s", got.Type, models.BillingRecurringMonthly)
	}
	if got.Name != "Suporte mensal" {
		t.Errorf("Name = %q, want %q", got.Name, "Suporte mensal")
	}

	stats, err := user.stats.GetStats(ctx, connect.NewRequest(&api.GetStatsRequest{}))
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if !stats.Msg.Stats.MonthlyRecurringRevenue.Equal(money.New(600)) {
		t.Errorf("MonthlyRecurringRevenue = %s, want 600", stats.Msg.Stats.MonthlyRecurringRevenue)
	}
}

func TestCreatedAt_UsesBackendClock(t *testing.T) {
	srv := setupTestServer(t)
	fixed := time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)
	srv.backend.now = func() time.Time { return fixed }

	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	if c.CreatedAt != fixed.Unix() {
		t.Errorf("client CreatedAt = %d, want %d", c.CreatedAt, fixed.Unix())
	}
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID, Value: money.New(1000)})
	if p.CreatedAt != fixed.Unix() {
		t.Errorf("project CreatedAt = %d, want %d", p.CreatedAt, fixed.Unix())
	}

	note, err := user.projects.AddNote(ctx, connect.NewRequest(&api.AddNoteRequest{ProjectID: p.ID, Text: "Kickoff"}))
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if note.Msg.Note.CreatedAt != fixed.Unix() {
		t.Errorf("note CreatedAt = %d, want %d", note.Msg.Note.CreatedAt, fixed.Unix())
	}

	exp, err := user.expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{
		Expense: api.ExpenseInput{Description: "Hosting", Value: money.New(50), Category: "software"},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	if exp.Msg.Expense.CreatedAt != fixed.Unix() {
		t.Errorf("expense CreatedAt = %d, want %d", exp.Msg.Expense.CreatedAt, fixed.Unix())
	}
	if want := date.New(2024, time.May, 6); exp.Msg.Expense.Date != want {
		t.Errorf("expense Date = %v, want %v", exp.Msg.Expense.Date, want)
	}
}

func TestDeleteProject(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID, Value: money.New(1000)})

	if _, err := user.ledger.AddPayment(ctx, connect.NewRequest(&api.AddPaymentRequest{ProjectID: p.ID, Value: money.New(300), Date: "2024-01-10"})); err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	if _, err := user.projects.DeleteProject(ctx, connect.NewRequest(&api.DeleteProjectRequest{ID: p.ID})); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	_, err := user.ledger.ListPayments(ctx, connect.NewRequest(&api.ListPaymentsRequest{ProjectID: p.ID}))
	assertCode(t, err, connect.CodeNotFound)
	_, err = user.projects.DeleteProject(ctx, connect.NewRequest(&api.DeleteProjectRequest{ID: p.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListProjects_Filters(t *testing.T) {
	srv := setupTestServer(t)
	user := srv.signUp(t, "ana@example.com")
	maria := user.createClient(t, "Maria", "11 98765-4321")
	joao := user.createClient(t, "João", "21 99876-5432")

	user.createProject(t, api.ProjectInput{Name: "A", ClientID: maria.ID, Status: "Active"})
	user.createProject(t, api.ProjectInput{Name: "B", ClientID: maria.ID})
	user.createProject(t, api.ProjectInput{Name: "C", ClientID: joao.ID, Status: "Active"})

	tests := []struct {
		name string
		req  api.ListProjectsRequest
		want []string
	}{
		{"all", api.ListProjectsRequest{}, []string{"A", "B", "C"}},
		{"by status", api.ListProjectsRequest{Status: "ativo"}, []string{"A", "C"}},
		{"by client", api.ListProjectsRequest{ClientID: maria.ID}, []string{"A", "B"}},
		{"both", api.ListProjectsRequest{Status: "Pending", ClientID: joao.ID}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := user.projects.ListProjects(context.Background(), connect.NewRequest(&tt.req))
			if err != nil {
				t.Fatalf("ListProjects failed: %v", err)
			}
			var names []string
			for _, p := range resp.Msg.Projects {
				names = append(names, p.Name)
			}
			if len(names) != len(tt.want) {
				t.Fatalf("ListProjects = %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("ListProjects = %v, want %v", names, tt.want)
				}
			}
		})
	}
}

func TestTransitionStatus(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID})

	resp, err := user.projects.TransitionStatus(ctx, connect.NewRequest(&api.TransitionStatusRequest{ID: p.ID, Status: "Concluído"}))
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if !resp.Msg.Changed || resp.Msg.Project.Status != models.StatusCompleted {
		t.Errorf("TransitionStatus = %+v", resp.Msg)
	}

	// Completed is not terminal.
	resp, err = user.projects.TransitionStatus(ctx, connect.NewRequest(&api.TransitionStatusRequest{ID: p.ID, Status: "Pending"}))
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if resp.Msg.Project.Status != models.StatusPending {
		t.Errorf("Status = %s, want Pending", resp.Msg.Project.Status)
	}

	resp, err = user.projects.TransitionStatus(ctx, connect.NewRequest(&api.TransitionStatusRequest{ID: p.ID, Status: "Pending"}))
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if resp.Msg.Changed {
		t.Error("same-status transition reported a change")
	}

	_, err = user.projects.TransitionStatus(ctx, connect.NewRequest(&api.TransitionStatusRequest{ID: p.ID, Status: "Archived"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestMoveCard(t *testing.T) {
	srv := setupTestServer(t)
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID})

	tests := []struct {
		name        string
		drag        lifecycle.Drag
		wantChanged bool
		wantStatus  models.Status
	}{
		{
			name:       "dropped outside",
			drag:       lifecycle.Drag{Source: lifecycle.Position{Column: "Pending"}},
			wantStatus: models.StatusPending,
		},
		{
			name: "reordered in column",
			drag: lifecycle.Drag{
				Source:      lifecycle.Position{Column: "Pending", Index: 0},
				Destination: &lifecycle.Position{Column: "Pending", Index: 2},
			},
			wantStatus: models.StatusPending,
		},
		{
			name: "moved to active",
			drag: lifecycle.Drag{
				Source:      lifecycle.Position{Column: "Pending"},
				Destination: &lifecycle.Position{Column: "Active"},
			},
			wantChanged: true,
			wantStatus:  models.StatusActive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := user.projects.MoveCard(context.Background(), connect.NewRequest(&api.MoveCardRequest{ID: p.ID, Drag: tt.drag}))
			if err != nil {
				t.Fatalf("MoveCard failed: %v", err)
			}
			if resp.Msg.Changed != tt.wantChanged || resp.Msg.Project.Status != tt.wantStatus {
				t.Errorf("MoveCard = changed %v status %s, want %v %s",
					resp.Msg.Changed, resp.Msg.Project.Status, tt.wantChanged, tt.wantStatus)
			}
		})
	}

	_, err := user.projects.MoveCard(context.Background(), connect.NewRequest(&api.MoveCardRequest{
		ID: p.ID,
		Drag: lifecycle.Drag{
			Source:      lifecycle.Position{Column: "Active"},
			Destination: &lifecycle.Position{Column: "Backlog"},
		},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGetBoard(t *testing.T) {
	srv := setupTestServer(t)
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")

	user.createProject(t, api.ProjectInput{Name: "Late", ClientID: c.ID, DueDate: date.MustParse("2020-01-01")})
	user.createProject(t, api.ProjectInput{Name: "Flagged", ClientID: c.ID, Status: "Atrasado"})
	user.createProject(t, api.ProjectInput{Name: "Running", ClientID: c.ID, Status: "Active", DueDate: date.MustParse("2020-01-01")})

	resp, err := user.projects.GetBoard(context.Background(), connect.NewRequest(&api.GetBoardRequest{}))
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}
	cols := resp.Msg.Columns
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}

	pending := cols[0]
	if pending.ID != models.StatusPending || len(pending.Cards) != 2 {
		t.Fatalf("pending column = %+v", pending)
	}
	for _, card := range pending.Cards {
		if !card.Overdue {
			t.Errorf("%s should be overdue", card.Project.Name)
		}
	}
	if len(cols[1].Cards) != 1 || cols[1].Cards[0].Overdue {
		t.Errorf("active column = %+v", cols[1])
	}
}

func TestTasks(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID})

	for _, desc := range []string{"Layout", "Deploy", "Docs"} {
		if _, err := user.projects.AddTask(ctx, connect.NewRequest(&api.AddTaskRequest{ProjectID: p.ID, Desc: desc})); err != nil {
			t.Fatalf("AddTask(%s) failed: %v", desc, err)
		}
	}

	resp, err := user.projects.ToggleTask(ctx, connect.NewRequest(&api.TaskRequest{ProjectID: p.ID, Index: 0}))
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !resp.Msg.Tasks[0].Done {
		t.Error("task 0 should be done")
	}

	resp, err = user.projects.RemoveTask(ctx, connect.NewRequest(&api.TaskRequest{ProjectID: p.ID, Index: 1}))
	if err != nil {
		t.Fatalf("RemoveTask failed: %v", err)
	}
	if len(resp.Msg.Tasks) != 2 || resp.Msg.Tasks[1].Desc != "Docs" {
		t.Errorf("Tasks = %+v", resp.Msg.Tasks)
	}

	_, err = user.projects.ToggleTask(ctx, connect.NewRequest(&api.TaskRequest{ProjectID: p.ID, Index: 5}))
	assertCode(t, err, connect.CodeNotFound)
	_, err = user.projects.AddTask(ctx, connect.NewRequest(&api.AddTaskRequest{ProjectID: p.ID, Desc: "  "}))
	assertCode(t, err, connect.CodeInvalidArgument)

	stats, err := user.stats.GetStats(ctx, connect.NewRequest(&api.GetStatsRequest{}))
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Msg.Stats.PendingTaskCount != 1 {
		t.Errorf("PendingTaskCount = %d, want 1", stats.Msg.Stats.PendingTaskCount)
	}
}

func TestNotes(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	user := srv.signUp(t, "ana@example.com")
	c := user.createClient(t, "Maria", "11 98765-4321")
	p := user.createProject(t, api.ProjectInput{Name: "Site", ClientID: c.ID})

	for _, text := range []string{"Kickoff", "Layout aprovado"} {
		if _, err := user.projects.AddNote(ctx, connect.NewRequest(&api.AddNoteRequest{ProjectID: p.ID, Text: text})); err != nil {
			t.Fatalf("AddNote failed: %v", err)
		}
	}

	resp, err := user.projects.ListNotes(ctx, connect.NewRequest(&api.ListNotesRequest{ProjectID: p.ID}))
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(resp.Msg.Notes) != 2 || resp.Msg.Notes[0].Text != "Layout aprovado" {
		t.Errorf("ListNotes = %+v, want newest first", resp.Msg.Notes)
	}

	_, err = user.projects.AddNote(ctx, connect.NewRequest(&api.AddNoteRequest{ProjectID: p.ID}))
	assertCode(t, err, connect.CodeInvalidArgument)
	_, err = user.projects.AddNote(ctx, connect.NewRequest(&api.AddNoteRequest{ProjectID: "nope", Text: "x"}))
	assertCode(t, err, connect.CodeNotFound)
}
