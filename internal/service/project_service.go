package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/devarc/internal/ledger"
	"github.com/mmynk/devarc/internal/lifecycle"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/tasks"
	"github.com/mmynk/devarc/pkg/api"
)

// ProjectService implements the ProjectService RPC interface: project records, the board,
// checklists and the notes timeline.
type ProjectService struct {
	*Backend
}

// NewProjectService creates a new project service.
func NewProjectService(b *Backend) *ProjectService {
	return &ProjectService{Backend: b}
}

// fromInput validates in and resolves its client. Status and type left blank keep the values
// of base. The returned project has no ID, ledger total or tasks.
func (s *ProjectService) fromInput(ctx context.Context, userID string, in api.ProjectInput, base models.Project) (models.Project, error) {
	status, typ := base.Status, base.Type
	if strings.TrimSpace(in.Status) != "" {
		var err error
		if status, err = models.ParseStatus(in.Status); err != nil {
			return models.Project{}, err
		}
	}
	if strings.TrimSpace(in.Type) != "" {
		var err error
		if typ, err = models.ParseBillingType(in.Type); err != nil {
			return models.Project{}, err
		}
	}

	p := models.Project{
		Name:        strings.TrimSpace(in.Name),
		ClientID:    strings.TrimSpace(in.ClientID),
		Status:      status,
		Type:        typ,
		Value:       in.Value,
		DueDate:     in.DueDate,
		StartDate:   in.StartDate,
		Description: strings.TrimSpace(in.Description),
	}
	if err := models.Validate(&p); err != nil {
		return models.Project{}, err
	}

	client, err := s.store.GetClient(ctx, userID, p.ClientID)
	if err != nil {
		return models.Project{}, err
	}
	p.ClientName = client.Name
	return p, nil
}

// CreateProject creates a Pending project (unless another status is given) with an empty
// ledger and checklist.
func (s *ProjectService) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.ProjectResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateProject request received", "user_id", userID, "name", req.Msg.Project.Name)

	p, err := s.fromInput(ctx, userID, req.Msg.Project, models.Project{Status: models.StatusPending, Type: models.BillingOneTime})
	if err != nil {
		return nil, s.toConnect(err)
	}
	p.ID = uuid.New().String()
	p.Tasks = []models.Task{}
	p.CreatedAt = s.now().Unix()

	batch := models.Batch{{Op: models.OpCreate, Collection: models.CollectionProjects, ID: p.ID, Doc: &p}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("CreateProject failed", "error", err)
		return nil, s.toConnect(err)
	}

	slog.Info("Project created", "project_id", p.ID)
	return connect.NewResponse(&api.ProjectResponse{Project: p}), nil
}

// UpdateProject replaces the editable fields of a project. A blank status or type keeps the
// stored one. The ledger total and the checklist are never touched here.
func (s *ProjectService) UpdateProject(ctx context.Context, req *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.ProjectResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateProject request received", "user_id", userID, "project_id", req.Msg.ID)

	var updated *models.Project
	err = s.locked(userID, func() error {
		existing, err := s.store.GetProject(ctx, userID, req.Msg.ID)
		if err != nil {
			return err
		}
		p, err := s.fromInput(ctx, userID, req.Msg.Project, *existing)
		if err != nil {
			return err
		}

		fields := map[string]any{
			models.FieldName:        p.Name,
			models.FieldClientID:    p.ClientID,
			models.FieldClientName:  p.ClientName,
			models.FieldStatus:      p.Status,
			models.FieldType:        p.Type,
			models.FieldValue:       p.Value,
			models.FieldDueDate:     p.DueDate,
			models.FieldStartDate:   p.StartDate,
			models.FieldDescription: p.Description,
		}
		if err := s.commit(ctx, userID, models.Batch{models.UpdateProject(existing.ID, fields)}); err != nil {
			return err
		}
		updated, err = s.store.GetProject(ctx, userID, existing.ID)
		return err
	})
	if err != nil {
		slog.Error("UpdateProject failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.ProjectResponse{Project: *updated}), nil
}

// DeleteProject removes a project together with its ledger and notes.
func (s *ProjectService) DeleteProject(ctx context.Context, req *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteProject request received", "user_id", userID, "project_id", req.Msg.ID)

	batch := models.Batch{{Op: models.OpDelete, Collection: models.CollectionProjects, ID: req.Msg.ID}}
	err = s.locked(userID, func() error { return s.commit(ctx, userID, batch) })
	if err != nil {
		slog.Error("DeleteProject failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.DeleteProjectResponse{}), nil
}

// GetProject returns a project with its ledger in display order.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.ProjectDetail], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.store.GetProject(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, s.toConnect(err)
	}
	payments, err := s.store.ListPayments(ctx, userID, p.ID)
	if err != nil {
		slog.Error("Failed to list payments", "project_id", p.ID, "error", err)
		return nil, s.toConnect(err)
	}

	return connect.NewResponse(&api.ProjectDetail{
		Project:         *p,
		Payments:        ledger.Sorted(payments),
		ProgressPercent: ledger.ProgressPercent(*p, payments),
		Overdue:         lifecycle.IsOverdue(*p, s.today()),
	}), nil
}

// ListProjects returns the caller's projects, optionally filtered by status or client.
func (s *ProjectService) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var status models.Status
	if req.Msg.Status != "" {
		if status, err = models.ParseStatus(req.Msg.Status); err != nil {
			return nil, s.toConnect(err)
		}
	}

	projects, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		slog.Error("ListProjects failed", "error", err)
		return nil, s.toConnect(err)
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		if req.Msg.ClientID != "" && p.ClientID != req.Msg.ClientID {
			continue
		}
		out = append(out, p)
	}
	return connect.NewResponse(&api.ListProjectsResponse{Projects: out}), nil
}

// changeStatus runs a lifecycle computation against the current project and applies its batch.
func (s *ProjectService) changeStatus(ctx context.Context, userID, projectID string, compute func(models.Project) (models.Batch, error)) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	err := s.locked(userID, func() error {
		p, err := s.store.GetProject(ctx, userID, projectID)
		if err != nil {
			return err
		}
		batch, err := compute(*p)
		if err != nil {
			return err
		}
		if err := s.commit(ctx, userID, batch); err != nil {
			return err
		}
		if !batch.Empty() {
			if p, err = s.store.GetProject(ctx, userID, projectID); err != nil {
				return err
			}
		}
		resp = api.StatusResponse{Project: *p, Changed: !batch.Empty()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// TransitionStatus sets a project's status from a form edit.
func (s *ProjectService) TransitionStatus(ctx context.Context, req *connect.Request[api.TransitionStatusRequest]) (*connect.Response[api.StatusResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("TransitionStatus request received", "user_id", userID, "project_id", req.Msg.ID, "status", req.Msg.Status)

	resp, err := s.changeStatus(ctx, userID, req.Msg.ID, func(p models.Project) (models.Batch, error) {
		return lifecycle.ApplyTransition(p, req.Msg.Status)
	})
	if err != nil {
		slog.Error("TransitionStatus failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(resp), nil
}

// MoveCard applies a board drag. Drops outside a column or inside the same column change nothing.
func (s *ProjectService) MoveCard(ctx context.Context, req *connect.Request[api.MoveCardRequest]) (*connect.Response[api.StatusResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("MoveCard request received", "user_id", userID, "project_id", req.Msg.ID)

	resp, err := s.changeStatus(ctx, userID, req.Msg.ID, func(p models.Project) (models.Batch, error) {
		return lifecycle.Move(p, req.Msg.Drag)
	})
	if err != nil {
		slog.Error("MoveCard failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(resp), nil
}

// GetBoard groups the caller's projects into board columns.
func (s *ProjectService) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		slog.Error("GetBoard failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.GetBoardResponse{Columns: lifecycle.Board(projects, s.today())}), nil
}

// editTasks runs a checklist edit and returns the resulting list.
func (s *ProjectService) editTasks(ctx context.Context, projectID string, edit func(models.Project) (models.Batch, error)) (*connect.Response[api.TasksResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var list []models.Task
	err = s.locked(userID, func() error {
		p, err := s.store.GetProject(ctx, userID, projectID)
		if err != nil {
			return err
		}
		batch, err := edit(*p)
		if err != nil {
			return err
		}
		if err := s.commit(ctx, userID, batch); err != nil {
			return err
		}
		list = batch[0].Fields[models.FieldTasks].([]models.Task)
		return nil
	})
	if err != nil {
		slog.Error("Task edit failed", "project_id", projectID, "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.TasksResponse{Tasks: list}), nil
}

// AddTask appends a task to the checklist.
func (s *ProjectService) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.TasksResponse], error) {
	return s.editTasks(ctx, req.Msg.ProjectID, func(p models.Project) (models.Batch, error) {
		return tasks.Add(p, req.Msg.Desc)
	})
}

// ToggleTask flips the done flag of one task.
func (s *ProjectService) ToggleTask(ctx context.Context, req *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error) {
	return s.editTasks(ctx, req.Msg.ProjectID, func(p models.Project) (models.Batch, error) {
		return tasks.Toggle(p, req.Msg.Index)
	})
}

// RemoveTask deletes one task from the checklist.
func (s *ProjectService) RemoveTask(ctx context.Context, req *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error) {
	return s.editTasks(ctx, req.Msg.ProjectID, func(p models.Project) (models.Batch, error) {
		return tasks.Remove(p, req.Msg.Index)
	})
}

// AddNote posts an update on the project timeline.
func (s *ProjectService) AddNote(ctx context.Context, req *connect.Request[api.AddNoteRequest]) (*connect.Response[api.AddNoteResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	n := models.Note{
		ID:        uuid.New().String(),
		ProjectID: req.Msg.ProjectID,
		Text:      strings.TrimSpace(req.Msg.Text),
		CreatedAt: s.now().Unix(),
	}
	if err := models.Validate(&n); err != nil {
		return nil, s.toConnect(err)
	}

	batch := models.Batch{{Op: models.OpCreate, Collection: models.CollectionNotes, ParentID: n.ProjectID, ID: n.ID, Doc: &n}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("AddNote failed", "project_id", n.ProjectID, "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.AddNoteResponse{Note: n}), nil
}

// ListNotes returns the project timeline, newest first.
func (s *ProjectService) ListNotes(ctx context.Context, req *connect.Request[api.ListNotesRequest]) (*connect.Response[api.ListNotesResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.store.ListNotes(ctx, userID, req.Msg.ProjectID)
	if err != nil {
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.ListNotesResponse{Notes: notes}), nil
}
