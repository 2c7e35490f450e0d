package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/pkg/api"
)

// ExpenseService implements the ExpenseService RPC interface.
type ExpenseService struct {
	*Backend
}

// NewExpenseService creates a new expense service.
func NewExpenseService(b *Backend) *ExpenseService {
	return &ExpenseService{Backend: b}
}

// CreateExpense records money spent. An expense may be tagged with a client and a project;
// their names are copied onto the record.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	in := req.Msg.Expense
	slog.Info("CreateExpense request received", "user_id", userID, "value", in.Value)

	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return nil, s.toConnect(err)
	}
	e := models.Expense{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(in.Description),
		Value:       in.Value,
		Date:        in.Date,
		Category:    category,
		CreatedAt:   s.now().Unix(),
	}
	if e.Date.IsZero() {
		e.Date = s.today()
	}
	if err := models.Validate(&e); err != nil {
		return nil, s.toConnect(err)
	}

	if in.ClientID != "" {
		c, err := s.store.GetClient(ctx, userID, in.ClientID)
		if err != nil {
			return nil, s.toConnect(err)
		}
		e.ClientID, e.ClientName = c.ID, c.Name
	}
	if in.ProjectID != "" {
		p, err := s.store.GetProject(ctx, userID, in.ProjectID)
		if err != nil {
			return nil, s.toConnect(err)
		}
		e.ProjectID, e.ProjectName = p.ID, p.Name
	}

	batch := models.Batch{{Op: models.OpCreate, Collection: models.CollectionExpenses, ID: e.ID, Doc: &e}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.ExpenseResponse{Expense: e}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteExpense request received", "user_id", userID, "expense_id", req.Msg.ID)

	batch := models.Batch{{Op: models.OpDelete, Collection: models.CollectionExpenses, ID: req.Msg.ID}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("DeleteExpense failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpenses returns the caller's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: expenses}), nil
}
