package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/internal/ledger"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/pkg/api"
)

// LedgerService implements the LedgerService RPC interface. Every mutation re-reads the
// project and its ledger, lets the ledger package compute the batch and applies it while
// holding the caller's lock; the store rejects the batch if another writer got in between.
type LedgerService struct {
	*Backend
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(b *Backend) *LedgerService {
	return &LedgerService{Backend: b}
}

func (s *LedgerService) load(ctx context.Context, userID, projectID string) (*models.Project, []models.Payment, error) {
	p, err := s.store.GetProject(ctx, userID, projectID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.store.ListPayments(ctx, userID, projectID)
	if err != nil {
		return nil, nil, err
	}
	return p, payments, nil
}

// AddPayment records money received for a project.
func (s *LedgerService) AddPayment(ctx context.Context, req *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddPayment request received", "user_id", userID, "project_id", req.Msg.ProjectID, "value", req.Msg.Value)

	var resp api.AddPaymentResponse
	err = s.locked(userID, func() error {
		p, payments, err := s.load(ctx, userID, req.Msg.ProjectID)
		if err != nil {
			return err
		}
		entry := ledger.Entry{Value: req.Msg.Value, Date: req.Msg.Date, Note: req.Msg.Note}
		payment, batch, err := ledger.AddPayment(*p, payments, entry, s.now())
		if err != nil {
			return err
		}
		if err := s.commit(ctx, userID, batch); err != nil {
			return err
		}

		total := ledger.Total(append(payments, payment))
		resp = api.AddPaymentResponse{
			Payment:         payment,
			TotalPaid:       total,
			ProgressPercent: ledger.Progress(total, p.Value),
		}
		return nil
	})
	if err != nil {
		slog.Error("AddPayment failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, s.toConnect(err)
	}

	slog.Info("Payment recorded", "payment_id", resp.Payment.ID, "total_paid", resp.TotalPaid)
	return connect.NewResponse(&resp), nil
}

// RemovePayment deletes a ledger entry and returns what is left.
func (s *LedgerService) RemovePayment(ctx context.Context, req *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.LedgerResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RemovePayment request received", "user_id", userID, "project_id", req.Msg.ProjectID, "payment_id", req.Msg.PaymentID)

	var resp *api.LedgerResponse
	err = s.locked(userID, func() error {
		p, payments, err := s.load(ctx, userID, req.Msg.ProjectID)
		if err != nil {
			return err
		}
		batch, err := ledger.RemovePayment(*p, payments, req.Msg.PaymentID)
		if err != nil {
			return err
		}
		if err := s.commit(ctx, userID, batch); err != nil {
			return err
		}
		resp, err = s.ledger(ctx, userID, p.ID)
		return err
	})
	if err != nil {
		slog.Error("RemovePayment failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(resp), nil
}

// ListPayments returns a project's ledger, newest first.
func (s *LedgerService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.LedgerResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.ledger(ctx, userID, req.Msg.ProjectID)
	if err != nil {
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(resp), nil
}

func (s *LedgerService) ledger(ctx context.Context, userID, projectID string) (*api.LedgerResponse, error) {
	p, payments, err := s.load(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	return &api.LedgerResponse{
		Payments:        ledger.Sorted(payments),
		TotalPaid:       p.TotalPaid,
		ProgressPercent: ledger.ProgressPercent(*p, payments),
	}, nil
}

// ReconcileProject rewrites a project's cached total from its ledger when the two disagree.
func (s *LedgerService) ReconcileProject(ctx context.Context, req *connect.Request[api.ReconcileProjectRequest]) (*connect.Response[api.ReconcileProjectResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ReconcileProject request received", "user_id", userID, "project_id", req.Msg.ProjectID)

	var resp api.ReconcileProjectResponse
	err = s.locked(userID, func() error {
		p, payments, err := s.load(ctx, userID, req.Msg.ProjectID)
		if err != nil {
			return err
		}
		batch := ledger.Reconcile(*p, payments)
		if err := s.commit(ctx, userID, batch); err != nil {
			return err
		}
		resp = api.ReconcileProjectResponse{TotalPaid: ledger.Total(payments), Repaired: !batch.Empty()}
		return nil
	})
	if err != nil {
		slog.Error("ReconcileProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, s.toConnect(err)
	}
	if resp.Repaired {
		slog.Warn("Ledger total repaired", "project_id", req.Msg.ProjectID, "total_paid", resp.TotalPaid)
	}
	return connect.NewResponse(&resp), nil
}
