package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/outbound"
	"github.com/mmynk/devarc/internal/render"
	"github.com/mmynk/devarc/pkg/api"
)

// DocumentService implements the DocumentService RPC interface: contracts and billing
// messages rendered from a project.
type DocumentService struct {
	*Backend
}

// NewDocumentService creates a new document service.
func NewDocumentService(b *Backend) *DocumentService {
	return &DocumentService{Backend: b}
}

// RenderContract fills the caller's contract template for a project. A project whose client
// was deleted still renders, with the client name copied onto the project.
func (s *DocumentService) RenderContract(ctx context.Context, req *connect.Request[api.RenderContractRequest]) (*connect.Response[api.RenderContractResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RenderContract request received", "user_id", userID, "project_id", req.Msg.ProjectID)

	p, err := s.store.GetProject(ctx, userID, req.Msg.ProjectID)
	if err != nil {
		return nil, s.toConnect(err)
	}
	client, err := s.store.GetClient(ctx, userID, p.ClientID)
	if err != nil {
		if !models.IsNotFound(err) {
			return nil, s.toConnect(err)
		}
		client = nil
	}
	settings, err := s.store.GetSettings(ctx, userID)
	if err != nil {
		return nil, s.toConnect(err)
	}

	text := render.Contract(*p, client, settings, s.today())
	return connect.NewResponse(&api.RenderContractResponse{Text: text}), nil
}

// ComposeBillingMessage renders an invoice, reminder or overdue notice and the link that
// sends it to the project's client.
func (s *DocumentService) ComposeBillingMessage(ctx context.Context, req *connect.Request[api.ComposeBillingMessageRequest]) (*connect.Response[api.ComposeBillingMessageResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ComposeBillingMessage request received", "user_id", userID, "project_id", req.Msg.ProjectID, "kind", req.Msg.Kind)

	kind, err := render.ParseMessageKind(req.Msg.Kind)
	if err != nil {
		return nil, s.toConnect(err)
	}
	p, err := s.store.GetProject(ctx, userID, req.Msg.ProjectID)
	if err != nil {
		return nil, s.toConnect(err)
	}
	client, err := s.store.GetClient(ctx, userID, p.ClientID)
	if err != nil {
		return nil, s.toConnect(err)
	}

	msg, err := outbound.Compose(*client, *p, kind)
	if err != nil {
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.ComposeBillingMessageResponse{Message: msg}), nil
}
