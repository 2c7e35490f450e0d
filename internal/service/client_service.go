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

// ClientService implements the ClientService RPC interface.
type ClientService struct {
	*Backend
}

// NewClientService creates a new client service.
func NewClientService(b *Backend) *ClientService {
	return &ClientService{Backend: b}
}

func clientFromInput(in api.ClientInput) models.Client {
	return models.Client{
		Name:    strings.TrimSpace(in.Name),
		Company: strings.TrimSpace(in.Company),
		CPF:     strings.TrimSpace(in.CPF),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
	}
}

// CreateClient registers a new client.
func (s *ClientService) CreateClient(ctx context.Context, req *connect.Request[api.CreateClientRequest]) (*connect.Response[api.ClientResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateClient request received", "user_id", userID, "name", req.Msg.Client.Name)

	c := clientFromInput(req.Msg.Client)
	c.ID = uuid.New().String()
	c.CreatedAt = s.now().Unix()
	if err := models.Validate(&c); err != nil {
		return nil, s.toConnect(err)
	}

	batch := models.Batch{{Op: models.OpCreate, Collection: models.CollectionClients, ID: c.ID, Doc: &c}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("CreateClient failed", "error", err)
		return nil, s.toConnect(err)
	}

	slog.Info("Client created", "client_id", c.ID)
	return connect.NewResponse(&api.ClientResponse{Client: c}), nil
}

// UpdateClient replaces a client's editable fields. Projects keep the client name they were
// saved with.
func (s *ClientService) UpdateClient(ctx context.Context, req *connect.Request[api.UpdateClientRequest]) (*connect.Response[api.ClientResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateClient request received", "user_id", userID, "client_id", req.Msg.ID)

	existing, err := s.store.GetClient(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, s.toConnect(err)
	}

	c := clientFromInput(req.Msg.Client)
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := models.Validate(&c); err != nil {
		return nil, s.toConnect(err)
	}

	fields := map[string]any{
		"name":    c.Name,
		"company": c.Company,
		"cpf":     c.CPF,
		"email":   c.Email,
		"phone":   c.Phone,
	}
	batch := models.Batch{{Op: models.OpUpdate, Collection: models.CollectionClients, ID: c.ID, Fields: fields}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("UpdateClient failed", "error", err)
		return nil, s.toConnect(err)
	}

	return connect.NewResponse(&api.ClientResponse{Client: c}), nil
}

// DeleteClient removes a client. Its projects and expenses stay and keep showing the copied name.
func (s *ClientService) DeleteClient(ctx context.Context, req *connect.Request[api.DeleteClientRequest]) (*connect.Response[api.DeleteClientResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteClient request received", "user_id", userID, "client_id", req.Msg.ID)

	batch := models.Batch{{Op: models.OpDelete, Collection: models.CollectionClients, ID: req.Msg.ID}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("DeleteClient failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.DeleteClientResponse{}), nil
}

// ListClients returns all of the caller's clients.
func (s *ClientService) ListClients(ctx context.Context, req *connect.Request[api.ListClientsRequest]) (*connect.Response[api.ListClientsResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.store.ListClients(ctx, userID)
	if err != nil {
		slog.Error("ListClients failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.ListClientsResponse{Clients: clients}), nil
}
