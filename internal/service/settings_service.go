package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/pkg/api"
)

// SettingsService implements the SettingsService RPC interface.
type SettingsService struct {
	*Backend
}

// NewSettingsService creates a new settings service.
func NewSettingsService(b *Backend) *SettingsService {
	return &SettingsService{Backend: b}
}

// GetSettings returns the caller's company settings.
func (s *SettingsService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.SettingsResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.GetSettings(ctx, userID)
	if err != nil {
		slog.Error("GetSettings failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.SettingsResponse{Settings: *settings}), nil
}

// SaveSettings replaces the caller's company settings.
func (s *SettingsService) SaveSettings(ctx context.Context, req *connect.Request[api.SaveSettingsRequest]) (*connect.Response[api.SettingsResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SaveSettings request received", "user_id", userID)

	settings := req.Msg.Settings
	if err := models.Validate(&settings); err != nil {
		return nil, s.toConnect(err)
	}

	batch := models.Batch{{Op: models.OpUpdate, Collection: models.CollectionSettings, ID: userID, Doc: &settings}}
	if err := s.commit(ctx, userID, batch); err != nil {
		slog.Error("SaveSettings failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.SettingsResponse{Settings: settings}), nil
}
