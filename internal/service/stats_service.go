package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/stats"
	"github.com/mmynk/devarc/pkg/api"
)

// UpcomingLimit caps the due-date list returned with the dashboard stats.
const UpcomingLimit = 5

// StatsService implements the StatsService RPC interface.
type StatsService struct {
	*Backend
}

// NewStatsService creates a new stats service.
func NewStatsService(b *Backend) *StatsService {
	return &StatsService{Backend: b}
}

func (s *StatsService) observe(userID string, st stats.Stats) {
	if s.metrics != nil {
		s.metrics.ObserveStats(userID, st)
	}
}

// GetStats returns the dashboard counters and the next due Active projects.
func (s *StatsService) GetStats(ctx context.Context, req *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		slog.Error("GetStats failed", "error", err)
		return nil, s.toConnect(err)
	}

	st := stats.Compute(projects)
	s.observe(userID, st)
	return connect.NewResponse(&api.GetStatsResponse{
		Stats:       st,
		UpcomingDue: stats.UpcomingDue(projects, UpcomingLimit),
	}), nil
}

// GetFinancials returns revenue against expenses.
func (s *StatsService) GetFinancials(ctx context.Context, req *connect.Request[api.GetFinancialsRequest]) (*connect.Response[api.GetFinancialsResponse], error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		slog.Error("GetFinancials failed", "error", err)
		return nil, s.toConnect(err)
	}
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("GetFinancials failed", "error", err)
		return nil, s.toConnect(err)
	}
	return connect.NewResponse(&api.GetFinancialsResponse{Financials: stats.Summarize(projects, expenses)}), nil
}

// WatchStats streams fresh counters every time the caller's projects change, starting with
// the current ones. It runs until the client goes away.
func (s *StatsService) WatchStats(ctx context.Context, req *connect.Request[api.WatchStatsRequest], stream *connect.ServerStream[api.WatchStatsResponse]) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	slog.Info("WatchStats subscription opened", "user_id", userID)

	sub := s.hub.Subscribe(userID, models.CollectionProjects)
	defer sub.Close()
	s.publish(ctx, userID, models.CollectionProjects)

	err = stats.Watch(ctx, sub.C(), func(st stats.Stats) error {
		s.observe(userID, st)
		return stream.Send(&api.WatchStatsResponse{Stats: st})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("WatchStats failed", "user_id", userID, "error", err)
		return s.toConnect(err)
	}
	slog.Info("WatchStats subscription closed", "user_id", userID)
	return nil
}
