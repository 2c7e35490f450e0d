// Package service implements the devarc.v1 RPC services on top of the core packages.
//
// Handlers load what the core needs from the store, let the core compute a write-intent batch,
// apply the batch, then publish fresh snapshots of every collection it touched.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/internal/auth"
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/feed"
	"github.com/mmynk/devarc/internal/metrics"
	"github.com/mmynk/devarc/internal/middleware"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/storage"
)

// Backend holds what every service shares.
type Backend struct {
	store   storage.Store
	hub     *feed.Hub
	metrics *metrics.Metrics
	loc     *time.Location
	now     func() time.Time

	// locks serializes read-compute-apply cycles of one user.
	locks sync.Map // user id -> *sync.Mutex
}

// NewBackend creates a backend. Dates such as "today" are taken in loc.
func NewBackend(store storage.Store, hub *feed.Hub, m *metrics.Metrics, loc *time.Location) *Backend {
	if loc == nil {
		loc = time.UTC
	}
	return &Backend{store: store, hub: hub, metrics: m, loc: loc, now: time.Now}
}

func (b *Backend) today() date.Date {
	return date.Of(b.now().In(b.loc))
}

// userID returns the authenticated caller or an Unauthenticated error.
func (b *Backend) userID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// locked runs fn while holding the user's write lock.
func (b *Backend) locked(userID string, fn func() error) error {
	mu, _ := b.locks.LoadOrStore(userID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()
	return fn()
}

// commit applies batch and publishes the collections it changed.
func (b *Backend) commit(ctx context.Context, userID string, batch models.Batch) error {
	if batch.Empty() {
		return nil
	}
	if err := b.store.Apply(ctx, userID, batch); err != nil {
		return err
	}

	touched := make(map[models.Collection]bool)
	for _, wi := range batch {
		switch wi.Collection {
		case models.CollectionProjects, models.CollectionPayments:
			touched[models.CollectionProjects] = true
		case models.CollectionClients:
			touched[models.CollectionClients] = true
		}
	}
	for _, coll := range []models.Collection{models.CollectionProjects, models.CollectionClients} {
		if touched[coll] {
			b.publish(ctx, userID, coll)
		}
	}
	return nil
}

// publish sends a full snapshot of one of the user's collections to the feed. A failed read
// only costs subscribers one update, so it is logged and dropped.
func (b *Backend) publish(ctx context.Context, userID string, coll models.Collection) {
	snap := feed.Snapshot{UserID: userID, Collection: coll}
	var err error
	switch coll {
	case models.CollectionProjects:
		snap.Projects, err = b.store.ListProjects(ctx, userID)
	case models.CollectionClients:
		snap.Clients, err = b.store.ListClients(ctx, userID)
	default:
		return
	}
	if err != nil {
		slog.Error("Failed to load snapshot", "user_id", userID, "collection", coll, "error", err)
		return
	}
	b.hub.Publish(snap)
}

// toConnect maps core and storage errors to Connect codes.
func (b *Backend) toConnect(err error) error {
	var (
		connectErr *connect.Error
		invalid    *models.ValidationError
		status     *models.InvalidStatusError
		notFound   *models.NotFoundError
	)
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.As(err, &invalid), errors.As(err, &status):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &notFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrConflict):
		if b.metrics != nil {
			b.metrics.Conflict()
		}
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
