// Package feed pushes full collection snapshots to subscribers.
//
// Every committed write to a user's projects or clients is followed by a Publish of the whole
// collection. Subscribers always see a complete replacement, never a diff, and a slow
// subscriber only ever misses intermediate snapshots: each channel holds the latest one.
package feed

import (
	"sync"

	"github.com/mmynk/devarc/internal/models"
)

// Snapshot is a point-in-time copy of one user's collection.
type Snapshot struct {
	UserID     string
	Collection models.Collection
	Seq        uint64
	Projects   []models.Project
	Clients    []models.Client
}

type key struct {
	userID     string
	collection models.Collection
}

// Hub fans snapshots out to subscribers. The zero value is not usable; call NewHub.
type Hub struct {
	mu   sync.Mutex
	seq  uint64
	subs map[key]map[*Subscription]struct{}
	last map[key]Snapshot
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[key]map[*Subscription]struct{}),
		last: make(map[key]Snapshot),
	}
}

// Subscription receives snapshots for one (user, collection) pair until closed.
type Subscription struct {
	hub  *Hub
	key  key
	ch   chan Snapshot
	once sync.Once
}

// C returns the channel snapshots are delivered on. It is closed by Close.
func (s *Subscription) C() <-chan Snapshot { return s.ch }

// Close stops delivery and closes the channel. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if set, ok := s.hub.subs[s.key]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.hub.subs, s.key)
			}
		}
		close(s.ch)
	})
}

// Subscribe registers for snapshots of collection. If a snapshot was already published it is
// delivered right away.
func (h *Hub) Subscribe(userID string, collection models.Collection) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	k := key{userID, collection}
	sub := &Subscription{hub: h, key: k, ch: make(chan Snapshot, 1)}
	if h.subs[k] == nil {
		h.subs[k] = make(map[*Subscription]struct{})
	}
	h.subs[k][sub] = struct{}{}

	if snap, ok := h.last[k]; ok {
		sub.ch <- snap
	}
	return sub
}

// Publish stamps snap with the next sequence number and delivers it to every subscriber of
// its (user, collection). It never blocks.
func (h *Hub) Publish(snap Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	snap.Seq = h.seq
	k := key{snap.UserID, snap.Collection}
	h.last[k] = snap

	for sub := range h.subs[k] {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- snap
	}
}

// Subscribers returns the number of open subscriptions for a user's collection.
func (h *Hub) Subscribers(userID string, collection models.Collection) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[key{userID, collection}])
}
