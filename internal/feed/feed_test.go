package feed

import (
	"testing"
	"time"

	"github.com/mmynk/devarc/internal/models"
)

func receive(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.C():
		if !ok {
			t.Fatal("subscription closed")
		}
		return snap
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return Snapshot{}
}

func TestPublish_DeliversToMatchingSubscribers(t *testing.T) {
	hub := NewHub()
	mine := hub.Subscribe("u1", models.CollectionProjects)
	defer mine.Close()
	other := hub.Subscribe("u2", models.CollectionProjects)
	defer other.Close()
	clients := hub.Subscribe("u1", models.CollectionClients)
	defer clients.Close()

	hub.Publish(Snapshot{UserID: "u1", Collection: models.CollectionProjects, Projects: []models.Project{{ID: "p1"}}})

	snap := receive(t, mine)
	if len(snap.Projects) != 1 || snap.Projects[0].ID != "p1" || snap.Seq == 0 {
		t.Errorf("snapshot = %+v", snap)
	}
	select {
	case s := <-other.C():
		t.Errorf("other user received %+v", s)
	case s := <-clients.C():
		t.Errorf("clients subscriber received %+v", s)
	default:
	}
}

func TestPublish_LatestWins(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("u1", models.CollectionProjects)
	defer sub.Close()

	for i := 0; i < 5; i++ {
		hub.Publish(Snapshot{UserID: "u1", Collection: models.CollectionProjects, Projects: make([]models.Project, i)})
	}

	snap := receive(t, sub)
	if len(snap.Projects) != 4 {
		t.Errorf("got snapshot with %d projects, want the latest (4)", len(snap.Projects))
	}
	select {
	case s := <-sub.C():
		t.Errorf("unexpected extra snapshot %+v", s)
	default:
	}
}

func TestSubscribe_ReplaysLast(t *testing.T) {
	hub := NewHub()
	hub.Publish(Snapshot{UserID: "u1", Collection: models.CollectionProjects, Projects: []models.Project{{ID: "p1"}}})

	sub := hub.Subscribe("u1", models.CollectionProjects)
	defer sub.Close()
	if snap := receive(t, sub); len(snap.Projects) != 1 {
		t.Errorf("replayed snapshot = %+v", snap)
	}
}

func TestClose(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("u1", models.CollectionProjects)
	if n := hub.Subscribers("u1", models.CollectionProjects); n != 1 {
		t.Fatalf("Subscribers = %d, want 1", n)
	}

	sub.Close()
	sub.Close()

	if n := hub.Subscribers("u1", models.CollectionProjects); n != 0 {
		t.Errorf("Subscribers = %d, want 0", n)
	}
	if _, ok := <-sub.C(); ok {
		t.Error("channel still open after Close")
	}
	hub.Publish(Snapshot{UserID: "u1", Collection: models.CollectionProjects})
}
