package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/devarc/internal/money"
	"github.com/mmynk/devarc/internal/stats"
)

func TestObserveStats(t *testing.T) {
	m := New()
	m.ObserveStats("u1", stats.Stats{
		ActiveProjectCount:      2,
		PendingTaskCount:        5,
		MonthlyRecurringRevenue: money.New(200),
		TotalReceived:           money.New(1100.5),
	})

	if got := testutil.ToFloat64(m.activeProjects.WithLabelValues("u1")); got != 2 {
		t.Errorf("active projects = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.pendingTasks.WithLabelValues("u1")); got != 5 {
		t.Errorf("pending tasks = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.recurring.WithLabelValues("u1")); got != 200 {
		t.Errorf("recurring = %v, want 200", got)
	}
	if got := testutil.ToFloat64(m.received.WithLabelValues("u1")); got != 1100.5 {
		t.Errorf("received = %v, want 1100.5", got)
	}
}

func TestObserveCodes(t *testing.T) {
	m := New()
	i := &interceptor{m: m}
	i.observe("/devarc.v1.LedgerService/AddPayment", time.Now(), nil)
	i.observe("/devarc.v1.LedgerService/AddPayment", time.Now(), connect.NewError(connect.CodeAborted, errors.New("stale")))
	i.observe("/devarc.v1.LedgerService/AddPayment", time.Now(), errors.New("boom"))
	m.Conflict()

	for code, want := range map[string]float64{"ok": 1, "aborted": 1, "unknown": 1} {
		got := testutil.ToFloat64(m.rpcRequests.WithLabelValues("/devarc.v1.LedgerService/AddPayment", code))
		if got != want {
			t.Errorf("requests{code=%s} = %v, want %v", code, got, want)
		}
	}
	if got := testutil.ToFloat64(m.conflicts); got != 1 {
		t.Errorf("conflicts = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.Conflict()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "devarc_ledger_conflicts_total 1") {
		t.Errorf("metrics output missing conflict counter:\n%s", body)
	}
}
