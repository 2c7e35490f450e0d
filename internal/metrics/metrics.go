// Package metrics exposes Prometheus metrics for RPC traffic and for the portfolio figures
// the stats watcher computes.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/devarc/internal/stats"
)

// Metrics owns a registry and every collector registered on it.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	conflicts   prometheus.Counter

	activeProjects *prometheus.GaugeVec
	pendingTasks   *prometheus.GaugeVec
	recurring      *prometheus.GaugeVec
	received       *prometheus.GaugeVec
}

// New creates the collectors on a fresh registry, together with the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "devarc",
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "devarc",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "devarc",
			Name:      "ledger_conflicts_total",
			Help:      "Ledger batches rejected because they were computed from a stale ledger.",
		}),
		activeProjects: portfolioGauge("active_projects", "Projects in the Active status."),
		pendingTasks:   portfolioGauge("pending_tasks", "Tasks not done yet across all projects."),
		recurring:      portfolioGauge("monthly_recurring_revenue", "Value of active recurring-monthly projects, in BRL."),
		received:       portfolioGauge("received_total", "Sum of totalPaid over all projects, in BRL."),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests, m.rpcDuration, m.conflicts,
		m.activeProjects, m.pendingTasks, m.recurring, m.received,
	)
	return m
}

func portfolioGauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "devarc",
		Subsystem: "portfolio",
		Name:      name,
		Help:      help,
	}, []string{"user_id"})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveStats records the latest portfolio figures of a user.
func (m *Metrics) ObserveStats(userID string, s stats.Stats) {
	m.activeProjects.WithLabelValues(userID).Set(float64(s.ActiveProjectCount))
	m.pendingTasks.WithLabelValues(userID).Set(float64(s.PendingTaskCount))
	m.recurring.WithLabelValues(userID).Set(s.MonthlyRecurringRevenue.Float64())
	m.received.WithLabelValues(userID).Set(s.TotalReceived.Float64())
}

// Conflict counts one rejected ledger batch.
func (m *Metrics) Conflict() { m.conflicts.Inc() }

// Interceptor returns a Connect interceptor counting and timing every handled RPC.
func (m *Metrics) Interceptor() connect.Interceptor {
	return &interceptor{m: m}
}

type interceptor struct{ m *Metrics }

func (i *interceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		start := time.Now()
		resp, err := next(ctx, req)
		i.observe(req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (i *interceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *interceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		i.observe(conn.Spec().Procedure, start, err)
		return err
	}
}

func (i *interceptor) observe(procedure string, start time.Time, err error) {
	i.m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
	i.m.rpcRequests.WithLabelValues(procedure, codeOf(err)).Inc()
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
