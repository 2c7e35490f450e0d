package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/pkg/api"
)

// StatsServiceName is the fully-qualified name of the StatsService service.
const StatsServiceName = "devarc.v1.StatsService"

const (
	StatsServiceGetStatsProcedure      = "/devarc.v1.StatsService/GetStats"
	StatsServiceGetFinancialsProcedure = "/devarc.v1.StatsService/GetFinancials"
	StatsServiceWatchStatsProcedure    = "/devarc.v1.StatsService/WatchStats"
)

// StatsServiceHandler is implemented by the server.
type StatsServiceHandler interface {
	GetStats(context.Context, *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error)
	GetFinancials(context.Context, *connect.Request[api.GetFinancialsRequest]) (*connect.Response[api.GetFinancialsResponse], error)
	WatchStats(context.Context, *connect.Request[api.WatchStatsRequest], *connect.ServerStream[api.WatchStatsResponse]) error
}

// NewStatsServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewStatsServiceHandler(svc StatsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + StatsServiceName + "/", routes{
		StatsServiceGetStatsProcedure:      connect.NewUnaryHandler(StatsServiceGetStatsProcedure, svc.GetStats, opts...),
		StatsServiceGetFinancialsProcedure: connect.NewUnaryHandler(StatsServiceGetFinancialsProcedure, svc.GetFinancials, opts...),
		StatsServiceWatchStatsProcedure:    connect.NewServerStreamHandler(StatsServiceWatchStatsProcedure, svc.WatchStats, opts...),
	}
}

// StatsServiceClient is a client for the devarc.v1.StatsService service.
type StatsServiceClient interface {
	GetStats(context.Context, *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error)
	GetFinancials(context.Context, *connect.Request[api.GetFinancialsRequest]) (*connect.Response[api.GetFinancialsResponse], error)
	WatchStats(context.Context, *connect.Request[api.WatchStatsRequest]) (*connect.ServerStreamForClient[api.WatchStatsResponse], error)
}

// NewStatsServiceClient constructs a client for the devarc.v1.StatsService service.
func NewStatsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StatsServiceClient {
	opts = clientOptions(opts)
	return &statsServiceClient{
		getStats:      connect.NewClient[api.GetStatsRequest, api.GetStatsResponse](httpClient, procedureURL(baseURL, StatsServiceGetStatsProcedure), opts...),
		getFinancials: connect.NewClient[api.GetFinancialsRequest, api.GetFinancialsResponse](httpClient, procedureURL(baseURL, StatsServiceGetFinancialsProcedure), opts...),
		watchStats:    connect.NewClient[api.WatchStatsRequest, api.WatchStatsResponse](httpClient, procedureURL(baseURL, StatsServiceWatchStatsProcedure), opts...),
	}
}

type statsServiceClient struct {
	getStats      *connect.Client[api.GetStatsRequest, api.GetStatsResponse]
	getFinancials *connect.Client[api.GetFinancialsRequest, api.GetFinancialsResponse]
	watchStats    *connect.Client[api.WatchStatsRequest, api.WatchStatsResponse]
}

func (c *statsServiceClient) GetStats(ctx context.Context, req *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error) {
	return c.getStats.CallUnary(ctx, req)
}

func (c *statsServiceClient) GetFinancials(ctx context.Context, req *connect.Request[api.GetFinancialsRequest]) (*connect.Response[api.GetFinancialsResponse], error) {
	return c.getFinancials.CallUnary(ctx, req)
}

func (c *statsServiceClient) WatchStats(ctx context.Context, req *connect.Request[api.WatchStatsRequest]) (*connect.ServerStreamForClient[api.WatchStatsResponse], error) {
	return c.watchStats.CallServerStream(ctx, req)
}
