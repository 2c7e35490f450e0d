package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/pkg/api"
)

// ClientServiceName is the fully-qualified name of the ClientService service.
const ClientServiceName = "devarc.v1.ClientService"

const (
	ClientServiceCreateClientProcedure = "/devarc.v1.ClientService/CreateClient"
	ClientServiceUpdateClientProcedure = "/devarc.v1.ClientService/UpdateClient"
	ClientServiceDeleteClientProcedure = "/devarc.v1.ClientService/DeleteClient"
	ClientServiceListClientsProcedure  = "/devarc.v1.ClientService/ListClients"
)

// ClientServiceHandler is implemented by the server.
type ClientServiceHandler interface {
	CreateClient(context.Context, *connect.Request[api.CreateClientRequest]) (*connect.Response[api.ClientResponse], error)
	UpdateClient(context.Context, *connect.Request[api.UpdateClientRequest]) (*connect.Response[api.ClientResponse], error)
	DeleteClient(context.Context, *connect.Request[api.DeleteClientRequest]) (*connect.Response[api.DeleteClientResponse], error)
	ListClients(context.Context, *connect.Request[api.ListClientsRequest]) (*connect.Response[api.ListClientsResponse], error)
}

// NewClientServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewClientServiceHandler(svc ClientServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ClientServiceName + "/", routes{
		ClientServiceCreateClientProcedure: connect.NewUnaryHandler(ClientServiceCreateClientProcedure, svc.CreateClient, opts...),
		ClientServiceUpdateClientProcedure: connect.NewUnaryHandler(ClientServiceUpdateClientProcedure, svc.UpdateClient, opts...),
		ClientServiceDeleteClientProcedure: connect.NewUnaryHandler(ClientServiceDeleteClientProcedure, svc.DeleteClient, opts...),
		ClientServiceListClientsProcedure:  connect.NewUnaryHandler(ClientServiceListClientsProcedure, svc.ListClients, opts...),
	}
}

// ClientServiceClient is a client for the devarc.v1.ClientService service.
type ClientServiceClient interface {
	CreateClient(context.Context, *connect.Request[api.CreateClientRequest]) (*connect.Response[api.ClientResponse], error)
	UpdateClient(context.Context, *connect.Request[api.UpdateClientRequest]) (*connect.Response[api.ClientResponse], error)
	DeleteClient(context.Context, *connect.Request[api.DeleteClientRequest]) (*connect.Response[api.DeleteClientResponse], error)
	ListClients(context.Context, *connect.Request[api.ListClientsRequest]) (*connect.Response[api.ListClientsResponse], error)
}

// NewClientServiceClient constructs a client for the devarc.v1.ClientService service.
func NewClientServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ClientServiceClient {
	opts = clientOptions(opts)
	return &clientServiceClient{
		createClient: connect.NewClient[api.CreateClientRequest, api.ClientResponse](httpClient, procedureURL(baseURL, ClientServiceCreateClientProcedure), opts...),
		updateClient: connect.NewClient[api.UpdateClientRequest, api.ClientResponse](httpClient, procedureURL(baseURL, ClientServiceUpdateClientProcedure), opts...),
		deleteClient: connect.NewClient[api.DeleteClientRequest, api.DeleteClientResponse](httpClient, procedureURL(baseURL, ClientServiceDeleteClientProcedure), opts...),
		listClients:  connect.NewClient[api.ListClientsRequest, api.ListClientsResponse](httpClient, procedureURL(baseURL, ClientServiceListClientsProcedure), opts...),
	}
}

type clientServiceClient struct {
	createClient *connect.Client[api.CreateClientRequest, api.ClientResponse]
	updateClient *connect.Client[api.UpdateClientRequest, api.ClientResponse]
	deleteClient *connect.Client[api.DeleteClientRequest, api.DeleteClientResponse]
	listClients  *connect.Client[api.ListClientsRequest, api.ListClientsResponse]
}

func (c *clientServiceClient) CreateClient(ctx context.Context, req *connect.Request[api.CreateClientRequest]) (*connect.Response[api.ClientResponse], error) {
	return c.createClient.CallUnary(ctx, req)
}

func (c *clientServiceClient) UpdateClient(ctx context.Context, req *connect.Request[api.UpdateClientRequest]) (*connect.Response[api.ClientResponse], error) {
	return c.updateClient.CallUnary(ctx, req)
}

func (c *clientServiceClient) DeleteClient(ctx context.Context, req *connect.Request[api.DeleteClientRequest]) (*connect.Response[api.DeleteClientResponse], error) {
	return c.deleteClient.CallUnary(ctx, req)
}

func (c *clientServiceClient) ListClients(ctx context.Context, req *connect.Request[api.ListClientsRequest]) (*connect.Response[api.ListClientsResponse], error) {
	return c.listClients.CallUnary(ctx, req)
}
