package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "devarc.v1.LedgerService"

const (
	LedgerServiceAddPaymentProcedure       = "/devarc.v1.LedgerService/AddPayment"
	LedgerServiceRemovePaymentProcedure    = "/devarc.v1.LedgerService/RemovePayment"
	LedgerServiceListPaymentsProcedure     = "/devarc.v1.LedgerService/ListPayments"
	LedgerServiceReconcileProjectProcedure = "/devarc.v1.LedgerService/ReconcileProject"
)

// LedgerServiceHandler is implemented by the server.
type LedgerServiceHandler interface {
	AddPayment(context.Context, *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error)
	RemovePayment(context.Context, *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.LedgerResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.LedgerResponse], error)
	ReconcileProject(context.Context, *connect.Request[api.ReconcileProjectRequest]) (*connect.Response[api.ReconcileProjectResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + LedgerServiceName + "/", routes{
		LedgerServiceAddPaymentProcedure:       connect.NewUnaryHandler(LedgerServiceAddPaymentProcedure, svc.AddPayment, opts...),
		LedgerServiceRemovePaymentProcedure:    connect.NewUnaryHandler(LedgerServiceRemovePaymentProcedure, svc.RemovePayment, opts...),
		LedgerServiceListPaymentsProcedure:     connect.NewUnaryHandler(LedgerServiceListPaymentsProcedure, svc.ListPayments, opts...),
		LedgerServiceReconcileProjectProcedure: connect.NewUnaryHandler(LedgerServiceReconcileProjectProcedure, svc.ReconcileProject, opts...),
	}
}

// LedgerServiceClient is a client for the devarc.v1.LedgerService service.
type LedgerServiceClient interface {
	AddPayment(context.Context, *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error)
	RemovePayment(context.Context, *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.LedgerResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.LedgerResponse], error)
	ReconcileProject(context.Context, *connect.Request[api.ReconcileProjectRequest]) (*connect.Response[api.ReconcileProjectResponse], error)
}

// NewLedgerServiceClient constructs a client for the devarc.v1.LedgerService service.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		addPayment:       connect.NewClient[api.AddPaymentRequest, api.AddPaymentResponse](httpClient, procedureURL(baseURL, LedgerServiceAddPaymentProcedure), opts...),
		removePayment:    connect.NewClient[api.RemovePaymentRequest, api.LedgerResponse](httpClient, procedureURL(baseURL, LedgerServiceRemovePaymentProcedure), opts...),
		listPayments:     connect.NewClient[api.ListPaymentsRequest, api.LedgerResponse](httpClient, procedureURL(baseURL, LedgerServiceListPaymentsProcedure), opts...),
		reconcileProject: connect.NewClient[api.ReconcileProjectRequest, api.ReconcileProjectResponse](httpClient, procedureURL(baseURL, LedgerServiceReconcileProjectProcedure), opts...),
	}
}

type ledgerServiceClient struct {
	addPayment       *connect.Client[api.AddPaymentRequest, api.AddPaymentResponse]
	removePayment    *connect.Client[api.RemovePaymentRequest, api.LedgerResponse]
	listPayments     *connect.Client[api.ListPaymentsRequest, api.LedgerResponse]
	reconcileProject *connect.Client[api.ReconcileProjectRequest, api.ReconcileProjectResponse]
}

func (c *ledgerServiceClient) AddPayment(ctx context.Context, req *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error) {
	return c.addPayment.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemovePayment(ctx context.Context, req *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.LedgerResponse], error) {
	return c.removePayment.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.LedgerResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ReconcileProject(ctx context.Context, req *connect.Request[api.ReconcileProjectRequest]) (*connect.Response[api.ReconcileProjectResponse], error) {
	return c.reconcileProject.CallUnary(ctx, req)
}
