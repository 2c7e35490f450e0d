package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/pkg/api"
)

// DocumentServiceName is the fully-qualified name of the DocumentService service.
const DocumentServiceName = "devarc.v1.DocumentService"

const (
	DocumentServiceRenderContractProcedure        = "/devarc.v1.DocumentService/RenderContract"
	DocumentServiceComposeBillingMessageProcedure = "/devarc.v1.DocumentService/ComposeBillingMessage"
)

// DocumentServiceHandler is implemented by the server.
type DocumentServiceHandler interface {
	RenderContract(context.Context, *connect.Request[api.RenderContractRequest]) (*connect.Response[api.RenderContractResponse], error)
	ComposeBillingMessage(context.Context, *connect.Request[api.ComposeBillingMessageRequest]) (*connect.Response[api.ComposeBillingMessageResponse], error)
}

// NewDocumentServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewDocumentServiceHandler(svc DocumentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + DocumentServiceName + "/", routes{
		DocumentServiceRenderContractProcedure:        connect.NewUnaryHandler(DocumentServiceRenderContractProcedure, svc.RenderContract, opts...),
		DocumentServiceComposeBillingMessageProcedure: connect.NewUnaryHandler(DocumentServiceComposeBillingMessageProcedure, svc.ComposeBillingMessage, opts...),
	}
}

// DocumentServiceClient is a client for the devarc.v1.DocumentService service.
type DocumentServiceClient interface {
	RenderContract(context.Context, *connect.Request[api.RenderContractRequest]) (*connect.Response[api.RenderContractResponse], error)
	ComposeBillingMessage(context.Context, *connect.Request[api.ComposeBillingMessageRequest]) (*connect.Response[api.ComposeBillingMessageResponse], error)
}

// NewDocumentServiceClient constructs a client for the devarc.v1.DocumentService service.
func NewDocumentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DocumentServiceClient {
	opts = clientOptions(opts)
	return &documentServiceClient{
		renderContract:        connect.NewClient[api.RenderContractRequest, api.RenderContractResponse](httpClient, procedureURL(baseURL, DocumentServiceRenderContractProcedure), opts...),
		composeBillingMessage: connect.NewClient[api.ComposeBillingMessageRequest, api.ComposeBillingMessageResponse](httpClient, procedureURL(baseURL, DocumentServiceComposeBillingMessageProcedure), opts...),
	}
}

type documentServiceClient struct {
	renderContract        *connect.Client[api.RenderContractRequest, api.RenderContractResponse]
	composeBillingMessage *connect.Client[api.ComposeBillingMessageRequest, api.ComposeBillingMessageResponse]
}

func (c *documentServiceClient) RenderContract(ctx context.Context, req *connect.Request[api.RenderContractRequest]) (*connect.Response[api.RenderContractResponse], error) {
	return c.renderContract.CallUnary(ctx, req)
}

func (c *documentServiceClient) ComposeBillingMessage(ctx context.Context, req *connect.Request[api.ComposeBillingMessageRequest]) (*connect.Response[api.ComposeBillingMessageResponse], error) {
	return c.composeBillingMessage.CallUnary(ctx, req)
}
