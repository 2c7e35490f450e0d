package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/pkg/api"
)

// SettingsServiceName is the fully-qualified name of the SettingsService service.
const SettingsServiceName = "devarc.v1.SettingsService"

const (
	SettingsServiceGetSettingsProcedure  = "/devarc.v1.SettingsService/GetSettings"
	SettingsServiceSaveSettingsProcedure = "/devarc.v1.SettingsService/SaveSettings"
)

// SettingsServiceHandler is implemented by the server.
type SettingsServiceHandler interface {
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.SettingsResponse], error)
	SaveSettings(context.Context, *connect.Request[api.SaveSettingsRequest]) (*connect.Response[api.SettingsResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SettingsServiceName + "/", routes{
		SettingsServiceGetSettingsProcedure:  connect.NewUnaryHandler(SettingsServiceGetSettingsProcedure, svc.GetSettings, opts...),
		SettingsServiceSaveSettingsProcedure: connect.NewUnaryHandler(SettingsServiceSaveSettingsProcedure, svc.SaveSettings, opts...),
	}
}

// SettingsServiceClient is a client for the devarc.v1.SettingsService service.
type SettingsServiceClient interface {
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.SettingsResponse], error)
	SaveSettings(context.Context, *connect.Request[api.SaveSettingsRequest]) (*connect.Response[api.SettingsResponse], error)
}

// NewSettingsServiceClient constructs a client for the devarc.v1.SettingsService service.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	opts = clientOptions(opts)
	return &settingsServiceClient{
		getSettings:  connect.NewClient[api.GetSettingsRequest, api.SettingsResponse](httpClient, procedureURL(baseURL, SettingsServiceGetSettingsProcedure), opts...),
		saveSettings: connect.NewClient[api.SaveSettingsRequest, api.SettingsResponse](httpClient, procedureURL(baseURL, SettingsServiceSaveSettingsProcedure), opts...),
	}
}

type settingsServiceClient struct {
	getSettings  *connect.Client[api.GetSettingsRequest, api.SettingsResponse]
	saveSettings *connect.Client[api.SaveSettingsRequest, api.SettingsResponse]
}

func (c *settingsServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.SettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) SaveSettings(ctx context.Context, req *connect.Request[api.SaveSettingsRequest]) (*connect.Response[api.SettingsResponse], error) {
	return c.saveSettings.CallUnary(ctx, req)
}
