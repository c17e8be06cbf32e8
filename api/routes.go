package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var openapiDocument []byte

// GetSwagger loads the embedded OpenAPI document requests are validated against.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}

	err = swagger.Validate(context.Background())
	if err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}

	return swagger, nil
}

// Handler returns the API with its whole middleware chain.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	routes := HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       http.NewServeMux(),
		ErrorHandlerFunc: a.requestErrorHandler,
	})

	return useMiddlewares(
		routes,
		a.openapiValidateMiddleware(swagger),
		a.sessionMiddleware(),
		a.loggingMiddleware(),
		a.requestContextMiddleware(),
		a.corsMiddleware(),
	), nil
}
