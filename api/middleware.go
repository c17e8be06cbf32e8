package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
)

const requestIdHeader = "X-Request-Id"

func useMiddlewares(r http.Handler, middlewares ...middleware.MiddlewareFunc) http.Handler {
	s := r

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

// requestContextMiddleware gives every request an id and a logger carrying it.
func (a *API) requestContextMiddleware() middleware.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, a.logger.With(slog.String("request-id", requestId.String())))

			w.Header().Set(requestIdHeader, requestId.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *API) loggingMiddleware() middleware.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			loggingRW := newLoggingResponseWriter(w)

			// process the request
			next.ServeHTTP(loggingRW, r)

			latency := time.Since(start)
			if a.requestObserver != nil {
				a.requestObserver.ObserveRequest(r.Method, loggingRW.statusCode, latency)
			}

			a.getLoggerOrBaseLogger(r.Context()).InfoContext(r.Context(),
				"Access log",
				slog.String("latency", formatDuration(latency)),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", loggingRW.responseSize),
				slog.String("host", r.Host),
				slog.String("method", r.Method),
				slog.Int("status-code", loggingRW.statusCode),
				slog.String("path", r.URL.Path),
			)
		})
	}
}

// sessionMiddleware puts the signed in user on the context. Requests with a
// missing or invalid token continue anonymously; handlers decide whether
// that is allowed.
func (a *API) sessionMiddleware() middleware.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			payload, err := a.googleIdVerifier.Validate(ctx, token, a.config.GoogleClientID)
			if err != nil {
				a.getLoggerOrBaseLogger(ctx).Info("Ignoring invalid session token", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxWithUser(ctx, userFromPayload(payload))))
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middleware.MiddlewareFunc {
	return oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapimiddleware.Options{
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts oapimiddleware.ErrorHandlerOpts) {
			var e Error

			var requestErr *openapi3filter.RequestError
			var secErr *openapi3filter.SecurityRequirementsError
			if errors.As(err, &requestErr) {
				e = Error{
					Message: err.Error(),
					Code:    InputValidationError,
				}
			} else if errors.As(err, &secErr) {
				e = Error{
					Message: err.Error(),
					Code:    AuthError,
				}
			} else if opts.StatusCode == http.StatusNotFound {
				e = Error{
					Message: "No such route",
					Code:    NotFound,
				}
			} else {
				e = Error{
					Message: err.Error(),
					Code:    InternalError,
				}
			}
			a.writeError(w, opts.StatusCode, e)
		},
	})
}

func (a *API) corsMiddleware() middleware.MiddlewareFunc {
	var serverCors *cors.Cors

	switch a.config.Env {
	case PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins:   a.config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		})
	default:
		serverCors = cors.AllowAll()
	}

	return serverCors.Handler
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}
