package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// apiError is a failure already mapped to the status and body the client sees.
type apiError struct {
	status int
	body   Error
}

func newApiError(status int, code ErrorCode, message string) *apiError {
	return &apiError{
		status: status,
		body: Error{
			Code:    code,
			Message: message,
		},
	}
}

// requestErrorHandler answers requests the generated router could not bind,
// such as a malformed path id or a body that is not JSON.
func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	e := Error{
		Code:    InputValidationError,
		Message: err.Error(),
	}
	if errors.Is(err, io.EOF) {
		e = Error{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}
	}

	a.getLoggerOrBaseLogger(r.Context()).Info("Rejected request", slog.String("error", err.Error()))
	a.writeError(w, http.StatusBadRequest, e)
}

// responseErrorHandler answers when a handler returned an error or its
// response could not be written.
func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).Error("Failed to produce a response", "error", err)
	a.writeError(w, http.StatusInternalServerError, Error{
		Code:    InternalError,
		Message: "Internal server error",
	})
}

func (a *API) writeError(w http.ResponseWriter, status int, e Error) {
	jsonBody, err := json.Marshal(&e)
	if err != nil {
		a.logger.Error("failed to marshal error resp", "error", err)
		jsonBody = []byte("{\"message\": \"internal server error\", \"code\": \"InternalError\"}")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonBody)
}
