package events

import "fmt"

// ErrorReason says which part of storing or loading an event went wrong.
type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_EVENT_DOES_NOT_EXIST            ErrorReason = "EVENT_DOES_NOT_EXIST"
	REASON_EVENT_ALREADY_EXISTS            ErrorReason = "EVENT_ALREADY_EXISTS"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_INVALID_PRICE                   ErrorReason = "INVALID_PRICE"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
)

// Error is returned by event repositories. Callers switch on Reason to pick
// the response; Message is safe to show to the client.
type Error struct {
	Reason  ErrorReason
	Message string
	// Cause is the underlying driver error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newEventError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newEventError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newEventError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewEventAlreadyExistsError(message string, cause error) *Error {
	return newEventError(REASON_EVENT_ALREADY_EXISTS, message, cause)
}

// NewEventDoesNotExistsError is returned when no event has the requested id.
func NewEventDoesNotExistsError(message string, cause error) *Error {
	return newEventError(REASON_EVENT_DOES_NOT_EXIST, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newEventError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newEventError(REASON_INVALID_CURSOR, message, cause)
}

// NewInvalidPriceError is returned for a ticket price with an unknown
// currency or a negative amount.
func NewInvalidPriceError(message string) *Error {
	return newEventError(REASON_INVALID_PRICE, message, nil)
}

// NewTimeoutError is returned when the database call ran past its deadline.
func NewTimeoutError(message string) *Error {
	return newEventError(REASON_TIMEOUT, message, nil)
}
