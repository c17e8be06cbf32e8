package forms

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_SCHEMA_DOES_NOT_EXIST           ErrorReason = "SCHEMA_DOES_NOT_EXIST"
	REASON_VERSION_CONFLICT                ErrorReason = "VERSION_CONFLICT"
	REASON_INVALID_SCHEMA                  ErrorReason = "INVALID_SCHEMA"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
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

func newFormError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newFormError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newFormError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newFormError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewSchemaDoesNotExistError(message string, cause error) *Error {
	return newFormError(REASON_SCHEMA_DOES_NOT_EXIST, message, cause)
}

func NewVersionConflictError(message string, cause error) *Error {
	return newFormError(REASON_VERSION_CONFLICT, message, cause)
}

func NewInvalidSchemaError(message string) *Error {
	return newFormError(REASON_INVALID_SCHEMA, message, nil)
}

func NewTimeoutError(message string) *Error {
	return newFormError(REASON_TIMEOUT, message, nil)
}
