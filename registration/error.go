package registration

import (
	"fmt"
	"time"
)

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_REGISTRATION_ALREADY_EXISTS     ErrorReason = "REGISTRATION_ALREADY_EXISTS"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_INVALID_REGISTRATION            ErrorReason = "INVALID_REGISTRATION"

	REASON_EVENT_NOT_FOUND             ErrorReason = "EVENT_NOT_FOUND"
	REASON_UNAUTHENTICATED             ErrorReason = "UNAUTHENTICATED"
	REASON_VALIDATION_ERROR            ErrorReason = "VALIDATION_ERROR"
	REASON_GATEWAY_CONFIG_ERROR        ErrorReason = "GATEWAY_CONFIG_ERROR"
	REASON_ORDER_CREATION_FAILED       ErrorReason = "ORDER_CREATION_FAILED"
	REASON_PAYMENT_VERIFICATION_FAILED ErrorReason = "PAYMENT_VERIFICATION_FAILED"
	REASON_ORDER_MISMATCH              ErrorReason = "ORDER_MISMATCH"
	REASON_PERSISTENCE_AFTER_PAYMENT   ErrorReason = "PERSISTENCE_AFTER_PAYMENT"
	REASON_INVALID_STATE               ErrorReason = "INVALID_STATE"
	REASON_CHECKOUT_DOES_NOT_EXIST     ErrorReason = "CHECKOUT_DOES_NOT_EXIST"
	REASON_CHECKOUT_VERSION_CONFLICT   ErrorReason = "CHECKOUT_VERSION_CONFLICT"
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

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewRegistrationAlreadyExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_ALREADY_EXISTS, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_CURSOR, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}

func NewInvalidRegistrationError(message string) *Error {
	return newRegistrationError(REASON_INVALID_REGISTRATION, message, nil)
}

func NewEventNotFoundError(message string, cause error) *Error {
	return newRegistrationError(REASON_EVENT_NOT_FOUND, message, cause)
}

func NewUnauthenticatedError(message string, cause error) *Error {
	return newRegistrationError(REASON_UNAUTHENTICATED, message, cause)
}

func NewValidationError(cause error) *Error {
	return newRegistrationError(REASON_VALIDATION_ERROR, cause.Error(), cause)
}

func NewGatewayConfigError(message string) *Error {
	return newRegistrationError(REASON_GATEWAY_CONFIG_ERROR, message, nil)
}

func NewOrderCreationError(message string, cause error) *Error {
	return newRegistrationError(REASON_ORDER_CREATION_FAILED, message, cause)
}

func NewPaymentVerificationError(message string, cause error) *Error {
	return newRegistrationError(REASON_PAYMENT_VERIFICATION_FAILED, message, cause)
}

func NewOrderMismatchError(expected, got string) *Error {
	return newRegistrationError(REASON_ORDER_MISMATCH, fmt.Sprintf("Payment is for order %q but the checkout is for order %q", got, expected), nil)
}

func NewPersistenceAfterPaymentError(paymentID string, cause error) *Error {
	return newRegistrationError(REASON_PERSISTENCE_AFTER_PAYMENT, fmt.Sprintf("Payment succeeded, but final registration failed. Please contact support with your Payment ID: %s", paymentID), cause)
}

func NewInvalidStateError(action string, state State) *Error {
	return newRegistrationError(REASON_INVALID_STATE, fmt.Sprintf("Cannot %s while checkout is %s", action, state), nil)
}

func NewCheckoutDoesNotExistError(message string, cause error) *Error {
	return newRegistrationError(REASON_CHECKOUT_DOES_NOT_EXIST, message, cause)
}

func NewCheckoutExpiredError(expiredAt time.Time) *Error {
	return newRegistrationError(REASON_CHECKOUT_DOES_NOT_EXIST, fmt.Sprintf("Checkout expired at %s", expiredAt.Format(time.RFC3339)), nil)
}

func NewCheckoutVersionConflictError(message string, cause error) *Error {
	return newRegistrationError(REASON_CHECKOUT_VERSION_CONFLICT, message, cause)
}
