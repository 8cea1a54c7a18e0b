// Package errors defines the application error taxonomy returned by the
// canteen services.
package errors

import (
	"net/http"

	"canteen/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Ledger errors
	ErrInsufficientFunds = NewBaseError(
		http.StatusPaymentRequired,
		"INSUFFICIENT_FUNDS",
		"account balance is below the required amount",
		"",
	)

	// Order lifecycle errors
	ErrAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ALREADY_PAID",
		"an active paid order already exists for this slot and date",
		"",
	)

	ErrPastSlot = NewBaseError(
		http.StatusBadRequest,
		"PAST_SLOT",
		"the requested day has already passed this week",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"the order or request is not in a state that permits this operation",
		"",
	)

	// Bundle errors
	ErrDuplicateBundle = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_BUNDLE",
		"an active meal bundle already exists for this account",
		"",
	)

	ErrNoActiveBundle = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_BUNDLE",
		"the meal bundle is not active",
		"",
	)

	// Not-found errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrSlotNotFound = NewBaseError(
		http.StatusNotFound,
		"SLOT_NOT_FOUND",
		"no meal is defined for this day and meal type",
		"",
	)

	ErrIngredientNotFound = NewBaseError(
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"ingredient not found",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"purchase request not found",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrBundleNotFound = NewBaseError(
		http.StatusNotFound,
		"BUNDLE_NOT_FOUND",
		"meal bundle not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrAccountArchived = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ARCHIVED",
		"the account is archived and can no longer transact",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
