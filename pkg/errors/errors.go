// Package errors defines the application error model shared by all layers.
//
// Domain packages declare sentinel errors; this package converts them into
// AppError values carrying a stable error code. HTTP status mapping lives in
// the API layer only.
package errors

import (
	"errors"
	"fmt"

	"shopapi/domain/listing"
	"shopapi/domain/order"
	"shopapi/domain/product"
	"shopapi/domain/user"
)

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	// Generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// Business codes
	CodeMalformedFilter   ErrorCode = "MALFORMED_FILTER"
	CodeProductNotFound   ErrorCode = "PRODUCT_NOT_FOUND"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	CodeOrderNotFound     ErrorCode = "ORDER_NOT_FOUND"
	CodeOrderDelivered    ErrorCode = "ORDER_ALREADY_DELIVERED"
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodePaymentFailed     ErrorCode = "PAYMENT_FAILED"
)

// AppError is the application-level error carried across layer boundaries.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromDomainError converts a domain error into an AppError.
// Unknown errors are wrapped as internal so their details never leak out.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, listing.ErrMalformedFilter):
		return Wrap(err, CodeMalformedFilter, err.Error())
	case errors.Is(err, product.ErrProductNotFound):
		return Wrap(err, CodeProductNotFound, err.Error())
	case errors.Is(err, product.ErrInsufficientStock):
		return Wrap(err, CodeInsufficientStock, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		return Wrap(err, CodeOrderNotFound, err.Error())
	case errors.Is(err, order.ErrOrderDelivered):
		return Wrap(err, CodeOrderDelivered, err.Error())
	case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrEmptyOrderItems):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return Wrap(err, CodeUserNotFound, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
