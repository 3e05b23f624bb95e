package errors

import (
	"net/http"

	"storefront/internal/errors"
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

// WithDetails adds detailed error information
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
	// Cart-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"購物車是空的",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"商品數量無效",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusConflict,
		"PRODUCT_UNAVAILABLE",
		"商品目前缺貨",
		"",
	)

	// Checkout-related errors
	ErrCheckoutValidation = NewBaseError(
		http.StatusBadRequest,
		"CHECKOUT_VALIDATION_FAILED",
		"結帳資料驗證失敗",
		"",
	)

	ErrPaymentMethodInvalid = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_INVALID",
		"不支援的付款方式",
		"",
	)

	ErrOrderSubmitFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SUBMIT_FAILED",
		"訂單送出失敗，請稍後再試",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"請先登入",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"無效或已過期的權杖",
		"",
	)

	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"驗證碼錯誤或已過期",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// StoreExecuteError represents a session-store execution error, implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a session-store related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "資料存取失敗"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}

// BackendRequestError represents a failure talking to the remote commerce
// backend, implementing the AppError interface. The backend's own message is
// preserved so the caller sees why the request was refused.
type BackendRequestError struct {
	err        error
	statusCode int
	message    string
}

// NewBackendRequestError creates a backend transport error. statusCode is the
// upstream HTTP status when one was received, zero otherwise.
func NewBackendRequestError(err error, statusCode int, message string) AppError {
	return &BackendRequestError{
		err:        err,
		statusCode: statusCode,
		message:    message,
	}
}

// Error implements the error interface
func (e *BackendRequestError) Error() string {
	if e.err != nil {
		return errors.Wrap(e.err, "backend request failed").Error()
	}

	return "backend request failed: " + e.message
}

// Unwrap exposes the underlying transport error.
func (e *BackendRequestError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *BackendRequestError) HTTPCode() int {
	// Client-side faults reported by the backend pass through as-is.
	if e.statusCode >= http.StatusBadRequest && e.statusCode < http.StatusInternalServerError {
		return e.statusCode
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendRequestError) ErrorCode() string {
	return "BACKEND_REQUEST_FAILED"
}

// Message returns the user-friendly error message
func (e *BackendRequestError) Message() string {
	if e.message != "" {
		return e.message
	}

	return "無法連線到商店服務"
}

// Details returns detailed error information
func (e *BackendRequestError) Details() string {
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}
