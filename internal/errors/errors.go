// Package errors provides custom error types for the HerdShare API.
// All service-layer errors use AppError so that handlers can produce
// consistent responses without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Identity errors. There is no authentication in HerdShare; the acting
// user is resolved from a request header and these cover the cases where
// that resolution fails or the actor lacks the required role.
var (
	ErrUnknownUser = &AppError{Code: "UNKNOWN_USER", Message: "Acting user not recognised", StatusCode: http.StatusUnauthorized}
	ErrForbidden   = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Asset lifecycle errors.
var (
	ErrAssetNotFound    = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrNotAssetOwner    = &AppError{Code: "NOT_ASSET_OWNER", Message: "Asset belongs to a different farmer", StatusCode: http.StatusForbidden}
	ErrAssetNotOpen     = &AppError{Code: "ASSET_NOT_OPEN", Message: "Asset is not open for investment", StatusCode: http.StatusConflict}
	ErrAssetResolved    = &AppError{Code: "ASSET_RESOLVED", Message: "Asset has already been sold or marked deceased", StatusCode: http.StatusConflict}
	ErrPricingLocked    = &AppError{Code: "PRICING_LOCKED", Message: "Pricing cannot change once investors have funded the asset", StatusCode: http.StatusConflict}
	ErrInvalidSalePrice = &AppError{Code: "INVALID_SALE_PRICE", Message: "Sale price must be greater than zero", StatusCode: http.StatusBadRequest}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrInsufficientShares = &AppError{Code: "INSUFFICIENT_SHARES", Message: "Not enough shares remaining", StatusCode: http.StatusBadRequest}
	ErrInvalidShareCount  = &AppError{Code: "INVALID_SHARE_COUNT", Message: "Share count must be at least one whole share", StatusCode: http.StatusBadRequest}
)

// Farmer and review errors.
var (
	ErrFarmerNotFound   = &AppError{Code: "FARMER_NOT_FOUND", Message: "Farmer not found", StatusCode: http.StatusNotFound}
	ErrDuplicateReview  = &AppError{Code: "DUPLICATE_REVIEW", Message: "You have already reviewed this farmer for this asset", StatusCode: http.StatusConflict}
	ErrReviewNotAllowed = &AppError{Code: "REVIEW_NOT_ALLOWED", Message: "Reviews require a resolved investment in the farmer's asset", StatusCode: http.StatusForbidden}
)

// Snapshot errors.
var (
	ErrSnapshotInvalid = &AppError{Code: "SNAPSHOT_INVALID", Message: "Snapshot document is malformed", StatusCode: http.StatusBadRequest}
)
