package apperr

import "github.com/wingscafe/inventory/pkg/zerror"

const (
	ValidationErrorCode     = "VALIDATION_FAILED"
	InvalidAmountCode       = "INVALID_AMOUNT"
	InsufficientStockCode   = "INSUFFICIENT_STOCK"
	ProductNotFoundCode     = "PRODUCT_NOT_FOUND"
	StockRecordNotFoundCode = "STOCK_RECORD_NOT_FOUND"
	UserNotFoundCode        = "USER_NOT_FOUND"
	EmailTakenCode          = "EMAIL_ALREADY_EXISTS"
	InvalidCredentialsCode  = "INVALID_CREDENTIALS"
	StoreUnavailableCode    = "STORE_UNAVAILABLE"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	// InvalidAmountErr rejects non-positive quantity input. Always recoverable,
	// never fatal.
	InvalidAmountErr = zerror.NewBadRequest(InvalidAmountCode, "amount must be a positive integer")

	// InsufficientStockErr rejects an operation that would drive a quantity
	// below zero.
	InsufficientStockErr = zerror.NewUnprocessableEntity(InsufficientStockCode, "insufficient stock")

	ProductNotFoundErr     = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	StockRecordNotFoundErr = zerror.NewNotFound(StockRecordNotFoundCode, "product not found")
	UserNotFoundErr        = zerror.NewNotFound(UserNotFoundCode, "user not found")

	EmailTakenErr = zerror.NewConflict(EmailTakenCode, "email already exists, please use a different email")

	// InvalidCredentialsErr carries the same message for an unknown email and
	// for a wrong password.
	InvalidCredentialsErr = zerror.NewUnauthorized(InvalidCredentialsCode, "invalid email or password")

	// StoreUnavailableErr covers failed persistence calls. Surfaced as a
	// generic notice, no retry is attempted.
	StoreUnavailableErr = zerror.NewServiceUnavailable(StoreUnavailableCode, "an error occurred, please try again")
)
