package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrUnauthorized ErrCode = "UNAUTHORIZED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrUserExists  ErrCode = "USER_ALREADY_EXISTS"
	ErrClassInCart ErrCode = "CLASS_ALREADY_SELECTED"

	// ─── Payments ──────────────────────────────────────────────────────
	ErrPaymentGateway ErrCode = "PAYMENT_GATEWAY_ERROR"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrUnauthorized:
		return "unauthorized access"
	case ErrValidation:
		return "validation failed, please check your input"
	case ErrInvalidID:
		return "invalid id format"
	case ErrInvalidPayload:
		return "invalid request payload"
	case ErrUserExists:
		return "user already exists"
	case ErrClassInCart:
		return "class already exists"
	case ErrPaymentGateway:
		return "payment gateway request failed"
	case ErrRateLimitExceeded:
		return "too many requests, please try again later"
	case ErrInternal:
		return "internal server error"
	default:
		return "an unexpected error occurred"
	}
}
