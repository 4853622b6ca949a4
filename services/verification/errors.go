package verification

// Reason codes returned to clients.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeAccountExists     = "ACCOUNT_EXISTS"
	CodeDeliveryFailed    = "OTP_DELIVERY_FAILED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeTooManyAttempts   = "TOO_MANY_ATTEMPTS"
	CodeOTPMismatch       = "OTP_MISMATCH"
	CodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	CodePasswordMismatch  = "PASSWORD_MISMATCH"
	CodeAccountBlocked    = "ACCOUNT_BLOCKED"
	CodeStorageFailure    = "STORAGE_UNAVAILABLE"
	CodeCredentialFailure = "CREDENTIAL_FAILURE"
)
