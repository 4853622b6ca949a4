// File: utils/constants.go
package utils

// OTPAttemptPrefix is the prefix used for Redis keys counting OTP submissions.
const OTPAttemptPrefix = "otp_attempts:"

// Context keys set by the auth middleware.
const (
	CtxPrincipalID = "principalID"
	CtxRole        = "role"
)
