package models

// PendingIdentity is a registration that has not proven email control yet.
// It is never stored; it only travels inside a signed verification token.
type PendingIdentity struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// RegistrationRequest is the body of the register endpoints.
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest is the body of the verify-otp endpoints.
type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// LoginRequest is the body of the login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned once a session token has been issued.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Role  Role   `json:"role"`
}
