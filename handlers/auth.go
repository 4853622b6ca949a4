package handlers

import (
	"net/http"

	"bookwise/middleware"
	"bookwise/models"
	"bookwise/services/verification"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and login for one role.
type AuthHandler struct {
	Verification verification.VerificationService
	Role         models.Role
}

func NewAuthHandler(svc verification.VerificationService, role models.Role) *AuthHandler {
	return &AuthHandler{Verification: svc, Role: role}
}

// RegisterHandler starts OTP verification and returns the OTP token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	token, err := h.Verification.RequestVerification(c.Request.Context(), models.PendingIdentity{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     h.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Verification code sent", "token": token})
}

// VerifyOTPHandler confirms the OTP carried by the bearer token.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		respondError(c, utils.AuthError(verification.CodeInvalidToken, "missing verification token"))
		return
	}
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	resp, err := h.Verification.ConfirmVerification(c.Request.Context(), h.Role, token, req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ResendOTPHandler issues a fresh OTP for the identity in the bearer token.
func (h *AuthHandler) ResendOTPHandler(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		respondError(c, utils.AuthError(verification.CodeInvalidToken, "missing verification token"))
		return
	}

	newToken, err := h.Verification.ResendVerification(c.Request.Context(), h.Role, token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Verification code sent", "token": newToken})
}

// LoginHandler exchanges email and password for a session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	resp, err := h.Verification.Login(c.Request.Context(), h.Role, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
