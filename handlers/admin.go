package handlers

import (
	"net/http"

	"bookwise/models"
	"bookwise/services/admin"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Admin admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Admin: svc}
}

type approvalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type blockRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// SetApprovalHandler vets or un-vets a provider.
func (h *AdminHandler) SetApprovalHandler(c *gin.Context) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	providerID := c.Param("id")
	if err := h.Admin.SetProviderApproval(c.Request.Context(), providerID, *req.Approved); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": providerID, "isApproved": *req.Approved})
}

// SetBlockedHandler blocks or unblocks a user or provider.
func (h *AdminHandler) SetBlockedHandler(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	role := roleFromPath(c.Param("role"))
	if !role.Valid() {
		respondError(c, utils.ValidationError("INVALID_INPUT", "role must be users or providers"))
		return
	}
	id := c.Param("id")
	if err := h.Admin.SetBlocked(c.Request.Context(), role, id, *req.Blocked); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "isBlocked": *req.Blocked})
}

// roleFromPath accepts "users"/"providers" as well as the singular forms.
func roleFromPath(segment string) models.Role {
	switch segment {
	case "users", "user":
		return models.RoleUser
	case "providers", "provider":
		return models.RoleProvider
	default:
		return models.Role(segment)
	}
}
