package handlers

import (
	"net/http"

	"bookwise/services/provider"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler lists bookable providers.
type DirectoryHandler struct {
	Directory provider.DirectoryService
}

func NewDirectoryHandler(svc provider.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Directory: svc}
}

func (h *DirectoryHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Directory.ListApprovedProviders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
