package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/acadegrade/result-service/internal/services"
	"github.com/acadegrade/result-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	BaseHandler
	ownerService services.OwnerService
}

func NewOwnerHandler(ownerService services.OwnerService, logger utils.Logger) *OwnerHandler {
	return &OwnerHandler{
		BaseHandler:  NewBaseHandler(logger),
		ownerService: ownerService,
	}
}

// SyncIdentity upserts the local owner record from the verified token claims
// @Summary Sync identity
// @Description Creates or refreshes the local owner record after login
// @Tags identity
// @Accept json
// @Produce json
// @Param body body services.SyncIdentityRequest false "Optional display-name override"
// @Success 200 {object} services.SyncIdentityResponse
// @Success 201 {object} services.SyncIdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /identity/sync [post]
func (h *OwnerHandler) SyncIdentity(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	// The body is optional; an absent body means no name override.
	var req services.SyncIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.ownerService.SyncIdentity(c.Request.Context(), claims, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}
