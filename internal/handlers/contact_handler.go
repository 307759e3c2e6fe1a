package handlers

import (
	"net/http"

	"github.com/acadegrade/result-service/internal/services"
	"github.com/acadegrade/result-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	BaseHandler
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService, logger utils.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    NewBaseHandler(logger),
		contactService: contactService,
	}
}

// SubmitContact accepts a contact message from the public form
// @Summary Submit contact message
// @Description Stores the message and forwards it by email; delivery failure degrades the reported status
// @Tags contact
// @Accept json
// @Produce json
// @Param message body services.ContactRequest true "Contact message"
// @Success 200 {object} services.ContactResult
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
