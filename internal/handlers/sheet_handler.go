package handlers

import (
	"fmt"
	"net/http"

	"github.com/acadegrade/result-service/internal/services"
	"github.com/acadegrade/result-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SheetHandler struct {
	BaseHandler
	sheetService  services.SheetService
	exportService services.ExportService
}

func NewSheetHandler(
	sheetService services.SheetService,
	exportService services.ExportService,
	logger utils.Logger,
) *SheetHandler {
	return &SheetHandler{
		BaseHandler:   NewBaseHandler(logger),
		sheetService:  sheetService,
		exportService: exportService,
	}
}

// CreateSheet creates a new result sheet with its generated structure
// @Summary Create sheet
// @Description Creates a result sheet and generates its year/semester tree
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheet body services.CreateSheetRequest true "Sheet data"
// @Success 201 {object} services.SheetDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sheets [post]
func (h *SheetHandler) CreateSheet(c *gin.Context) {
	var req services.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	sheet, err := h.sheetService.Create(c.Request.Context(), &req, h.extractOwnerUID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sheet)
}

// ListSheets lists the authenticated owner's sheets with their CGPAs
// @Summary List sheets
// @Tags sheets
// @Produce json
// @Success 200 {object} services.SheetListResponse
// @Failure 401 {object} ErrorResponse
// @Router /sheets [get]
func (h *SheetHandler) ListSheets(c *gin.Context) {
	sheets, err := h.sheetService.List(c.Request.Context(), h.extractOwnerUID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheets)
}

// GetSheet retrieves a sheet with its full tree and computed aggregates
// @Summary Get sheet
// @Tags sheets
// @Produce json
// @Param id path uint true "Sheet ID"
// @Success 200 {object} services.SheetDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /sheets/{id} [get]
func (h *SheetHandler) GetSheet(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	sheet, err := h.sheetService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// UpdateSheet updates sheet metadata and the population mode
// @Summary Update sheet
// @Tags sheets
// @Accept json
// @Produce json
// @Param id path uint true "Sheet ID"
// @Param sheet body services.UpdateSheetRequest true "Fields to update"
// @Success 200 {object} services.SheetDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sheets/{id} [put]
func (h *SheetHandler) UpdateSheet(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	sheet, err := h.sheetService.Update(c.Request.Context(), id, &req, h.extractOwnerUID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// DeleteSheet deletes a sheet and its whole tree
// @Summary Delete sheet
// @Tags sheets
// @Produce json
// @Param id path uint true "Sheet ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /sheets/{id} [delete]
func (h *SheetHandler) DeleteSheet(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.sheetService.Delete(c.Request.Context(), id, h.extractOwnerUID(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Sheet deleted"})
}

// ExportSheet downloads the sheet as a workbook document
// @Summary Export sheet
// @Description Renders the sheet, or one semester of it, as a downloadable workbook
// @Tags sheets
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path uint true "Sheet ID"
// @Param semester_id query uint false "Limit the export to one semester"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /sheets/{id}/export [get]
func (h *SheetHandler) ExportSheet(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	semesterID, ok := parseOptionalUintQuery(c, "semester_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting sheet", "sheet_id", id)

	result, err := h.exportService.ExportSheet(c.Request.Context(), id, semesterID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
