package handler

import (
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeEntriesHandler covers hour entry (capability-gated) and statement export.
type TimeEntriesHandler struct {
	svc service.TimeEntryService
}

func NewTimeEntriesHandler(svc service.TimeEntryService) *TimeEntriesHandler {
	return &TimeEntriesHandler{svc: svc}
}

// Create records an hour adjustment. The acting admin comes from the
// capability middleware, which already re-verified can_enter_hours.
func (h *TimeEntriesHandler) Create(c *gin.Context) {
	var req dto.CreateTimeEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	admin := middleware.GetAdmin(c)
	resp, err := h.svc.EnterHours(c.Request.Context(), admin.ID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TimeEntriesHandler) ListByCollaborator(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListByCollaborator(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Statement streams the collaborator's balance statement PDF.
func (h *TimeEntriesHandler) Statement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	path, err := h.svc.Statement(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=extrato.pdf")
	c.File(path)
}
