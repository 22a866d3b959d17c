package handler

import (
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/apierror"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler covers account management and the dashboard.
type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Identificador inválido."))
		return uuid.Nil, false
	}
	return id, true
}

// ── Collaborators ─────────────────────────────────────────────────────────────

func (h *AdminHandler) CreateCollaborator(c *gin.Context) {
	var req dto.CreateCollaboratorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCollaborator(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) ListCollaborators(c *gin.Context) {
	resp, err := h.svc.ListCollaborators(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateCollaborator(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCollaboratorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateCollaborator(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeactivateCollaborator(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeactivateCollaborator(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Colaborador desativado."})
}

func (h *AdminHandler) ReactivateCollaborator(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.ReactivateCollaborator(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Colaborador reativado."})
}

// ResetAccessCode clears a collaborator's access code so their next badge
// login re-enters the first-setup flow.
func (h *AdminHandler) ResetAccessCode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.ResetAccessCode(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Código de acesso redefinido."})
}

// ── Administrators ────────────────────────────────────────────────────────────

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	resp, err := h.svc.ListAdmins(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateAdmin(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeactivateAdmin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeactivateAdmin(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Administrador desativado."})
}

// ── Notifications ─────────────────────────────────────────────────────────────

func (h *AdminHandler) Notifications(c *gin.Context) {
	sess := middleware.GetSession(c)
	resp, err := h.svc.Notifications(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) MarkNotificationsRead(c *gin.Context) {
	var req dto.MarkNotificationsReadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	updated, err := h.svc.MarkNotificationsRead(c.Request.Context(), sess.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
