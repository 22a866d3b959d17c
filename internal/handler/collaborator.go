package handler

import (
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/gin-gonic/gin"
)

// CollaboratorHandler serves the collaborator-facing endpoints. All routes
// are gated on a full collaborator session; the acting principal is always
// taken from the session, never from the request body.
type CollaboratorHandler struct {
	svc service.CollaboratorService
}

func NewCollaboratorHandler(svc service.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{svc: svc}
}

func (h *CollaboratorHandler) Profile(c *gin.Context) {
	sess := middleware.GetSession(c)
	resp, err := h.svc.Profile(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollaboratorHandler) History(c *gin.Context) {
	sess := middleware.GetSession(c)
	resp, err := h.svc.History(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollaboratorHandler) SubmitLeave(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	resp, err := h.svc.SubmitLeave(c.Request.Context(), sess.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Solicitação de folga enviada com sucesso.", "request": resp})
}

func (h *CollaboratorHandler) MyLeaveRequests(c *gin.Context) {
	sess := middleware.GetSession(c)
	resp, err := h.svc.MyLeaveRequests(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollaboratorHandler) Notifications(c *gin.Context) {
	sess := middleware.GetSession(c)
	resp, err := h.svc.Notifications(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollaboratorHandler) MarkNotificationsRead(c *gin.Context) {
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
