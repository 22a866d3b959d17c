package handler

import (
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/gin-gonic/gin"
)

type AnnouncementsHandler struct {
	svc service.AnnouncementService
}

func NewAnnouncementsHandler(svc service.AnnouncementService) *AnnouncementsHandler {
	return &AnnouncementsHandler{svc: svc}
}

func (h *AnnouncementsHandler) Publish(c *gin.Context) {
	var req dto.PublishAnnouncementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	resp, err := h.svc.Publish(c.Request.Context(), sess.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AnnouncementsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
