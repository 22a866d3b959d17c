package handler

import (
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/gin-gonic/gin"
)

type BannersHandler struct {
	svc service.BannerService
}

func NewBannersHandler(svc service.BannerService) *BannersHandler {
	return &BannersHandler{svc: svc}
}

// PublicList feeds the login page. Always 200: a store outage degrades to an
// empty list so the page still renders.
func (h *BannersHandler) PublicList(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PublicList(c.Request.Context()))
}

func (h *BannersHandler) Create(c *gin.Context) {
	var req dto.CreateBannerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BannersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BannersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateBannerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BannersHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner removido."})
}
