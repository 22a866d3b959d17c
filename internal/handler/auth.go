package handler

import (
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/apierror"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/config"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthHandler owns the login, setup, introspection, and logout endpoints.
// It is the only handler that touches the session cookie.
type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

func (h *AuthHandler) secureCookies() bool { return h.cfg.Env == "production" }

func (h *AuthHandler) cookieMaxAge() int { return h.cfg.SessionTTLHours * 3600 }

// CollaboratorLogin authenticates by badge number. The response never
// distinguishes "badge not found" from any other credential problem.
func (h *AuthHandler) CollaboratorLogin(c *gin.Context) {
	var req dto.CollaboratorLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, token, err := h.svc.CollaboratorLogin(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session.SetCookie(c, h.cfg.SessionCookieName, token, h.cfg.CookieDomain, h.cookieMaxAge(), h.secureCookies())
	c.JSON(http.StatusOK, resp)
}

// SetupAccessCode completes first-time setup. Route-gated on a pending
// session; on success the cookie is swapped for the full session's token.
func (h *AuthHandler) SetupAccessCode(c *gin.Context) {
	var req dto.SetupAccessCodeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	oldToken := session.TokenFromRequest(c, h.cfg.SessionCookieName)

	newToken, err := h.svc.SetupAccessCode(c.Request.Context(), sess, oldToken, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session.SetCookie(c, h.cfg.SessionCookieName, newToken, h.cfg.CookieDomain, h.cookieMaxAge(), h.secureCookies())
	c.JSON(http.StatusOK, gin.H{"message": "Código de acesso cadastrado com sucesso."})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, token, err := h.svc.AdminLogin(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session.SetCookie(c, h.cfg.SessionCookieName, token, h.cfg.CookieDomain, h.cookieMaxAge(), h.secureCookies())
	c.JSON(http.StatusOK, resp)
}

// GetSession is the introspection endpoint the UI polls after page loads.
func (h *AuthHandler) GetSession(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Nenhuma sessão ativa."))
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		UserID: sess.UserID.String(),
		Role:   string(sess.Role),
	})
}

// Logout destroys the session and clears the cookie. Idempotent: logging out
// without a session is still a 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := session.TokenFromRequest(c, h.cfg.SessionCookieName)
	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}
	session.ClearCookie(c, h.cfg.SessionCookieName, h.cfg.CookieDomain, h.secureCookies())
	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}
