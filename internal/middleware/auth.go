package middleware

import (
	"errors"
	"net/http"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/apierror"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	SessionKey = "session"
	AdminKey   = "admin"
)

// Capability selects one flag on an Administrator record.
type Capability func(*model.Administrator) bool

var (
	CapCreateCollaborator Capability = func(a *model.Administrator) bool { return a.CanCreateCollaborator }
	CapCreateAdmin        Capability = func(a *model.Administrator) bool { return a.CanCreateAdmin }
	CapEnterHours         Capability = func(a *model.Administrator) bool { return a.CanEnterHours }
	CapChangeAccessCode   Capability = func(a *model.Administrator) bool { return a.CanChangeAccessCode }
)

// SessionAuth resolves the session cookie on every request. A missing or
// unknown token leaves the request unauthenticated; the Require* middlewares
// decide whether that is fatal. Store errors are treated as unauthenticated
// too — the caller never learns why a token did not resolve.
func SessionAuth(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.TokenFromRequest(c, cookieName)
		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("session store lookup failed")
		}
		if sess != nil {
			c.Set(SessionKey, sess)
		}
		c.Next()
	}
}

// GetSession retrieves the resolved session, or nil when unauthenticated.
func GetSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// RequireCollaborator gates collaborator-only endpoints. Pending-setup
// sessions are rejected: until an access code exists the only allowed
// operation is the setup itself.
func RequireCollaborator() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || sess.Role != session.RoleCollaborator || sess.PendingAccessCode {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
			return
		}
		c.Next()
	}
}

// RequirePendingSetup gates the access-code setup endpoint: only a pending
// collaborator session may reach it.
func RequirePendingSetup() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || sess.Role != session.RoleCollaborator || !sess.PendingAccessCode {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
			return
		}
		c.Next()
	}
}

// RequireAdmin gates admin endpoints. The admin record is re-fetched on
// every request, so a deactivated admin loses access immediately even while
// the session token is still live in Redis. The loaded record is cached on
// the context for RequireCapability.
func RequireAdmin(repo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || sess.Role != session.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
			return
		}

		admin, err := repo.FindByID(c.Request.Context(), sess.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
				return
			}
			log.Error().Err(err).Msg("admin gate: lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor."))
			return
		}
		if !admin.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
			return
		}

		c.Set(AdminKey, admin)
		c.Next()
	}
}

// RequireCapability checks one capability flag on the admin record loaded by
// RequireAdmin in the same request, so flag revocation takes effect
// immediately; the session never carries capabilities. 401 means "prove who
// you are" (no session, wrong role, deleted or deactivated admin); 403 means
// "we know who you are, you may not do this".
func RequireCapability(repo repository.AdminRepository, cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || sess.Role != session.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
			return
		}

		// RequireAdmin already fetched the record this request; fall back to
		// the store when the route is gated on capability alone.
		admin := GetAdmin(c)
		if admin == nil {
			var err error
			admin, err = repo.FindByID(c.Request.Context(), sess.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
					return
				}
				log.Error().Err(err).Msg("capability check: admin lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor."))
				return
			}
			if !admin.IsActive {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Não autorizado."))
				return
			}
			c.Set(AdminKey, admin)
		}

		if !cap(admin) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permissão insuficiente."))
			return
		}

		c.Next()
	}
}

// GetAdmin retrieves the admin loaded by RequireCapability.
func GetAdmin(c *gin.Context) *model.Administrator {
	v, ok := c.Get(AdminKey)
	if !ok {
		return nil
	}
	admin, _ := v.(*model.Administrator)
	return admin
}
