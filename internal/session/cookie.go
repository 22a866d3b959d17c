package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie transport for the opaque session token. HTTP-only always; Secure
// outside development so local HTTP testing still works.

func SetCookie(c *gin.Context, name, token, domain string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, maxAge, "/", domain, secure, true)
}

func ClearCookie(c *gin.Context, name, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", domain, secure, true)
}

// TokenFromRequest reads the session cookie; returns "" when absent.
func TokenFromRequest(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}
