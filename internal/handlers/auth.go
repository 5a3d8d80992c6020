package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/middleware"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/security"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password required"})
		return
	}

	if h.cfg.Auth.PortalPassword == "" || h.cfg.Auth.JWTSecret == "" {
		// Log which key is missing; the client only learns that the server
		// is misconfigured.
		evt := h.log.Error()
		if h.cfg.Auth.PortalPassword == "" {
			evt = evt.Str("key", "METRICS_PORTAL_PASSWORD")
		} else {
			evt = evt.Str("key", "SHARED_JWT_SECRET")
		}
		evt.Msg("login path not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured"})
		return
	}

	if !security.VerifyPortalPassword(req.Password, h.cfg.Auth.PortalPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := security.IssueToken(h.cfg.Auth.JWTSecret, h.cfg.Auth.TokenTTL())
	if err != nil {
		h.log.Error().Err(err).Msg("token issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured"})
		return
	}

	http.SetCookie(c.Writer, h.cookie.Session(token))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h HandlerSet) Verify(c *gin.Context) {
	claimsVal, exists := c.Get(middleware.ClaimsContextKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	claims, ok := claimsVal.(*security.PortalClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication"})
		return
	}

	var exp int64
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Unix()
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":  true,
		"sub": claims.Subject,
		"exp": exp,
	})
}

// Logout clears the cookie unconditionally; there is no server-side session
// to tear down.
func (h HandlerSet) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, h.cookie.Expired())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
