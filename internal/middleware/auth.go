package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/config"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/security"
)

// ClaimsContextKey is where Auth stores the decoded token claims for
// downstream handlers.
const ClaimsContextKey = "portal_claims"

// Auth gates protected endpoints on the session cookie. Failure responses
// stay coarse: a missing cookie, an expired token and everything else each
// get their own short reason, nothing more.
func Auth(cfg *config.AppConfig, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(security.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if cfg.Auth.JWTSecret == "" {
			// Key name goes to the log only, never to the client.
			log.Error().Str("key", "SHARED_JWT_SECRET").Msg("auth secret not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured"})
			return
		}

		claims, err := security.ParseToken(token, cfg.Auth.JWTSecret)
		if err != nil {
			if errors.Is(err, security.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication"})
			return
		}

		c.Set(ClaimsContextKey, claims)

		c.Next()
	}
}
