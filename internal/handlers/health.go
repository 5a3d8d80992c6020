package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is deliberately unconditioned: it reports process liveness, not
// database reachability, so the portal can come up before the database does.
func (h HandlerSet) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
