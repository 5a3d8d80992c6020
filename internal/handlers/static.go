package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPA serves the compiled frontend bundle with client-side-routing fallback.
// Registered as the gin NoRoute handler, so it sees every request no API
// route claimed.
func (h HandlerSet) SPA(c *gin.Context) {
	rel := strings.TrimPrefix(c.Request.URL.Path, "/")

	// An unmatched path under /api is a missing route, never a page.
	if rel == "api" || strings.HasPrefix(rel, "api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	dist := h.cfg.Static.Dir
	if info, err := os.Stat(dist); err != nil || !info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{
			"ok":      false,
			"message": "Frontend not built. For local dev: run the Vite dev server in ./frontend",
		})
		return
	}

	index := filepath.Join(dist, h.cfg.Static.Index)
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		h.log.Error().Str("index", index).Msg("frontend build missing entry file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Frontend build missing " + h.cfg.Static.Index})
		return
	}

	if rel == "" {
		c.File(index)
		return
	}

	candidate, ok := resolveStatic(dist, rel)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		c.File(candidate)
		return
	}

	// Unknown path: hand it to the client-side router.
	c.File(index)
}

// resolveStatic maps a request path to a file inside the bundle directory.
// Absolute paths and any parent-directory segment are rejected before the
// filesystem is touched.
func resolveStatic(dist, rel string) (string, bool) {
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, part := range strings.Split(rel, "/") {
		if part == ".." {
			return "", false
		}
	}
	return filepath.Join(dist, filepath.FromSlash(rel)), true
}
