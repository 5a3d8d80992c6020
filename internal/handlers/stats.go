package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/models"
)

// daysParam reads the optional ?days=N query. Range clamping happens in the
// service; only non-integer input is rejected here.
func daysParam(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return models.DefaultWindowDays, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
		return 0, false
	}
	return days, true
}

func (h HandlerSet) EbookStats(c *gin.Context) {
	h.ebookStats(c, false)
}

// EbookSync recomputes the snapshot instead of serving a cached one. No
// external system is contacted; "sync" is historical naming kept for the
// frontend's benefit.
func (h HandlerSet) EbookSync(c *gin.Context) {
	h.ebookStats(c, true)
}

func (h HandlerSet) ebookStats(c *gin.Context, refresh bool) {
	days, ok := daysParam(c)
	if !ok {
		return
	}

	payload, err := h.stats.EbookStats(c.Request.Context(), days, refresh)
	if err != nil {
		h.log.Error().Err(err).Int("days", days).Msg("ebook stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h HandlerSet) PledgeManagerStats(c *gin.Context) {
	h.pledgeManagerStats(c, false)
}

func (h HandlerSet) PledgeManagerSync(c *gin.Context) {
	h.pledgeManagerStats(c, true)
}

func (h HandlerSet) pledgeManagerStats(c *gin.Context, refresh bool) {
	payload, err := h.stats.PledgeManagerStats(c.Request.Context(), refresh)
	if err != nil {
		h.log.Error().Err(err).Msg("pledge manager stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, payload)
}
