package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/cache"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/config"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/middleware"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/repository"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/security"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/service"
)

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	stats  *service.StatsService
	cookie security.CookiePolicy
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, statsCache *cache.StatsCache, cfg *config.AppConfig) HandlerSet {
	statsRepo := repository.NewStatsRepository(db)
	stats := service.NewStatsService(statsRepo, statsCache, log)

	return HandlerSet{
		log:    log,
		cfg:    cfg,
		stats:  stats,
		cookie: security.NewCookiePolicy(cfg.Auth.CookieDomain, cfg.Auth.TokenTTL()),
	}
}

// Stats exposes the composed stats service, mainly for the snapshot warmer.
func (h HandlerSet) Stats() *service.StatsService {
	return h.stats
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)

	protected := router.Group("")
	protected.Use(middleware.Auth(h.cfg, h.log))

	protected.GET("/verify", h.Verify)

	protected.GET("/ebook/stats", h.EbookStats)
	protected.POST("/ebook/sync", h.EbookSync)

	protected.GET("/pledge-manager/stats", h.PledgeManagerStats)
	protected.POST("/pledge-manager/sync", h.PledgeManagerSync)
}
