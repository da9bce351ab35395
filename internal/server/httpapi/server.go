// Package httpapi exposes the guest book as a JSON HTTP API: public entry
// submission, listing and search, photo upload, and token-guarded
// administration (deletion, backup, restore).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	csrf "github.com/utrack/gin-csrf"

	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"github.com/dmitrijs2005/guestbook/internal/server/services"
	"github.com/dmitrijs2005/guestbook/internal/server/storage"
)

const sessionName = "guestbook_session"

// Server runs the HTTP endpoint until its context is cancelled.
type Server struct {
	address string
	engine  *gin.Engine
	logger  logging.Logger
}

func NewServer(
	cfg *config.Config,
	l logging.Logger,
	es *services.EntryService,
	us *services.UserService,
	ms *services.MaintenanceService,
	ps storage.PhotoStorage,
) *Server {
	h := &handlers{
		cfg:         cfg,
		logger:      l.With("module", "http_server"),
		entries:     es,
		users:       us,
		maintenance: ms,
		photos:      ps,
	}
	return &Server{
		address: cfg.EndpointAddr,
		engine:  newRouter(cfg, h, routerOptions{csrf: true, throttle: true}),
		logger:  l.With("module", "http_server"),
	}
}

// routerOptions toggles the stateful middleware. Handler tests switch both
// off; dedicated middleware tests switch them back on.
type routerOptions struct {
	csrf     bool
	throttle bool
}

func newRouter(cfg *config.Config, h *handlers, opts routerOptions) *gin.Engine {
	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.MaxMultipartMemory = 8 << 20

	engine.Use(recoveryMiddleware(h.logger, cfg.Dev))
	engine.Use(cors.Default())

	if opts.throttle {
		rate := limiter.Rate{Period: cfg.RateLimitWindow, Limit: cfg.RateLimitMax}
		engine.Use(limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate)))
	}

	engine.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(cfg.SessionSecret))))

	if opts.csrf {
		engine.Use(csrf.Middleware(csrf.Options{
			Secret: cfg.SessionSecret,
			ErrorFunc: func(c *gin.Context) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token mismatch"})
			},
		}))
	}

	authRequired := authMiddleware(h.users)

	engine.GET("/health", h.health)
	engine.POST("/submit", h.submitForm)

	api := engine.Group("/api")
	{
		api.POST("/login", h.login)
		api.GET("/csrf-token", h.csrfToken)

		api.POST("/entries", h.createEntry)
		api.GET("/entries", h.listEntries)
		api.GET("/entries/search", h.searchEntries)
		api.DELETE("/entries/:id", authRequired, h.deleteEntry)
		api.POST("/entries/:id/photo", h.uploadPhoto)

		api.POST("/backup", authRequired, h.backup)
		api.POST("/restore/:filename", authRequired, h.restore)
	}

	// photos stored on disk are served from the same process
	engine.Static("/uploads", cfg.UploadDir)

	return engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
