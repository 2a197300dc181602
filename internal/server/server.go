// Package server exposes the HTTP API: auth, stats, and the five generation
// endpoints, behind per-IP rate limiting, CORS, and request logging.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gwang08/GenLingo/internal/auth"
	"github.com/gwang08/GenLingo/internal/config"
	"github.com/gwang08/GenLingo/internal/generate"
	"github.com/gwang08/GenLingo/internal/platform/logger"
	"github.com/gwang08/GenLingo/internal/stats"
	"github.com/gwang08/GenLingo/internal/store"
)

// Server bundles the HTTP surface with its collaborators.
type Server struct {
	cfg     config.ServerConfig
	auth    *auth.Service
	stats   *stats.Service
	gateway *generate.Gateway
	store   *store.Store
	limiter *RateLimiter
	log     *logger.Logger
}

// New creates a Server. The rate limiter is owned by the server and swept
// periodically once Run starts.
func New(cfg config.ServerConfig, authSvc *auth.Service, statsSvc *stats.Service, gateway *generate.Gateway, st *store.Store, log *logger.Logger) *Server {
	return &Server{
		cfg:     cfg,
		auth:    authSvc,
		stats:   statsSvc,
		gateway: gateway,
		store:   st,
		limiter: NewRateLimiter(cfg.RateLimitMax, cfg.Window()),
		log:     log,
	}
}

// Router builds the gin engine with all middleware and routes attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Only /api traffic pays the rate-limit toll.
	api := router.Group("/api")
	api.Use(s.limiter.Middleware())
	{
		api.POST("/auth/signup", s.handleSignup)
		api.POST("/auth/login", s.handleLogin)

		protected := api.Group("/")
		protected.Use(RequireAuth(s.auth))
		{
			protected.GET("/stats", s.handleGetStats)
			protected.POST("/stats/quiz", s.handleRecordQuiz)

			protected.POST("/generate/explanation", s.handleExplain)
			protected.POST("/generate/questions", s.handleQuestions)
			protected.GET("/generate/leaderboard", s.handleLeaderboard)
			protected.GET("/generate/daily-lesson", s.handleDailyLesson)
			protected.POST("/generate/reading", s.handleReading)
		}
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.sweepLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.log.Info("HTTP server listening", "port", s.cfg.Port)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("HTTP server stopped")
	return nil
}

// sweepLoop prunes expired rate-limit windows every five minutes.
func (s *Server) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.limiter.Sweep()
		}
	}
}
