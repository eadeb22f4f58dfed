package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/taskmaster/taskmaster-server/internal/config"
	"github.com/taskmaster/taskmaster-server/internal/delivery/http/v1"
	"github.com/taskmaster/taskmaster-server/internal/metrics"
	"github.com/taskmaster/taskmaster-server/internal/services"
)

const metricsPath = "/metrics"

func NewRouter(logger zerolog.Logger, cfg *config.Config, collections Collections) *gin.Engine {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	v1Handler := v1.New(
		logger,
		services.NewTaskService(logger, collections.Tasks),
		services.NewUserService(logger, collections.Users),
		m,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(v1Handler.HandleRequestID)
	router.Use(v1Handler.HandleRequestLogger)
	router.Use(v1Handler.HandleMetrics)
	router.Use(cors.New(newCORSConfig(cfg.CORS)))

	if m != nil {
		router.GET(metricsPath, gin.WrapH(m.Handler()))
	}
	v1.RegisterRoutes(router, v1Handler)

	return router
}

func newCORSConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"X-Request-ID",
		},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	// Browsers reject credentialed responses with a wildcard origin.
	if cfg.AllowsAnyOrigin() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	return corsCfg
}

func MustListenAndServeHTTP(logger zerolog.Logger, httpCfg config.HTTPConfig, router http.Handler) {
	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// kill (no params) sends SIGTERM, kill -2 sends SIGINT.
	// SIGKILL can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}
