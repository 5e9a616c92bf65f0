package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jwalitptl/passmeter/internal/config"
	"github.com/jwalitptl/passmeter/internal/handler/form"
	"github.com/jwalitptl/passmeter/internal/handler/health"
	"github.com/jwalitptl/passmeter/internal/handler/prometheus"
	"github.com/jwalitptl/passmeter/internal/handler/strength"
	"github.com/jwalitptl/passmeter/internal/middleware"
	"github.com/jwalitptl/passmeter/internal/router"
	strengthService "github.com/jwalitptl/passmeter/internal/service/strength"
	"github.com/jwalitptl/passmeter/pkg/logger"
	"github.com/jwalitptl/passmeter/pkg/metrics"
	"github.com/jwalitptl/passmeter/pkg/security"
)

func main() {
	configFile := flag.String("config", os.Getenv(config.EnvPrefix+"_CONFIG"), "path to a config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize logger
	level, _ := logger.ParseLevel(cfg.Log.Level)
	appLogger := logger.NewLogger(&logger.Config{
		Level:  level,
		Format: cfg.Log.Format,
	})
	appLogger.SetGlobal()
	gin.SetMode(gin.ReleaseMode)

	// Initialize metrics
	var (
		svcMetrics  *metrics.Metrics
		httpMetrics *prometheus.Handler
	)
	if cfg.Metrics.Enabled {
		registry := prom.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		svcMetrics = metrics.NewMetrics(registry, cfg.Metrics.Namespace)
		httpMetrics = prometheus.New(registry, cfg.Metrics.Namespace)
	}

	// Initialize services
	generator := security.NewGenerator(security.GeneratorConfig{
		Length:        cfg.Generator.Length,
		RequireStrong: cfg.Generator.RequireStrong,
		MaxAttempts:   cfg.Generator.MaxAttempts,
	})
	strengthSvc := strengthService.NewService(generator, svcMetrics, appLogger)

	// Initialize handlers
	healthHandler := health.NewHandler()
	strengthHandler := strength.NewHandler(strengthSvc)
	formHandler := form.NewHandler(strengthSvc)

	// Setup routers
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	routerConfig := router.RouterConfig{
		CORSConfig:   corsConfig,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		MetricsPath:  cfg.Metrics.Path,
	}
	apiRouter := router.NewAPIRouter(strengthHandler, healthHandler, httpMetrics, routerConfig)
	formRouter := router.NewFormRouter(formHandler, httpMetrics, routerConfig)

	// Create servers
	servers := []*http.Server{
		newServer(cfg.API.Addr(), apiRouter.Engine(), cfg.Server),
		newServer(cfg.Form.Addr(), formRouter.Engine(), cfg.Server),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			appLogger.Info("starting server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	// Either a signal or a failed listener stops both servers
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("shutting down servers...")
		healthHandler.Drain()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal(err, "server exited with error")
	}

	appLogger.Info("servers exited")
}

func newServer(addr string, handler http.Handler, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}
