package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/application/container"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/config"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
	"github.com/fredonbytes/backend/internal/infrastructure/supabase"
	"github.com/fredonbytes/backend/internal/infrastructure/telemetry"
	"github.com/fredonbytes/backend/internal/infrastructure/vendure"
	"github.com/fredonbytes/backend/internal/interfaces/http/handler"
	"github.com/fredonbytes/backend/internal/interfaces/http/middleware"
	"github.com/fredonbytes/backend/internal/interfaces/http/router"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// defaultMode is used when FREDONBYTES_MODE is unset
const defaultMode = storefront.ModeVendure

const maxBodyBytes = 1 << 20

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	providerCfg, err := config.LoadConfig(cfg.ProviderInput(defaultMode))
	if err != nil {
		log.Fatal("Invalid provider configuration", zap.Error(err))
	}

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("mode", providerCfg.Mode().String()),
	)

	// Tracing is a no-op provider when disabled
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	checks := make(map[string]handler.HealthChecker)
	var db *supabase.Database

	services, err := container.New(providerCfg, container.Factories{
		Supabase: func() (*storefront.Services, error) {
			sc := providerCfg.(*config.SupabaseConfig)

			opts := supabase.DefaultDatabaseOptions()
			opts.Logger = logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
			opened, err := supabase.OpenDatabase(sc.DatabaseURL, opts)
			if err != nil {
				return nil, err
			}
			db = opened
			checks["database"] = handler.HealthCheckFunc(db.Ready)
			log.Info("Database connected successfully")

			clients := supabase.NewClients(sc, supabase.WithTimeout(cfg.HTTP.ProviderTimeout))
			return supabase.NewServices(clients), nil
		},
		Vendure: func() (*storefront.Services, error) {
			vc := providerCfg.(*config.VendureConfig)
			client := vendure.NewHTTPClient(vc, vendure.WithTimeout(cfg.HTTP.ProviderTimeout))
			return vendure.NewServices(client), nil
		},
	})
	if err != nil {
		log.Fatal("Failed to build storefront services", zap.Error(err))
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	system := handler.NewSystemHandler(cfg.App.Name, version, services.Mode(), checks)
	handlers := router.NewHandlers(services, config.ClientConfigOf(providerCfg), system)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine := router.NewEngine(router.EngineConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: cfg.Telemetry.Enabled,
		MaxBodyBytes:   maxBodyBytes,
		CORS:           corsConfig,
	}, log, handlers)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
