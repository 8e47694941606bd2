package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "billing_service/docs"
	"billing_service/internal/adapter/http/routes"
	"billing_service/internal/infrastructure/config"
	"billing_service/internal/infrastructure/logger"
	"billing_service/internal/infrastructure/telemetry"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Billing Service API
// @version         1.0
// @description     Composes customer bills from the customer and inventory services and serves them enriched with current remote data.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Error("[config] failed to load configuration", zap.Error(err))
		return err
	}

	log := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Error("[telemetry] failed to initialize tracing", zap.Error(err))
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("[telemetry] shutdown failed", zap.Error(err))
		}
	}()

	log.Info("[app] starting",
		zap.String("env", cfg.App.Env),
		zap.String("store", cfg.Store.Backend),
		zap.String("discovery", cfg.Discovery.Provider))

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("[app] failed to startup the application", zap.Error(err))
		return err
	}
	log.Info("[app] stopped")
	return nil
}
