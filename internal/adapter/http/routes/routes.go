package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "billing_service/docs" // swag-generated
	"billing_service/internal/adapter/http/handlers"
	"billing_service/internal/infrastructure/config"
	"billing_service/internal/infrastructure/logger"
	"billing_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Run builds the application and serves it until ctx is cancelled, then
// drains in-flight requests for up to cfg.App.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

type routerDeps struct {
	serviceName    string
	log            *zap.Logger
	metrics        *metrics.Metrics
	billHandler    *handlers.BillHandler
	paymentHandler *handlers.BillPaymentHandler
}

func setupRouter(d routerDeps) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, d.serviceName, d.log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(d.metrics.Handler()))

	// Unversioned path kept for existing callers of the enriched bill.
	router.GET(PathFullBill+"/:id", d.billHandler.GetFullBill)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, d.billHandler, d.paymentHandler)

	return router
}

func setMiddlewares(router *gin.Engine, serviceName string, log *zap.Logger) {
	router.Use(otelgin.Middleware(serviceName))
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
}
