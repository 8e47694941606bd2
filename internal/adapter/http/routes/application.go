package routes

import (
	"context"
	"fmt"

	"billing_service/internal/adapter/http/handlers"
	"billing_service/internal/adapter/persistence/repository"
	"billing_service/internal/adapter/remote"
	"billing_service/internal/infrastructure/config"
	"billing_service/internal/infrastructure/database"
	"billing_service/internal/infrastructure/discovery"
	"billing_service/internal/infrastructure/httpclient"
	"billing_service/internal/infrastructure/metrics"
	"billing_service/internal/infrastructure/payments"
	"billing_service/internal/usecase"
	"billing_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

type stores struct {
	bills     interfaces.IBillRepository
	lineItems interfaces.ILineItemRepository
	payments  interfaces.IBillPaymentRepository
	close     func()
}

type application struct {
	router  *gin.Engine
	metrics *metrics.Metrics
	closers []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApplication(ctx context.Context, cfg *config.Config, log *zap.Logger) (*application, error) {
	st, err := buildStores(ctx, cfg.Store, log)
	if err != nil {
		return nil, err
	}
	app := &application{metrics: metrics.New()}
	if st.close != nil {
		app.closers = append(app.closers, st.close)
	}

	resolver, err := buildResolver(cfg, log)
	if err != nil {
		app.Close()
		return nil, err
	}

	client := httpclient.NewClient(otel.Tracer("billing_service/remote"), app.metrics)
	directory := remote.NewCustomerHTTPClient(client, resolver, cfg.Remote.Timeout)
	catalog := remote.NewInventoryHTTPClient(client, resolver, cfg.Remote.Timeout)

	composer := usecase.NewBillComposerUseCase(st.bills, st.lineItems, directory, catalog, usecase.BillComposerConfig{
		Quantity:    cfg.Billing.LineItemQuantity,
		FanOutLimit: cfg.Remote.FanOutLimit,
		Logger:      log,
		Metrics:     app.metrics,
	})
	enricher := usecase.NewBillEnricherUseCase(st.bills, st.lineItems, directory, catalog, usecase.BillEnricherConfig{
		FanOutLimit: cfg.Remote.FanOutLimit,
		Logger:      log,
		Metrics:     app.metrics,
	})
	query := usecase.NewBillQueryUseCase(st.bills, st.lineItems)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment.AccessToken, cfg.Payment.Mock, log)
	if err != nil {
		log.Warn("[payment][gateway] Mercado Pago gateway not configured; payments disabled", zap.Error(err))
	} else {
		gateway = mpGateway
	}
	paymentUseCase := usecase.NewBillPaymentUseCase(st.payments, st.bills, st.lineItems, directory, gateway, log)

	app.router = setupRouter(routerDeps{
		serviceName:    cfg.Telemetry.ServiceName,
		log:            log,
		metrics:        app.metrics,
		billHandler:    handlers.NewBillHandler(composer, enricher, query, log),
		paymentHandler: handlers.NewBillPaymentHandler(paymentUseCase, cfg.Payment.Mock, log),
	})
	return app, nil
}

func buildStores(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (stores, error) {
	switch cfg.Backend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
			Region:   cfg.AWSRegion,
			Endpoint: cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return stores{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("[store] using dynamodb",
			zap.String("bills_table", cfg.BillsTable), zap.String("line_items_table", cfg.LineItemsTable))
		return stores{
			bills:     repository.NewBillDynamoRepository(ddb, cfg.BillsTable),
			lineItems: repository.NewLineItemDynamoRepository(ddb, cfg.LineItemsTable),
			payments:  repository.NewBillPaymentDynamoRepository(ddb, cfg.PaymentsTable),
		}, nil

	case config.StoreSQLite, config.StorePostgres:
		db, err := database.OpenGorm(cfg.Backend, cfg.DSN, log)
		if err != nil {
			return stores{}, err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return stores{}, fmt.Errorf("migrate: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return stores{
			bills:     repository.NewBillGormRepository(db),
			lineItems: repository.NewLineItemGormRepository(db),
			payments:  repository.NewBillPaymentGormRepository(db),
			close:     closeDB,
		}, nil

	default:
		return stores{}, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}
}

func buildResolver(cfg *config.Config, log *zap.Logger) (discovery.Resolver, error) {
	if cfg.Discovery.Provider == config.DiscoveryNacos {
		return discovery.NewNacosResolver(discovery.NacosConfig{
			Addrs:       cfg.Discovery.NacosAddrs,
			NamespaceID: cfg.Discovery.NacosNamespace,
			Group:       cfg.Discovery.NacosGroup,
		}, log)
	}
	return discovery.StaticResolver{
		remote.CustomerServiceName:  cfg.Remote.CustomerServiceURL,
		remote.InventoryServiceName: cfg.Remote.InventoryServiceURL,
	}, nil
}
