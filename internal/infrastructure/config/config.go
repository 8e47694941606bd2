package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	DiscoveryStatic = "static"
	DiscoveryNacos  = "nacos"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Store     StoreConfig
	Remote    RemoteConfig
	Discovery DiscoveryConfig
	Billing   BillingConfig
	Payment   PaymentConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

// StoreConfig selects the Bill, LineItem and payment store. DynamoDB keeps
// the table layout; sqlite and postgres go through GORM with DSN.
type StoreConfig struct {
	Backend          string
	DSN              string
	AWSRegion        string
	DynamoDBEndpoint string
	BillsTable       string
	LineItemsTable   string
	PaymentsTable    string
}

type RemoteConfig struct {
	CustomerServiceURL  string
	InventoryServiceURL string
	Timeout             time.Duration
	FanOutLimit         int
}

type DiscoveryConfig struct {
	Provider       string
	NacosAddrs     string
	NacosNamespace string
	NacosGroup     string
}

type BillingConfig struct {
	LineItemQuantity int
}

type PaymentConfig struct {
	AccessToken string
	Mock        bool
}

type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// Load reads configuration.
//
// Priority (highest to lowest):
//  1. Environment variables named after the key (remote.timeout -> REMOTE_TIMEOUT)
//  2. config.toml in . or /app
//  3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:            v.GetString("app.name"),
			Env:             v.GetString("app.env"),
			Port:            v.GetString("app.port"),
			ShutdownTimeout: v.GetDuration("app.shutdown_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Store: StoreConfig{
			Backend:          strings.ToLower(v.GetString("store.backend")),
			DSN:              v.GetString("store.dsn"),
			AWSRegion:        v.GetString("aws.region"),
			DynamoDBEndpoint: v.GetString("dynamodb.endpoint"),
			BillsTable:       v.GetString("bills.table"),
			LineItemsTable:   v.GetString("line_items.table"),
			PaymentsTable:    v.GetString("payments.table"),
		},
		Remote: RemoteConfig{
			CustomerServiceURL:  v.GetString("remote.customer_service_url"),
			InventoryServiceURL: v.GetString("remote.inventory_service_url"),
			Timeout:             v.GetDuration("remote.timeout"),
			FanOutLimit:         v.GetInt("remote.fan_out_limit"),
		},
		Discovery: DiscoveryConfig{
			Provider:       strings.ToLower(v.GetString("discovery.provider")),
			NacosAddrs:     v.GetString("nacos.addrs"),
			NacosNamespace: v.GetString("nacos.namespace"),
			NacosGroup:     v.GetString("nacos.group"),
		},
		Billing: BillingConfig{
			LineItemQuantity: v.GetInt("bill.line_item_quantity"),
		},
		Payment: PaymentConfig{
			AccessToken: v.GetString("mercadopago.access_token"),
			Mock:        isEnabled(v.GetString("payment_gateway.mock")) || isEnabled(v.GetString("mercadopago.mock")),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}
	if !v.IsSet("telemetry.sampling_ratio") {
		cfg.Telemetry.SamplingRatio = 1.0
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isEnabled accepts the flag spellings the payment mock has always honored.
func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "billing-service"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.ShutdownTimeout <= 0 {
		cfg.App.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.App.Env == "development" {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = StoreDynamoDB
	}
	if cfg.Store.Backend == StoreSQLite && cfg.Store.DSN == "" {
		cfg.Store.DSN = "billing.db"
	}
	if cfg.Store.AWSRegion == "" {
		cfg.Store.AWSRegion = "us-east-1"
	}
	if cfg.Store.BillsTable == "" {
		cfg.Store.BillsTable = "bills"
	}
	if cfg.Store.LineItemsTable == "" {
		cfg.Store.LineItemsTable = "line_items"
	}
	if cfg.Store.PaymentsTable == "" {
		cfg.Store.PaymentsTable = "payments"
	}
	if cfg.Remote.CustomerServiceURL == "" {
		cfg.Remote.CustomerServiceURL = "http://localhost:8081"
	}
	if cfg.Remote.InventoryServiceURL == "" {
		cfg.Remote.InventoryServiceURL = "http://localhost:8082"
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = 5 * time.Second
	}
	if cfg.Remote.FanOutLimit <= 0 {
		cfg.Remote.FanOutLimit = 8
	}
	if cfg.Discovery.Provider == "" {
		cfg.Discovery.Provider = DiscoveryStatic
	}
	if cfg.Discovery.NacosGroup == "" {
		cfg.Discovery.NacosGroup = "DEFAULT_GROUP"
	}
	if cfg.Billing.LineItemQuantity <= 0 {
		cfg.Billing.LineItemQuantity = 30
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case StoreDynamoDB, StoreSQLite:
	case StorePostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required when store.backend is %s", StorePostgres)
		}
	default:
		return fmt.Errorf("store.backend must be one of %s, %s, %s; got %q", StoreDynamoDB, StoreSQLite, StorePostgres, c.Store.Backend)
	}

	switch c.Discovery.Provider {
	case DiscoveryStatic:
	case DiscoveryNacos:
		if c.Discovery.NacosAddrs == "" {
			return fmt.Errorf("nacos.addrs is required when discovery.provider is %s", DiscoveryNacos)
		}
	default:
		return fmt.Errorf("discovery.provider must be %s or %s; got %q", DiscoveryStatic, DiscoveryNacos, c.Discovery.Provider)
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	return nil
}
