package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ProductSvcAddr    string
	ProductSvcBaseURL string
	OrderSvcAddr      string
	OrderSvcBaseURL   string
	PostgresDSN       string

	StorageDriver    string
	BoltPath         string
	RedisURL         string
	StorageNamespace string

	LogMode string
	LogFile string

	HTTPTimeout time.Duration
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		ProductSvcAddr:    getenv("PRODUCT_SERVICE_ADDR", ":8081"),
		ProductSvcBaseURL: getenv("PRODUCT_SERVICE_BASEURL", "http://localhost:8081"),
		OrderSvcAddr:      getenv("ORDER_SERVICE_ADDR", ":8082"),
		OrderSvcBaseURL:   getenv("ORDER_SERVICE_BASEURL", ""),
		PostgresDSN:       getenv("POSTGRES_DSN", ""),
		StorageDriver:     getenv("STORAGE_DRIVER", "bolt"),
		BoltPath:          getenv("BOLT_PATH", "cafezinho.db"),
		RedisURL:          getenv("REDIS_URL", "redis://localhost:6379/0"),
		StorageNamespace:  getenv("STORAGE_NAMESPACE", "@cafezinho"),
		LogMode:           getenv("LOG_MODE", "development"),
		LogFile:           getenv("LOG_FILE", ""),
		HTTPTimeout:       getduration("HTTP_TIMEOUT", 5*time.Second),
	}
}

// Log prints the effective addresses. Call it after the global logger is installed.
func (c Config) Log() {
	zap.L().Info("config",
		zap.String("product_service_addr", c.ProductSvcAddr),
		zap.String("product_service_baseurl", c.ProductSvcBaseURL),
		zap.String("order_service_addr", c.OrderSvcAddr),
		zap.String("order_service_baseurl", c.OrderSvcBaseURL),
		zap.String("storage_driver", c.StorageDriver),
		zap.Bool("postgres", c.PostgresDSN != ""),
	)
}
