package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/MikeMC777/cafezinho/internal/cart"
	"github.com/MikeMC777/cafezinho/internal/config"
	"github.com/MikeMC777/cafezinho/internal/kv"
	"github.com/MikeMC777/cafezinho/internal/logging"
	ord "github.com/MikeMC777/cafezinho/internal/order"
	"github.com/MikeMC777/cafezinho/internal/user"
)

func main() {
	cfg := config.Load()
	flush := logging.Setup(cfg.LogMode, cfg.LogFile)
	defer flush()

	store, err := kv.Open(cfg.StorageDriver, cfg.BoltPath, cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	ext := ord.NewExt(cfg.ProductSvcBaseURL, cfg.OrderSvcBaseURL, cfg.HTTPTimeout)

	a := &app{
		catalog: fallbackCatalog{remote: ext, local: newLocalCatalog()},
		cart:    cart.Open(ctx, store, cfg.StorageNamespace),
		users:   user.NewSession(user.NewKVRepo(store, cfg.StorageNamespace)),
		orders:  ext,
	}
	if cfg.OrderSvcBaseURL == "" {
		zap.L().Info("ORDER_SERVICE_BASEURL not set, orders are kept in this process only")
		a.orders = ord.NewService(ord.NewMemoryRepo())
	}

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		store.Close()
		flush()
		os.Exit(1)
	}
}
