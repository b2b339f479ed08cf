package main

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafezinho/internal/config"
	"github.com/MikeMC777/cafezinho/internal/db"
	"github.com/MikeMC777/cafezinho/internal/docs"
	"github.com/MikeMC777/cafezinho/internal/logging"
	ord "github.com/MikeMC777/cafezinho/internal/order"
)

func main() {
	cfg := config.Load()
	flush := logging.Setup(cfg.LogMode, cfg.LogFile)
	defer flush()
	cfg.Log()

	// Orders live for the process lifetime unless a database is configured.
	var repo ord.Repository = ord.NewMemoryRepo()
	if cfg.PostgresDSN != "" {
		pool, err := db.Connect(context.Background(), cfg.PostgresDSN)
		if err != nil {
			zap.L().Fatal("postgres", zap.Error(err))
		}
		defer pool.Close()
		repo = ord.NewPGRepo(pool)
	}

	r := newRouter(ord.NewService(repo))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.OrdersInfo.InstanceName())))

	zap.L().Info("order-service listening", zap.String("addr", cfg.OrderSvcAddr))
	if err := r.Run(cfg.OrderSvcAddr); err != nil {
		zap.L().Fatal("order-service", zap.Error(err))
	}
}
