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
	prod "github.com/MikeMC777/cafezinho/internal/product"
)

func main() {
	cfg := config.Load()
	flush := logging.Setup(cfg.LogMode, cfg.LogFile)
	defer flush()
	cfg.Log()

	var repo prod.Repository = prod.NewMemoryRepo(prod.Seed())
	if cfg.PostgresDSN != "" {
		pool, err := db.Connect(context.Background(), cfg.PostgresDSN)
		if err != nil {
			zap.L().Fatal("postgres", zap.Error(err))
		}
		defer pool.Close()
		pg := prod.NewPGRepo(pool)
		if err := pg.Seed(context.Background(), prod.Seed()); err != nil {
			zap.L().Fatal("seed catalog", zap.Error(err))
		}
		repo = pg
	}

	r := newRouter(repo)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.ProductsInfo.InstanceName())))

	zap.L().Info("product-service listening", zap.String("addr", cfg.ProductSvcAddr))
	if err := r.Run(cfg.ProductSvcAddr); err != nil {
		zap.L().Fatal("product-service", zap.Error(err))
	}
}
