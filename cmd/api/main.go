package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"beerstock/internal/config"
	"beerstock/internal/handler"
	"beerstock/internal/infra/cache"
	"beerstock/internal/infra/db"
	"beerstock/internal/infra/logger"
	infraRepo "beerstock/internal/infra/repository"
	"beerstock/internal/mapper"
	repo "beerstock/internal/repository"
	"beerstock/internal/server"
	"beerstock/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	//.env は無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	//Repository（GORM実装）生成
	var beerRepo repo.BeerRepository = infraRepo.NewBeerGormRepository(gormDB)
	adjRepo := infraRepo.NewStockAdjustmentGormRepository(gormDB)

	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		beerRepo = cache.NewBeerCache(beerRepo, rdb, cfg.CacheTTL, log)
		log.Info("redis cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	//Usecase生成
	beerUC := usecase.NewBeerUsecase(beerRepo, mapper.NewBeerMapper(), log)
	historyUC := usecase.NewStockHistoryUsecase(beerRepo, adjRepo)

	//Handler生成
	beerH := handler.NewBeerHandler(beerUC, historyUC, log)
	healthH := handler.NewHealthHandler(sqlDB, log)

	//Server起動
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := server.New(log, beerH, healthH)
	return server.Start(ctx, e, cfg.Addr(), log)
}
