package db

import (
	"fmt"

	"beerstock/internal/config"
	"beerstock/internal/domain/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := Open(postgres.Open(cfg.DSN()), log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	//コネクションプール
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	log.Info("connected to postgres", zap.String("host", cfg.PostgresHost), zap.String("db", cfg.PostgresDB))
	return gdb, nil
}

// Open は任意の dialector で開く（テストでは sqlmock を渡す）。
// 暗黙のトランザクションは使わない。書き込みは repository 側で Transaction を張る。
func Open(dialector gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:                 NewZapGormLogger(log),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
}

// テーブル作成
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Beer{},
		&model.StockAdjustment{},
	)
}
