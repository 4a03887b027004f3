package db

import (
	"fmt"
	"log/slog"

	"partscatalog/internal/config"
	"partscatalog/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{}
	if cfg.GoEnv == "prod" {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), gcfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return gdb, nil
}

// Migrate はカタログのテーブルを作成/更新する。
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&model.Product{},
		&model.Brand{},
		&model.Manufacturer{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	slog.Info("database migrated")
	return nil
}
