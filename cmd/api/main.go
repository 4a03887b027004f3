package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partscatalog/internal/config"
	"partscatalog/internal/handler"
	"partscatalog/internal/infra/db"
	"partscatalog/internal/infra/payment"
	infraRepo "partscatalog/internal/infra/repository"
	"partscatalog/internal/server"
	"partscatalog/internal/usecase"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("api stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	//.env（なければ環境変数だけ）
	if err := config.LoadEnvFile(".env", "../.env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	manufacturerRepo := infraRepo.NewManufacturerGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Seed {
		if err := usecase.NewSeeder(productRepo, txManager).Seed(ctx); err != nil {
			return err
		}
	}

	//Usecase生成
	idGen := &uuidGenerator{}
	productUC := usecase.NewProductUsecase(productRepo, brandRepo, idGen)
	brandUC := usecase.NewBrandUsecase(brandRepo, productRepo, txManager, idGen)
	manufacturerUC := usecase.NewManufacturerUsecase(manufacturerRepo, productRepo, txManager, idGen)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo, txManager, &realClock{})

	//Handler生成
	h := server.Handlers{
		Health:        handler.NewHealthHandler(time.Now()),
		Products:      handler.NewProductHandler(productUC),
		Brands:        handler.NewBrandHandler(brandUC),
		Manufacturers: handler.NewManufacturerHandler(manufacturerUC),
		Orders:        handler.NewOrderHandler(orderUC),
	}
	if cfg.PaymentsEnabled() {
		gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		h.Payments = handler.NewPaymentHandler(usecase.NewPaymentUsecase(orderRepo, gateway, &realClock{}))
	} else {
		logger.Warn("payments disabled: RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET not set")
	}
	if cfg.AuthEnabled() {
		issuer := usecase.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTTL)
		authUC := usecase.NewAdminAuthUsecase(cfg.AdminEmail, cfg.AdminPasswordHash, issuer, &realClock{})
		h.Auth = handler.NewAuthHandler(authUC)
	} else {
		logger.Warn("admin auth disabled: JWT_SECRET / ADMIN_EMAIL / ADMIN_PASSWORD_HASH not set")
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	logger.Info("api listening", slog.String("addr", addr))
	return server.Start(ctx, addr, server.New(cfg, logger, h))
}
