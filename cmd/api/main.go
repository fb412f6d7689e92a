package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JustAsh123/shopalot/internal/cache"
	"github.com/JustAsh123/shopalot/internal/config"
	"github.com/JustAsh123/shopalot/internal/db"
	"github.com/JustAsh123/shopalot/internal/httpserver"
	"github.com/JustAsh123/shopalot/internal/media"
	cartrepo "github.com/JustAsh123/shopalot/internal/repository/cart"
	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
	customerrepo "github.com/JustAsh123/shopalot/internal/repository/customer"
	orderrepo "github.com/JustAsh123/shopalot/internal/repository/order"
	productrepo "github.com/JustAsh123/shopalot/internal/repository/product"
	cartsvc "github.com/JustAsh123/shopalot/internal/service/cart"
	categorysvc "github.com/JustAsh123/shopalot/internal/service/category"
	customersvc "github.com/JustAsh123/shopalot/internal/service/customer"
	ordersvc "github.com/JustAsh123/shopalot/internal/service/order"
	productsvc "github.com/JustAsh123/shopalot/internal/service/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	var catalogCache *cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache = cache.New(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.CatalogCacheTTL, logger)
	}

	var uploader media.Uploader
	if cfg.CloudinaryCloud != "" {
		uploader, err = media.NewCloudinary(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret, cfg.CloudinaryFolder)
		if err != nil {
			logger.Fatal("init cloudinary", zap.Error(err))
		}
	}

	customerRepo := customerrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool)
	productService := productsvc.New(productRepo, catalogCache)
	categoryService := categorysvc.New(categoryrepo.NewPostgres(dbpool))
	cartLedger := cartsvc.NewLedger(cartrepo.NewPostgres(dbpool), logger)
	orderService := ordersvc.New(orderrepo.NewPostgres(dbpool), cartLedger, productRepo, customerRepo, logger)
	customerService := customersvc.New(customerRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartLedger:     cartLedger,
		CategorySvc:    categoryService,
		ProductSvc:     productService,
		OrderSvc:       orderService,
		CustomerSvc:    customerService,
		Uploader:       uploader,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
