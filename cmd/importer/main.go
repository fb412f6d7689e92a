package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/JustAsh123/shopalot/internal/config"
	"github.com/JustAsh123/shopalot/internal/db"
	"github.com/JustAsh123/shopalot/internal/importer"
	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
	productrepo "github.com/JustAsh123/shopalot/internal/repository/product"
)

func main() {
	_ = godotenv.Load()
	path := flag.String("file", "catalog.csv", "path to the catalog CSV export")
	flag.Parse()

	cfg := config.FromEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatal("open catalog file", zap.Error(err))
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	imp := importer.NewCSVImporter(f, productrepo.NewPostgres(pool), categoryrepo.NewPostgres(pool))
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import catalog", zap.Int("imported", count), zap.Error(err))
	}

	logger.Info("catalog imported", zap.Int("products", count))
}
