// 目录同步入口
// 读取商品定义源文件，将其调和进商品表并输出同步报告。
// 商品定义源变更后运行一次即可，重复运行不会产生新行。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/wyfcoding/pkg/config"
	database "github.com/wyfcoding/pkg/databases"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/metrics"
	"github.com/wyfcoding/wheelmaster/internal/catalog/application"
	catalogmysql "github.com/wyfcoding/wheelmaster/internal/catalog/infrastructure/persistence/mysql"
	"github.com/wyfcoding/wheelmaster/internal/catalog/infrastructure/source"
	ordermysql "github.com/wyfcoding/wheelmaster/internal/ordering/infrastructure/persistence/mysql"
)

var (
	configPath = flag.String("config", "configs/config.toml", "config file path")
	sourcePath = flag.String("source", "configs/products.json", "product definition source file")
)

func main() {
	flag.Parse()

	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logCfg := logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := db.RawDB().DB(); err == nil {
		defer sqlDB.Close()
	}

	// 同步前确保两张表存在
	if err := db.RawDB().AutoMigrate(&catalogmysql.ProductModel{}, &ordermysql.OrderModel{}); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	defs, err := source.Load(*sourcePath)
	if err != nil {
		slog.Error("failed to load product definition source", "path", *sourcePath, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	syncSvc := application.NewCatalogSyncService(catalogmysql.NewProductRepository(db.RawDB()))
	report, err := syncSvc.Sync(ctx, defs)
	if err != nil {
		slog.Error("catalog sync aborted", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Catalog sync finished: %d inserted, %d updated, %d skipped\n",
		report.Inserted, report.Updated, report.Skipped)
	for _, recordErr := range report.Errors {
		fmt.Printf("  record %d (%s): %s\n", recordErr.Index, recordErr.Name, recordErr.Err)
	}
	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}
