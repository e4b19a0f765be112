// 订单报表入口
// 输出全部客户订单（最新在前），含所购商品、单价与合计金额，供运营查看。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wyfcoding/pkg/config"
	database "github.com/wyfcoding/pkg/databases"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/metrics"
	"github.com/wyfcoding/wheelmaster/internal/ordering/application"
	ordermysql "github.com/wyfcoding/wheelmaster/internal/ordering/infrastructure/persistence/mysql"
)

var configPath = flag.String("config", "configs/config.toml", "config file path")

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

	querySvc := application.NewOrderQueryService(ordermysql.NewOrderRepository(db.RawDB()))
	orders, err := querySvc.ListOrders(context.Background())
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Total orders: %d\n", len(orders))
	if len(orders) == 0 {
		fmt.Println("No orders found yet")
		return
	}

	for _, order := range orders {
		fmt.Println("--------------------------------------------------------------------------------")
		fmt.Printf("Order #%d\n", order.ID)
		fmt.Printf("Date: %s\n", time.Unix(order.CreatedAt, 0).Format(time.RFC3339))
		fmt.Printf("Customer: %s\n", order.CustomerName)
		fmt.Printf("Phone: %s\n", order.Phone)
		fmt.Printf("Email: %s\n", order.Email)
		fmt.Printf("Product: %s\n", order.ProductName)
		fmt.Printf("Quantity: %d\n", order.Quantity)
		fmt.Printf("Unit Price: %s UAH\n", order.UnitPrice)
		fmt.Printf("Total Amount: %s UAH\n", order.Total)
	}
}
