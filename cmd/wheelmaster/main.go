package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/config"
	database "github.com/wyfcoding/pkg/databases"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/pkg/metrics"
	catalogapp "github.com/wyfcoding/wheelmaster/internal/catalog/application"
	catalogmysql "github.com/wyfcoding/wheelmaster/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/wheelmaster/internal/catalog/interfaces/http"
	orderapp "github.com/wyfcoding/wheelmaster/internal/ordering/application"
	"github.com/wyfcoding/wheelmaster/internal/ordering/infrastructure/messaging"
	ordermysql "github.com/wyfcoding/wheelmaster/internal/ordering/infrastructure/persistence/mysql"
	orderhttp "github.com/wyfcoding/wheelmaster/internal/ordering/interfaces/http"
	"github.com/wyfcoding/wheelmaster/internal/web"
	"golang.org/x/sync/errgroup"
)

var (
	configPath   = flag.String("config", "configs/config.toml", "config file path")
	templateGlob = flag.String("templates", "web/templates/*", "storefront template glob")
)

func main() {
	flag.Parse()

	// 1. 配置
	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	logCfg := logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. 指标
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	// 4. 数据库
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(&catalogmysql.ProductModel{}, &ordermysql.OrderModel{}, &outbox.OutboxMessage{}); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Kafka & Outbox
	kafkaProducer := kafka.NewProducer(cfg.MessageQueue.Kafka, logger, metricsImpl)
	outboxMgr := outbox.NewManager(db.RawDB(), logger.Logger)
	pusher := func(ctx context.Context, topic, key string, payload []byte) error {
		return kafkaProducer.PublishToTopic(ctx, topic, []byte(key), payload)
	}
	outboxProcessor := outbox.NewProcessor(outboxMgr, pusher, 100, 2*time.Second)

	// 6. 仓储
	productRepo := catalogmysql.NewProductRepository(db.RawDB())
	orderRepo := ordermysql.NewOrderRepository(db.RawDB())
	publisher := messaging.NewOutboxPublisher(outboxMgr, db.RawDB())

	// 7. 应用服务
	syncSvc := catalogapp.NewCatalogSyncService(productRepo)
	catalogQuerySvc := catalogapp.NewCatalogQueryService(productRepo)
	orderCmdSvc := orderapp.NewOrderCommandService(orderRepo, productRepo, publisher)
	orderQuerySvc := orderapp.NewOrderQueryService(orderRepo)

	// 8. 接口层
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob(*templateGlob)

	web.NewHandler(catalogQuerySvc, orderCmdSvc).RegisterRoutes(r)
	api := r.Group("")
	cataloghttp.NewCatalogHandler(syncSvc, catalogQuerySvc).RegisterRoutes(api)
	orderhttp.NewOrderHandler(orderCmdSvc, orderQuerySvc).RegisterRoutes(api)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.Server.Name,
			"timestamp": time.Now().Unix(),
		})
	})

	// 9. 启动
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		outboxProcessor.Start()
		<-ctx.Done()
		outboxProcessor.Stop()
		return nil
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
	server := &http.Server{Addr: addr, Handler: r}

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down server...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
