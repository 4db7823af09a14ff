package main

import (
	"context"
	"log"
	"time"

	"webstore_reports/internal/application/ingest"
	"webstore_reports/internal/application/reports"
	"webstore_reports/internal/config"
	"webstore_reports/internal/domain/repository"
	ginserver "webstore_reports/internal/infrastructure/http/gin"
	kafkainfra "webstore_reports/internal/infrastructure/messaging/kafka"
	"webstore_reports/internal/infrastructure/persistence/memory"
	"webstore_reports/internal/infrastructure/persistence/postgres"
	"webstore_reports/internal/interfaces/http/handler"
	"webstore_reports/internal/interfaces/http/router"
	"webstore_reports/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var datasetRepo repository.DatasetRepository
	if cfg.Reports.Source == "memory" {
		seeded, err := memory.NewSeededRepository(time.Now().UTC())
		if err != nil {
			zlog.Fatal("seed dataset failed", logger.Error(err))
		}
		datasetRepo = seeded
	} else {
		pool, err := postgres.NewPool(cfg.DB)
		if err != nil {
			zlog.Fatal("postgres connection failed", logger.Error(err))
		}
		defer pool.Close()

		datasetRepo = postgres.NewDatasetRepository(pool)

		// Keep the dataset current from order snapshot events.
		ingestSvc := ingest.NewService(postgres.NewOrderRepository(pool))
		consumer := kafkainfra.NewOrderConsumer(cfg.Kafka, ingestSvc)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				zlog.Warn("kafka consumer stopped", logger.Error(err))
			}
		}()
		defer consumer.Close()
	}

	store, err := datasetRepo.LoadDataset(ctx)
	if err != nil {
		zlog.Fatal("load dataset failed", logger.Error(err))
	}
	zlog.Info("dataset loaded",
		logger.Int("customers", len(store.Customers)),
		logger.Int("orders", len(store.Orders)),
		logger.Int("products", len(store.Products)),
	)

	reportSvc := reports.NewService(store, reports.Options{
		RecentWindow:     time.Duration(cfg.Reports.RecentWindowDays) * 24 * time.Hour,
		TopCustomers:     cfg.Reports.TopCustomers,
		FeaturedCategory: cfg.Reports.FeaturedCategory,
	})

	reportHandler := handler.NewReportHandler(reportSvc)
	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, reportHandler)

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		zlog.Fatal("server run failed", logger.Error(err))
	}
}
