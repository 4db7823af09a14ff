package main

import (
	"context"
	"log"
	"os"
	"time"

	"webstore_reports/internal/application/export"
	"webstore_reports/internal/application/reports"
	"webstore_reports/internal/config"
	"webstore_reports/internal/domain/repository"
	"webstore_reports/internal/infrastructure/encoding/avro"
	kafkainfra "webstore_reports/internal/infrastructure/messaging/kafka"
	"webstore_reports/internal/infrastructure/persistence/memory"
	"webstore_reports/internal/infrastructure/persistence/postgres"
	"webstore_reports/internal/interfaces/console"
	"webstore_reports/pkg/logger"
)

// One-shot job: load the dataset, evaluate all reports in parallel, print
// them to stdout and, when enabled, export the results to Kafka.
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

	now := time.Now().UTC()

	var datasetRepo repository.DatasetRepository
	if cfg.Reports.Source == "memory" {
		seeded, err := memory.NewSeededRepository(now)
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
	}

	store, err := datasetRepo.LoadDataset(ctx)
	if err != nil {
		zlog.Fatal("load dataset failed", logger.Error(err))
	}

	svc := reports.NewService(store, reports.Options{
		RecentWindow:     time.Duration(cfg.Reports.RecentWindowDays) * 24 * time.Hour,
		TopCustomers:     cfg.Reports.TopCustomers,
		FeaturedCategory: cfg.Reports.FeaturedCategory,
	})

	runner := reports.NewRunner(svc, zlog, cfg.Reports.Workers)
	results := runner.RunAll(ctx, now)

	formatter := console.NewFormatter(os.Stdout)
	if err := formatter.WriteResults(results); err != nil {
		zlog.Fatal("write results failed", logger.Error(err))
	}

	for _, res := range results {
		if res.Err != nil {
			zlog.Error("report failed", logger.String("report", res.Name), logger.Error(res.Err))
		}
	}

	if !cfg.Reports.ExportEnabled {
		return
	}

	encoder, err := avro.NewEncoder(avro.ReportResultSchema)
	if err != nil {
		zlog.Fatal("create avro encoder failed", logger.Error(err))
	}

	producer, err := kafkainfra.NewReportProducer(cfg.Kafka, zlog)
	if err != nil {
		zlog.Fatal("create kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	exporter := export.NewService(encoder, producer)
	n, err := exporter.ExportResults(ctx, results, now)
	if err != nil {
		zlog.Fatal("export results failed", logger.Int("published", n), logger.Error(err))
	}
	zlog.Info("exported report results",
		logger.Int("published", n),
		logger.String("topic", cfg.Kafka.ReportTopic),
	)
}
