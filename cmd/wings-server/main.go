package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/wingscafe/inventory/internal/config"
	"github.com/wingscafe/inventory/internal/event"
	"github.com/wingscafe/inventory/internal/http"
	"github.com/wingscafe/inventory/internal/log"
	"github.com/wingscafe/inventory/internal/relay"
	"github.com/wingscafe/inventory/internal/repository"
	"github.com/wingscafe/inventory/internal/service"
	"github.com/wingscafe/inventory/internal/session"
	"github.com/wingscafe/inventory/internal/storage/db"
	"github.com/wingscafe/inventory/internal/storage/mq"
	"github.com/wingscafe/inventory/internal/storage/snapshot"
	"github.com/wingscafe/inventory/internal/telemetry"
	"github.com/wingscafe/inventory/pkg/cmdutil"
	"github.com/wingscafe/inventory/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running server application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Relay    config.Relay
		Kafka    config.Kafka
		Otel     config.Otel
		Snapshot config.Snapshot
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
	if err != nil {
		return fmt.Errorf("error creating kafka producer: %w", err)
	}
	defer kafkaProducer.Close()

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("error creating kafka consumer: %w", err)
	}
	defer kafkaConsumer.Close()

	validate, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	productRepository := repository.NewProductRepository(dbClient)
	stockRecordRepository := repository.NewStockRecordRepository(dbClient)
	userRepository := repository.NewUserRepository(dbClient)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	salesAggregator := service.NewSalesAggregator()
	sessionGate := session.NewGate()
	snapshotStore := snapshot.NewFileStore(cfg.Snapshot)
	if levels, err := snapshotStore.Load(); err != nil {
		logger.WarnContext(ctx, "error loading stock snapshot", slog.Any("error", err))
	} else {
		logger.InfoContext(ctx, "stock snapshot loaded", slog.Int("products", len(levels)))
	}

	catalogService := service.NewCatalogService(productRepository)
	stockService := service.NewStockService(
		logger,
		dbClient,
		productRepository,
		stockRecordRepository,
		outboxMsgRepository,
		salesAggregator,
		snapshotStore,
	)
	userService := service.NewUserService(userRepository)
	authService := service.NewAuthService(userRepository, sessionGate)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := event.New(logger, kafkaConsumer)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running event service: %w", err))
		}
		logger.InfoContext(ctx, "event service started")

		<-interruptChan

		logger.InfoContext(ctx, "event service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "event service is stopped")
	})

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, catalogService, stockService, userService, authService, salesAggregator, validate)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Go(func() {
		svc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
		cleanup := svc.Run(ctx)
		logger.InfoContext(ctx, "relay service started")

		<-interruptChan

		logger.InfoContext(ctx, "relay service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "relay service is stopped")
	})

	wg.Wait()

	return nil
}
