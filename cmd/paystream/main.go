package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pradipta/paystream/internal/pkg/config"
	"github.com/pradipta/paystream/internal/pkg/database"
	"github.com/pradipta/paystream/internal/pkg/health"
	"github.com/pradipta/paystream/internal/pkg/logger"
	"github.com/pradipta/paystream/internal/pkg/middleware"
	nsqpkg "github.com/pradipta/paystream/internal/pkg/nsq"
	"github.com/pradipta/paystream/internal/pkg/server"
	"github.com/pradipta/paystream/internal/pkg/telemetry"
	"github.com/pradipta/paystream/services/transactions/gateway"
	"github.com/pradipta/paystream/services/transactions/handler"
	"github.com/pradipta/paystream/services/transactions/repository"
	"github.com/pradipta/paystream/services/transactions/usecase"
	"github.com/sirupsen/logrus"
)

func main() {
	appName := "paystream"
	configPath := config.GetEnv("CONFIG_PATH", "config/paystream.env")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithFields(logrus.Fields{"error": err.Error()}).Fatal("failed to connect to PostgreSQL")
	}

	// Telemetry: Redis-backed counters when configured, in-memory otherwise
	var sink telemetry.Sink
	var redisClient *database.RedisClient
	if configs.Redis.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			appLogger.WithFields(logrus.Fields{"error": err.Error()}).Fatal("failed to connect to Redis")
		}
		sink = telemetry.NewRedisSink(redisClient)
	} else {
		sink = telemetry.NewCounters()
	}

	// Initialize NSQ producer for the submission relay
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithFields(logrus.Fields{"error": err.Error()}).Fatal("failed to connect to NSQ")
	}

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())

	// Initialize gateway
	transactionGW := gateway.NewTransactionGW(producer, configs.NSQ.Topic)

	// Initialize use case
	transactionUC := usecase.NewTransactionUC(configs, transactionRepo, transactionGW, sink)

	// Handlers for HTTP
	transactionHandler := handler.NewTransactionHandler(transactionUC)

	// Handler for the queue consumer
	queueHandler := handler.NewQueueHandler(transactionUC, sink, configs)
	if err := queueHandler.Start(); err != nil {
		appLogger.WithFields(logrus.Fields{"error": err.Error()}).Fatal("failed to start transaction consumer")
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(logger.EchoMiddleware(appLogger))

	// Register health endpoints
	checks := map[string]health.Check{
		"postgres": postgresClient.Ping,
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Ping
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, checks)

	// Register service routes
	transactionHandler.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(context.Context) error {
		queueHandler.Stop()
		return nil
	})
	shutdownManager.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})
	if redisClient != nil {
		shutdownManager.Register(func(context.Context) error {
			return redisClient.Close()
		})
	}
	shutdownManager.Register(func(context.Context) error {
		return postgresClient.Close()
	})

	// Start server and block until shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		appLogger.WithFields(logrus.Fields{"error": err.Error()}).Error("server stopped with error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		appLogger.WithFields(logrus.Fields{"error": err.Error()}).Error("component shutdown failed")
	}
}
