// Package main is the entry point for the crm-comms HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/cooldown"
	"github.com/popeskul/crm-comms/internal/events"
	"github.com/popeskul/crm-comms/internal/gateway"
	"github.com/popeskul/crm-comms/internal/handler"
	"github.com/popeskul/crm-comms/internal/infrastructure/migrate"
	"github.com/popeskul/crm-comms/internal/middleware"
	"github.com/popeskul/crm-comms/internal/repository"
	"github.com/popeskul/crm-comms/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger)
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	publisher, err := newPublisher(cfg.Events, redisClient)
	if err != nil {
		logger.Fatal("Failed to create event publisher", zap.Error(err))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", zap.Error(err))
		}
	}()

	svc := service.NewService(cfg, service.Dependencies{
		Repo:        repository.NewRepository(db),
		RedisClient: redisClient,
		Sender:      newSender(cfg.Gateways, logger),
		Limiter:     newLimiter(cfg.Cooldown, redisClient),
		Publisher:   publisher,
	}, logger)

	chain, rateLimiter := middleware.Chain(newMiddlewareConfig(cfg, logger))
	defer rateLimiter.Close()

	router := setupRouter(handler.NewHandler(svc, logger), chain)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background sweeps start with the process
	if err := svc.Worker.Start(); err != nil {
		logger.Error("Failed to start worker on startup", zap.Error(err))
	} else {
		logger.Info("Worker started automatically on application startup")
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.Worker.IsRunning() {
		if err := svc.Worker.Stop(); err != nil {
			logger.Error("Failed to stop worker", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newSender registers a gateway for every channel that has a provider URL.
func newSender(cfg config.GatewaysConfig, logger *zap.Logger) *gateway.Registry {
	var gateways []gateway.Gateway
	if cfg.SMS.URL != "" {
		gateways = append(gateways, gateway.NewSMSGateway(cfg.SMS, logger))
	}
	if cfg.Email.URL != "" {
		gateways = append(gateways, gateway.NewEmailGateway(cfg.Email, logger))
	}
	if cfg.Voice.URL != "" {
		gateways = append(gateways, gateway.NewVoiceGateway(cfg.Voice, logger))
	}
	if len(gateways) == 0 {
		logger.Warn("No channel gateways configured, every send will fail")
	}
	return gateway.NewRegistry(gateways...)
}

func newLimiter(cfg config.CooldownConfig, client *redis.Client) cooldown.Limiter {
	if cfg.Backend == "memory" {
		return cooldown.NewMemoryLimiter()
	}
	return cooldown.NewRedisLimiter(client)
}

func newPublisher(cfg config.EventsConfig, client *redis.Client) (events.Publisher, error) {
	switch cfg.Backend {
	case "redis":
		return events.NewRedisPublisher(client, cfg.RedisChannel), nil
	case "amqp":
		return events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange)
	case "none", "":
		return events.NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
}

func newMiddlewareConfig(cfg *config.Config, logger *zap.Logger) *middleware.Config {
	mc := &middleware.Config{
		Logger:         logger,
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: time.Duration(cfg.Middleware.RequestTimeout) * time.Second,
	}
	if cfg.Middleware.EnableCORS {
		mc.CORS = middleware.DefaultCORSConfig(cfg.Middleware.AllowedOrigins)
	}
	return mc
}
