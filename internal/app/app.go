package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"productivity-service/internal/config"
	domainservice "productivity-service/internal/domain/service"
	"productivity-service/internal/handler"
	cronpkg "productivity-service/internal/infrastructure/cron"
	infradb "productivity-service/internal/infrastructure/db"
	"productivity-service/internal/infrastructure/kafka"
	"productivity-service/internal/infrastructure/postgres"
	infraredis "productivity-service/internal/infrastructure/redis"
	"productivity-service/internal/logging"
	"productivity-service/internal/middleware"
	"productivity-service/internal/service"
	"productivity-service/internal/transport/grpc"
	"productivity-service/pkg/jwt"
	"productivity-service/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App represents the application
type App struct {
	config      *config.Config
	logger      logging.Logger
	httpServer  *http.Server
	grpcServer  *grpc.Server
	dispatcher  *cronpkg.ReminderDispatcher
	rateLimiter *middleware.RateLimiter
	producer    *kafka.Producer
	redisClient *redis.Client
	dbPool      *pgxpool.Pool
}

// New creates a new application
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format).
		With("service", cfg.Service.Name, "env", cfg.Service.Environment)

	ctx := context.Background()
	logger.Info(ctx, "configuration loaded")

	dbPool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	logger.Info(ctx, "connected to PostgreSQL", "host", cfg.Database.Host, "database", cfg.Database.Database)

	if cfg.Database.MigrateOnStart {
		if err := infradb.RunMigrations(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info(ctx, "database migrations applied")
	}

	redisClient, err := infraredis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info(ctx, "connected to Redis", "addr", cfg.Redis.Addr)

	// Repositories
	taskRepo := postgres.NewTaskRepository(dbPool)
	reminderRepo := postgres.NewReminderRepository(dbPool)
	pomodoroRepo := postgres.NewPomodoroRepository(dbPool)
	goalRepo := postgres.NewGoalRepository(dbPool)
	habitRepo := postgres.NewHabitRepository(dbPool)

	var (
		producer *kafka.Producer
		notifier domainservice.ReminderNotifier
	)
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(&cfg.Kafka)
		notifier = producer
		logger.Info(ctx, "kafka producer initialized", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Info(ctx, "kafka is disabled in configuration")
	}

	// Services
	taskService := service.NewTaskService(taskRepo)
	reminderService := service.NewReminderService(reminderRepo, taskRepo, notifier)
	pomodoroService := service.NewPomodoroService(pomodoroRepo, taskRepo)
	goalService := service.NewGoalService(goalRepo)
	habitService := service.NewHabitService(habitRepo)

	var dispatcher *cronpkg.ReminderDispatcher
	switch {
	case !cfg.Scheduler.Enabled:
		logger.Info(ctx, "reminder dispatcher is disabled in configuration")
	case notifier == nil:
		logger.Warn(ctx, "reminder dispatcher needs kafka, not starting it")
	default:
		dispatcher = cronpkg.NewReminderDispatcher(reminderService, logger, cfg.Scheduler.CheckInterval, cfg.Scheduler.BatchSize)
	}

	// HTTP
	validator := validation.New()
	responder := handler.NewErrorResponder(logger, !cfg.IsProduction())
	handlers := handler.Handlers{
		Task:     handler.NewTaskHandler(taskService, validator, responder),
		Reminder: handler.NewReminderHandler(reminderService, validator, responder),
		Pomodoro: handler.NewPomodoroHandler(pomodoroService, validator, responder),
		Goal:     handler.NewGoalHandler(goalService, validator, responder),
		Habit:    handler.NewHabitHandler(habitService, validator, responder),
	}

	tokenManager := jwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer)
	sessionStorage := infraredis.NewSessionStorage(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenManager, sessionStorage, logger)
	rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RequestsPerMinute)

	router := handler.NewRouter(handlers, authMiddleware, rateLimiter, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router.Setup(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	grpcServer := grpc.NewServer(cfg.GRPC.Port, logger)

	return &App{
		config:      cfg,
		logger:      logger,
		httpServer:  httpServer,
		grpcServer:  grpcServer,
		dispatcher:  dispatcher,
		rateLimiter: rateLimiter,
		producer:    producer,
		redisClient: redisClient,
		dbPool:      dbPool,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	ctx := context.Background()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if a.dispatcher != nil {
		if err := a.dispatcher.Start(); err != nil {
			return fmt.Errorf("failed to start reminder dispatcher: %w", err)
		}
	}

	a.rateLimiter.StartCleanup(5*time.Minute, 5*time.Minute)

	go func() {
		if err := a.grpcServer.Start(); err != nil {
			a.logger.Error(ctx, "gRPC server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(ctx, "HTTP server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	a.grpcServer.SetServing(true)
	a.logger.Info(ctx, "service started",
		"http_port", a.config.HTTP.Port,
		"grpc_port", a.config.GRPC.Port,
		"version", a.config.Service.Version,
	)

	<-quit
	a.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(ctx, "HTTP server forced to shutdown", "error", err)
	}
	a.rateLimiter.Stop()

	a.grpcServer.Stop()

	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error(ctx, "failed to close kafka producer", "error", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.logger.Error(ctx, "failed to close redis client", "error", err)
	}

	a.dbPool.Close()

	a.logger.Info(ctx, "shutdown complete")
	return nil
}
