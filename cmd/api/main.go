package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/usecase/minigame"
	userUseCase "github.com/amirhossein-jamali/minigame-rewards/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/ratelimit"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	for _, w := range cfg.Warnings() {
		appLogger.Warn("Configuration warning", map[string]any{"warning": w})
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	// Database
	dbManager := database.NewManager(databaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(startCtx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(startCtx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	userLockRepo := repository.NewUserLockRepository(dbManager.DB(), tp, appLogger)

	// Mini-games
	games, err := cfg.MiniGames.Catalog()
	if err != nil {
		return fmt.Errorf("build game catalog: %w", err)
	}
	catalog, err := entity.NewCatalog(games)
	if err != nil {
		return fmt.Errorf("build game catalog: %w", err)
	}

	limiter := ratelimit.NewKeyedLimiter(
		cfg.MiniGames.RateLimitAttempts,
		time.Duration(cfg.MiniGames.RateLimitWindowSeconds)*time.Second,
		tp,
	)

	miniGameService := minigame.NewService(
		catalog,
		uow,
		userLockRepo,
		limiter,
		idgen.NewULIDGenerator(tp),
		tp,
		appLogger,
		minigame.Settings{
			DegradeOpenOnStorageFailure: cfg.MiniGames.DegradeOpenOnStorageFailure,
			LockTimeout:                 time.Duration(cfg.Transaction.LockTimeoutMs) * time.Millisecond,
			MaxAttempts:                 cfg.Transaction.MaxRetries,
			RetryBackoff:                time.Duration(cfg.Transaction.RetryBackoffMs) * time.Millisecond,
			LeaderboardSize:             cfg.MiniGames.LeaderboardSize,
		},
	)

	bg := context.Background()
	users := userUseCase.NewUserUseCase(uow.GetUserRepository(bg), uow.GetTransactionRepository(bg), tp, appLogger)
	if err := users.CreateDefaultUsers(startCtx); err != nil {
		appLogger.Error("Failed to create default users", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Mini-game catalog loaded", map[string]any{
		"games":         len(games),
		"degrade_open":  cfg.MiniGames.DegradeOpenOnStorageFailure,
		"rate_limit":    cfg.MiniGames.RateLimitAttempts,
		"leaderboard_n": cfg.MiniGames.LeaderboardSize,
	})

	// Maintenance jobs
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.NewScheduler(appLogger)
		specs := scheduler.Specs{
			LockCleanup:  cfg.Scheduler.LockCleanup,
			LimiterPrune: cfg.Scheduler.LimiterPrune,
			PoolStats:    cfg.Scheduler.PoolStats,
		}
		for _, job := range scheduler.MaintenanceJobs(specs, userLockRepo, limiter, dbManager.PoolMonitor(), appLogger) {
			if err := jobs.Register(job); err != nil {
				return fmt.Errorf("register job %s: %w", job.Name, err)
			}
		}
		jobs.Start()
		defer jobs.Stop()
	}

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		MiniGame: handler.NewMiniGameHandler(miniGameService, appLogger),
		User:     handler.NewUserHandler(users, appLogger),
		Health:   handler.NewHealthHandler(dbManager, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		SlowThreshold:   time.Duration(cfg.Database.SlowQueryMs) * time.Millisecond,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
}
