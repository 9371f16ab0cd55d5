package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fsanano/stockmgmt/internal/config"
	"fsanano/stockmgmt/internal/handler"
	"fsanano/stockmgmt/internal/logging"
	"fsanano/stockmgmt/internal/repository"
	"fsanano/stockmgmt/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	// 2. Setup Database
	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		slog.Error("Failed to ping database", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to database")

	repo := repository.New(dbPool)
	if err := repo.Migrate(ctx); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	// 3. Setup Logic
	userService := service.NewUserService(repo, cfg.BcryptCost, cfg.Admin.Email)
	created, err := userService.EnsureAdmin(ctx, service.AdminAccount{
		Username:    cfg.Admin.Username,
		Email:       cfg.Admin.Email,
		PhoneNumber: cfg.Admin.PhoneNumber,
		Address:     cfg.Admin.Address,
		Password:    cfg.Admin.Password,
	})
	if err != nil {
		slog.Error("Failed to create default admin", "error", err)
		os.Exit(1)
	}
	if created {
		slog.Info("Default admin created", "email", cfg.Admin.Email)
	}

	h := handler.NewHandler(
		handler.Config{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		},
		handler.NewUserHandler(userService),
		handler.NewProductHandler(service.NewProductService(repo)),
		handler.NewOrderHandler(service.NewOrderService(repo, repo, repo)),
		handler.NewHistoryHandler(service.NewHistoryService(repo)),
		handler.NewAnalyticsHandler(service.NewAnalyticsService(repo)),
	)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	go func() {
		slog.Info("Starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exiting")
}
