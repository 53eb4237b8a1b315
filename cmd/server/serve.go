package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guildhall/backend-go/internal/api"
	"github.com/guildhall/backend-go/internal/config"
	"github.com/guildhall/backend-go/internal/database"
	"github.com/guildhall/backend-go/internal/database/repository"
	"github.com/guildhall/backend-go/internal/database/service"
	"github.com/guildhall/backend-go/internal/handler"
	"github.com/guildhall/backend-go/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Guildhall API...",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
	)

	// 3. Connect to Database
	db, err := database.Connect(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 4. Initialize Repositories
	characterRepo := repository.NewCharacterRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	uow := repository.NewUnitOfWork(db)

	// 5. Initialize Services
	characterService := service.NewCharacterService(characterRepo, uow, nil, appLogger)
	employeeService := service.NewEmployeeService(employeeRepo, uow, nil, appLogger)

	// 6. Initialize Handlers
	characterHandler := handler.NewCharacterHandler(characterService, appLogger)
	employeeHandler := handler.NewEmployeeHandler(employeeService, appLogger)

	r := api.SetupRouter(characterHandler, employeeHandler, cfg.CORSAllowedOrigins, appLogger)

	// 7. Start HTTP Server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ApiServicePort),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			appLogger.Error("❌ HTTP Server failed to start", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("🛑 [Go] Shutting down HTTP server...", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("❌ Graceful shutdown failed", "error", err)
		return err
	}

	appLogger.Info("✅ [Go] Server stopped")
	return nil
}
