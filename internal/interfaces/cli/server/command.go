package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	dealershipapp "dubhub/internal/application/dealership"
	"dubhub/internal/application/export"
	resourceapp "dubhub/internal/application/resource"
	taskapp "dubhub/internal/application/task"
	ticketapp "dubhub/internal/application/ticket"
	"dubhub/internal/infrastructure/config"
	"dubhub/internal/infrastructure/storage"
	httpRouter "dubhub/internal/interfaces/http"
	"dubhub/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the DubHub HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"storage_driver", cfg.Storage.Driver)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	driver, err := storage.New(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	svc, err := buildServices(cfg, driver)
	if err != nil {
		return fmt.Errorf("failed to load collections: %w", err)
	}

	router := httpRouter.NewRouter(cfg, svc, logger.NewLogger())
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func buildServices(cfg *config.Config, driver storage.Driver) (*httpRouter.Services, error) {
	log := logger.NewLogger()

	tickets, err := ticketapp.NewService(driver, log)
	if err != nil {
		return nil, err
	}
	dealerships, err := dealershipapp.NewService(driver, log)
	if err != nil {
		return nil, err
	}
	resources, err := resourceapp.NewService(driver, log)
	if err != nil {
		return nil, err
	}
	tasks, err := taskapp.NewService(driver, log)
	if err != nil {
		return nil, err
	}

	return &httpRouter.Services{
		Tickets:     tickets,
		Dealerships: dealerships,
		Resources:   resources,
		Tasks:       tasks,
		Exporter:    export.NewService(&cfg.Export, log),
	}, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
