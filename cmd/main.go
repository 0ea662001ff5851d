package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/handlers"
	"taskflow/internal/logger"
	"taskflow/internal/repository"
	"taskflow/internal/repository/db"
	"taskflow/internal/server"
	"taskflow/internal/service"
	"taskflow/internal/telemetry"
)

// @title                       TaskFlow API
// @version                     1.0
// @description                 Personal task manager with calendar view and admin dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	// load config.yml + environment
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel)
	if err != nil {
		log.Fatalw("failed to init tracing", "err", err)
	}

	// open DB
	sqlDB, dialect, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()
	log.Infow("database ready", "driver", dialect)

	// wire dependencies
	repos := repository.NewRepository(sqlDB, dialect)
	services := service.NewService(repos, cfg.Auth)
	apiHandler := handlers.NewHandler(services, log)

	seedAdmin(ctx, services, cfg.Admin, log)

	// start HTTP server
	srv := server.New(cfg.Server)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, cfg.Server.ShutdownTimeout, shutdownTracing, log)
}

// seedAdmin creates the configured admin account on first start.
func seedAdmin(ctx context.Context, services *service.Service, admin config.AdminConfig, log *logger.Logger) {
	if admin.Email == "" {
		return
	}
	created, err := services.EnsureAdmin(ctx, service.RegisterInput{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: admin.Password,
	})
	if err != nil {
		log.Fatalw("failed to seed admin account", "email", admin.Email, "err", err)
	}
	if created {
		log.Infow("admin account created", "email", admin.Email)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, timeout time.Duration, shutdownTracing func(context.Context) error, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Errorw("failed to flush traces", "err", err)
	}
}
