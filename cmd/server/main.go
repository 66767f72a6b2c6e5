package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"thestream/config"
	_ "thestream/docs"
	"thestream/internal/adapters/auth"
	httpdelivery "thestream/internal/delivery/http"
	"thestream/internal/delivery/http/controllers"
	"thestream/internal/delivery/http/middleware"
	"thestream/internal/domain"
	"thestream/internal/repository/memory"
	"thestream/internal/repository/postgres"
	"thestream/internal/services"
)

// @title TheStream API
// @version 1.0
// @description Session login and call invitations for TheStream clients.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry, closeStore, err := newCallRegistry(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	tokens := auth.NewJWTManager(cfg.JWTSecret)
	callController := controllers.NewCallController(logger, services.NewCallService(registry, logger))
	sessionController := controllers.NewSessionController(logger, services.NewSessionService(tokens, cfg.JWTExpiry))

	router := httpdelivery.NewRouter(callController, sessionController, tokens, logger)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, router))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Environment, "call_store", cfg.CallStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}

// newCallRegistry builds the configured call store. The in-memory store
// loses every invitation on restart.
func newCallRegistry(cfg *config.Config, logger *slog.Logger) (domain.CallRegistry, func(), error) {
	if cfg.CallStore != config.CallStorePostgres {
		logger.Warn("using in-memory call store; invitations are lost on restart")
		return memory.NewCallRegistry(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	logger.Info("database connection established")
	return postgres.NewCallInvitationRepository(db), func() { db.Close() }, nil
}
