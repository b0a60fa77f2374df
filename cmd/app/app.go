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

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/slots-pg/dashboard-api/internal/api"
	"github.com/slots-pg/dashboard-api/internal/config"
	"github.com/slots-pg/dashboard-api/internal/db"
	"github.com/slots-pg/dashboard-api/internal/logger"
	"github.com/slots-pg/dashboard-api/internal/repository"
	"github.com/slots-pg/dashboard-api/internal/repository/dao"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	slots, users, err := openStores(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s := api.NewServer(conf, slots, users)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.Live.Run(ctx)

	if err = config.Watch(configPath, reloadLogLevel); err != nil {
		zap.L().Warn("config hot reload disabled", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + conf.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr), zap.String("storage", conf.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.API.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

// reloadLogLevel applies the log level of a reloaded config. Invalid levels keep the current one.
func reloadLogLevel(next *config.AppConfig) {
	prev := logger.Level()
	if err := logger.SetLevel(next.Log.Level); err != nil {
		zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
		return
	}
	if cur := logger.Level(); cur != prev {
		zap.L().Info("log level changed", zap.Stringer("from", prev), zap.Stringer("to", cur))
	}
}

func openStores(conf *config.AppConfig) (repository.SlotDAO, repository.UserDAO, error) {
	if conf.Storage.Driver == config.StorageMemory {
		return dao.NewMemorySlotDAO(), dao.NewMemoryUserDAO(), nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	var err error
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return dao.NewSlotDAO(postgresDB), dao.NewUserDAO(postgresDB), nil
}
