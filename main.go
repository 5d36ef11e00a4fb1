package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"socialapi/config"
	"socialapi/database"
	"socialapi/handlers"
	"socialapi/logger"
	"socialapi/models"
	"socialapi/repositories"
	"socialapi/routes"
	"socialapi/services"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logFile, err := logger.Init(cfg.Log)
	if err != nil {
		logrus.Fatalf("failed to init logger: %v", err)
	}
	defer logFile.Close()

	accountStore, messageStore, ping, closeDB, err := openStores(cfg.Database)
	if err != nil {
		logrus.Fatalf("failed to open storage: %v", err)
	}
	defer closeDB()

	accountRepo := repositories.NewAccountRepository(accountStore)
	messageRepo := repositories.NewMessageRepository(messageStore)

	router := routes.SetupRoutes(
		handlers.NewAccountHandler(services.NewAccountService(accountRepo)),
		handlers.NewMessageHandler(services.NewMessageService(messageRepo, accountRepo)),
		handlers.NewSystemHandler(ping),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logrus.WithField("addr", cfg.Server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}

// openStores returns the record stores for the configured driver, a health
// check (nil for memory) and a close function.
func openStores(cfg config.DatabaseConfig) (repositories.AccountStore, repositories.MessageStore, func() error, func() error, error) {
	if cfg.Driver == "memory" {
		logrus.Warn("Using in-memory storage, data is lost on exit")
		return repositories.NewMemoryStore[models.Account]("username"),
			repositories.NewMemoryStore[models.Message](),
			nil,
			func() error { return nil },
			nil
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, nil, nil, err
	}

	ping := func() error {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
	return repositories.NewGormStore[models.Account](db.DB),
		repositories.NewGormStore[models.Message](db.DB),
		ping,
		db.Close,
		nil
}
