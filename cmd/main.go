package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamestore/internal/handlers"
	"gamestore/internal/logger"
	"gamestore/internal/repository"
	"gamestore/internal/repository/db"
	"gamestore/internal/server"
	"gamestore/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Get(logger.InfoLevel)

	// load configs/config.yml + env overrides
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	signingKey, err := jwtSigningKey()
	if err != nil {
		log.Fatalw("jwt secret missing", "err", err)
	}

	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, signingKey)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	// PORT and JWT_SECRET_KEY may come from the environment
	_ = viper.BindEnv("port", "PORT")
	_ = viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// config file is optional when everything comes from env
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// jwtSigningKey requires a secret: starting without one would sign tokens
// with an empty key.
func jwtSigningKey() (string, error) {
	key := viper.GetString("jwt.secret_key")
	if key == "" {
		return "", errors.New("jwt.secret_key is not set (config or JWT_SECRET_KEY env)")
	}
	return key, nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "db.sqlite")
		dbPath = "db.sqlite"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
