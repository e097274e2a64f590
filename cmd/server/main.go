// Package main initializes and starts the HTTP server, setting up
// configuration, logging, the credential store, the session store,
// the data cache, services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"

	nethttp "net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/n1ck0n/front6/internal/config"
	"github.com/n1ck0n/front6/internal/db"
	"github.com/n1ck0n/front6/internal/logger"
	"github.com/n1ck0n/front6/internal/middleware"
	"github.com/n1ck0n/front6/internal/password"
	"github.com/n1ck0n/front6/internal/repository"
	"github.com/n1ck0n/front6/internal/server/handler/http"
	"github.com/n1ck0n/front6/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Credential store: PostgreSQL when a DSN is configured,
	// in-memory otherwise.
	var users service.UserRepository = repository.NewMemoryUserRepository()
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		users = repository.NewPostgresUserRepository(postgresDB)
	}

	// Session store and cache slot: Redis when configured, otherwise an
	// in-memory session store and a restart-surviving file cache slot.
	var sessionRepo service.SessionRepository = repository.NewMemorySessionRepository()
	var cacheSlot service.CacheSlot = repository.NewFileCacheSlot(options.CacheFile)
	if options.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: options.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			zapLogger.Fatal("cannot connect to redis", zap.Error(err))
		}
		sessionRepo = repository.NewRedisSessionRepository(client)
		cacheSlot = repository.NewRedisCacheSlot(client)
	}

	// Initialize business-logic services.
	sessionManager := service.NewSessionManager(sessionRepo)
	authService := service.NewAuthService(users, password.NewHasher(password.DefaultCost), sessionManager)
	dataCache := service.NewDataCache(cacheSlot, options.CacheTTL, zapLogger)

	// Create HTTP handlers for auth, profile, and data endpoints.
	authHandler := &http.AuthHandler{AuthService: authService, Sessions: sessionManager, Log: zapLogger}
	profileHandler := &http.ProfileHandler{}
	dataHandler := &http.DataHandler{Cache: dataCache, Log: zapLogger}

	// Build the router with middleware and routes.
	var sessionValidator middleware.SessionValidator = sessionManager
	router := http.NewRouter(authHandler, profileHandler, dataHandler, sessionValidator, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
