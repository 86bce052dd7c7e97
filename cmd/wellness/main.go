// @title        Wellness API
// @version      1.0
// @description  Session, onboarding and dashboard API of the wellness app.
// @BasePath     /
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/api"
	"github.com/wellpath/wellness/internal/api/handler"
	"github.com/wellpath/wellness/internal/core/ports"
	"github.com/wellpath/wellness/internal/core/service"
	"github.com/wellpath/wellness/internal/infrastructure/config"
	"github.com/wellpath/wellness/internal/infrastructure/db/memory"
	mongodb "github.com/wellpath/wellness/internal/infrastructure/db/mongo"
	redisdb "github.com/wellpath/wellness/internal/infrastructure/db/redis"
	"github.com/wellpath/wellness/internal/infrastructure/queue"
	"github.com/wellpath/wellness/pkg/logger"
)

const (
	shutdownTimeout = 15 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "wellness"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "wellness",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := map[string]handler.Checker{}
	var cleanup []func(context.Context)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i](shutdownCtx)
		}
	}()

	// --- User store ---
	var users ports.UserStore
	switch cfg.UserStore {
	case config.BackendMongo:
		db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		cleanup = append(cleanup, func(ctx context.Context) {
			if err := db.Client().Disconnect(ctx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		})
		store := mongodb.NewUserStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}
		users = store
		checks["mongodb"] = mongodb.Ping(db)
	default:
		users = memory.NewUserStore()
	}

	// --- Session store ---
	var sessions ports.SessionStoreProvider
	switch cfg.SessionStore {
	case config.BackendRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		cleanup = append(cleanup, func(context.Context) {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close")
			}
		})
		sessions = redisdb.NewSessionStores(rdb, cfg.Session.TTL)
		checks["redis"] = redisdb.Ping(rdb)
	default:
		sessions = memory.NewSessionStores()
	}

	log.Info().
		Str("user_store", cfg.UserStore).
		Str("session_store", cfg.SessionStore).
		Msg("stores ready")

	// --- Profile sync workers ---
	// Workers outlive the signal context so Shutdown can drain them.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	syncer := service.NewProfileSyncService(users, cfg.Sync.Timeout, log)
	dispatcher := queue.NewDispatcher(cfg.Sync.Workers, syncer, log)
	dispatcher.Start(workerCtx)
	cleanup = append(cleanup, func(ctx context.Context) {
		if err := dispatcher.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("profile sync queue did not drain")
		}
	})

	// --- Sessions ---
	opts := service.DefaultAuthOptions()
	opts.LoginDelay = cfg.Auth.LoginDelay
	opts.VerifyPasswords = cfg.Auth.VerifyPasswords
	opts.PersistProfile = cfg.Auth.PersistProfile

	registry := service.NewSessionRegistry(sessions, func(store ports.SessionStore) *service.AuthManager {
		return service.NewAuthManager(users, store, dispatcher, opts, log)
	}, log)
	go registry.RunSweeper(ctx, sweepInterval, cfg.Session.MaxIdle)

	secret, err := sessionSecret(cfg, log)
	if err != nil {
		return err
	}

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Log:           log,
		Sessions:      registry,
		SessionSecret: secret,
		SessionTTL:    cfg.Session.TTL,
		SecureCookie:  cfg.Session.Secure,
		Checks:        checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// sessionSecret returns the cookie signing key. Development runs without a
// configured secret get a random one, so sessions do not survive restarts.
func sessionSecret(cfg *config.Config, log zerolog.Logger) ([]byte, error) {
	if cfg.Session.Secret != "" {
		return []byte(cfg.Session.Secret), nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	log.Warn().Msg("SESSION_SECRET not set; using an ephemeral key")
	return buf, nil
}
