package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gitlab.com/bhajan-roster.net/internal/adapter/logging"
	memorystore "gitlab.com/bhajan-roster.net/internal/adapter/memory/submissionstore"
	"gitlab.com/bhajan-roster.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/bhajan-roster.net/internal/adapter/redis/sessioncache"
	sqlitestore "gitlab.com/bhajan-roster.net/internal/adapter/sqlite/submissionstore"
	"gitlab.com/bhajan-roster.net/internal/config"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/core/services/allocator"
	"gitlab.com/bhajan-roster.net/internal/core/services/ordering"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/core/services/summary"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

// app holds everything a command needs and what must be closed afterwards.
type app struct {
	cfg            *config.AppConfig
	logger         *logging.ZapLogger
	sessionService *session.SessionService
	closers        []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("Failed to close resource", "error", err)
		}
	}
	_ = a.logger.Sync()
}

func buildApp(ctx context.Context) (*app, error) {
	sysCfg := config.NewSystemConfig()
	logger := logging.NewZapLogger(sysCfg.LogLevel)
	a := &app{cfg: sysCfg, logger: logger}

	catalog, err := sysCfg.CatalogConfig.LoadCatalog()
	if err != nil {
		a.Close()
		return nil, err
	}

	store, err := a.setupStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	if sysCfg.RedisConfig.Enabled {
		redisClient := setupRedis(sysCfg.RedisConfig)
		a.closers = append(a.closers, redisClient)
		cache := sessioncache.NewRedisCache(redisClient, logger, sysCfg.RedisConfig.TTL)
		store = sessioncache.NewCachedStore(store, cache, logger)
		logger.Info("Session cache enabled", "addr", sysCfg.RedisConfig.Url)
	}

	slotAllocator := allocator.NewSlotAllocator(store, catalog, logger)
	orderer := ordering.NewEngine(catalog, domain.DefaultTempoRanking(), sysCfg.CatalogConfig.CollationTag())
	summaries := summary.NewBuilder(catalog)
	a.sessionService = session.NewSessionService(store, slotAllocator, orderer, summaries, catalog, logger)
	return a, nil
}

func (a *app) setupStore(ctx context.Context) (secondary.SubmissionStore, error) {
	switch a.cfg.StoreConfig.Driver {
	case config.StoreDriverPostgres:
		db, err := setupDatabase(ctx, a.cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db)
		a.logger.Info("Using postgres store")
		return submissionrepository.NewSubmissionRepository(db, a.logger, a.cfg.PostgresConfig.Schema), nil
	case config.StoreDriverSQLite:
		store, err := sqlitestore.Open(ctx, a.cfg.SQLiteConfig.Path, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store)
		a.logger.Info("Using sqlite store", "path", a.cfg.SQLiteConfig.Path)
		return store, nil
	case config.StoreDriverMemory:
		a.logger.Warn("Using in-memory store; submissions are lost on restart")
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", a.cfg.StoreConfig.Driver)
	}
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// setupRedis sets up the Redis connection
func setupRedis(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Url,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
