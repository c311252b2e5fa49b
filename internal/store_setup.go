package internal

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/lifearchitect/internal/config"
	"github.com/2beens/lifearchitect/internal/db"
	"github.com/2beens/lifearchitect/internal/store"
)

type StateStoreParams struct {
	Config           *config.Config
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

// StateStore is the configured store plus the connections behind it.
type StateStore struct {
	Store       store.Store
	RedisClient *redis.Client
	DBPool      *pgxpool.Pool
	// Collectors expose connection pool stats.
	Collectors []prometheus.Collector
}

// OpenStateStore connects the store backend named in the config. Redis is
// connected whenever redis_host is set, since the rate limiter needs it too.
func OpenStateStore(ctx context.Context, params StateStoreParams) (*StateStore, error) {
	cfg := params.Config
	ss := &StateStore{}

	if cfg.RedisHost != "" {
		ss.RedisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.TracingEnabled {
			ss.RedisClient.AddHook(redisotel.NewTracingHook())
		}
		rdbStatus := ss.RedisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		if ss.RedisClient == nil {
			return nil, errors.New("redis store backend needs redis_host")
		}
		ss.Store = store.NewRedisStore(ss.RedisClient, cfg.RedisNamespace)
	case config.StoreBackendPostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			ss.Close()
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		ss.DBPool = pool
		if err := pool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		pgStore := store.NewPgStore(pool)
		if err := pgStore.Migrate(ctx); err != nil {
			ss.Close()
			return nil, err
		}
		ss.Store = pgStore
		ss.Collectors = append(ss.Collectors, db.NewPoolCollector(pool, cfg.PostgresDBName))
	default:
		log.Warnln("using in-memory state store, nothing survives a restart")
		ss.Store = store.NewMemoryStore()
	}

	return ss, nil
}

func (ss *StateStore) Close() {
	if ss.RedisClient != nil {
		if err := ss.RedisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}
	if ss.DBPool != nil {
		log.Debugln("closing db pool ...")
		ss.DBPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}
