package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/portfolio-backend/portfolio-api/config"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/repository"
	"github.com/portfolio-backend/portfolio-api/internal/storage/postgres"
)

// Backend is an opened store together with its health check and cleanup.
type Backend struct {
	Stores repository.Stores
	Ping   func(ctx context.Context) error
	Close  func() error

	// DB is set for the PostgreSQL backend only.
	DB *sql.DB
}

// OpenBackend connects to the store selected by STORE_DRIVER.
func OpenBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreRedis:
		return openRedis(ctx, &cfg.Redis)
	case config.StorePostgres:
		return openPostgres(ctx, &cfg.Database)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openPostgres(ctx context.Context, cfg *config.DatabaseConfig) (*Backend, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Printf("[store] schema applied")
	}
	log.Printf("[store] driver=postgres sql_driver=%s db=%s", cfg.Driver, cfg.Name)

	return &Backend{
		Stores: repository.NewPostgresStores(db),
		Ping:   db.PingContext,
		Close:  db.Close,
		DB:     db,
	}, nil
}

func openRedis(ctx context.Context, cfg *config.RedisConfig) (*Backend, error) {
	client, err := OpenRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[store] driver=redis addr=%s prefix=%s", cfg.Addr, cfg.KeyPrefix)

	return &Backend{
		Stores: repository.NewRedisStores(client, cfg.KeyPrefix),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		Close: client.Close,
	}, nil
}
