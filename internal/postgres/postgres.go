package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/telemetry"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// New opens a traced connection pool and waits for the database to accept
// connections, retrying the ping cfg.ConnectAttempts times.
func New(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	sqlDB, err := telemetry.OpenPostgres(cfg.DSN(), cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	db := sqlx.NewDb(sqlDB, "postgres")

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	retry := utils.RetryConfig{
		MaxAttempts:  cfg.ConnectAttempts,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}
	if err := utils.Retry(ctx, retry, func() error { return db.PingContext(ctx) }); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}
