package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/database"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/validation"
)

// Runtime holds the connections a service binary wires its components to.
// Redis and NATS are optional and stay nil when not configured.
type Runtime struct {
	Config     config.Config
	Logger     zerolog.Logger
	DB         *gorm.DB
	Redis      *redis.Client
	Bus        *events.Bus
	HTTPClient *http.Client
	Validator  *validation.Validator

	nats *nats.Conn
}

// Open connects storage, migrates the given models and dials the optional
// cache and event bus. Failing optional dependencies are logged and skipped.
func Open(ctx context.Context, cfg config.Config, logger zerolog.Logger, models ...interface{}) (*Runtime, error) {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	rt := &Runtime{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		HTTPClient: reference.NewHTTPClient(cfg.ValidationTimeout),
		Validator:  validation.New(),
	}

	if cfg.RedisURL != "" {
		client, err := database.ConnectRedis(ctx, cfg.RedisURL, cfg.ValidationTimeout)
		if err != nil {
			logger.Warn().Err(err).Msg("list cache disabled")
		} else {
			rt.Redis = client
		}
	}

	if cfg.NATSURL != "" {
		conn, err := events.Connect(cfg.NATSURL, cfg.AppName)
		if err != nil {
			logger.Warn().Err(err).Msg("event bus disabled")
		} else {
			rt.nats = conn
		}
	}
	rt.Bus = events.NewBus(rt.nats, string(cfg.Service), logger)

	return rt, nil
}

// PingContext checks the database connection.
func (r *Runtime) PingContext(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// RosterChecker builds a remote checker for a roster collection such as
// "classes".
func (r *Runtime) RosterChecker(entity, collection string) reference.Checker {
	return reference.NewHTTPChecker(entity, r.Config.RosterURL+"/"+collection, r.HTTPClient, r.Logger)
}

// Close releases every connection opened by Open.
func (r *Runtime) Close() {
	if r.nats != nil {
		if err := r.nats.Drain(); err != nil {
			r.Logger.Warn().Err(err).Msg("failed to drain nats connection")
		}
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			r.Logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	if sqlDB, err := r.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			r.Logger.Warn().Err(err).Msg("failed to close database")
		}
	}
}
