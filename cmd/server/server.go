package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/encore/server/encore/artists"
	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/cache"
	"codeberg.org/encore/server/internal/catalog"
	"codeberg.org/encore/server/internal/config"
	"codeberg.org/encore/server/internal/recap"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small; this serves one friend group, not the public
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for pooler (PgBouncer) compatibility
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	recapCache, err := cache.NewRecapCache(cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize recap cache: %w", err)
	}

	server := &Server{
		db:         db,
		config:     cfg,
		showRepo:   shows.NewRepository(db),
		artistRepo: artists.NewRepository(db),
		aggregator: recap.New(cfg.RecapTimezone, cfg.RecapLaunchYear),
		recapCache: recapCache,
		catalog:    catalog.New(),
		router:     gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server, nil
}
