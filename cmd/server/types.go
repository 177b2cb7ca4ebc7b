package main

import (
	"codeberg.org/encore/server/encore/artists"
	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/cache"
	"codeberg.org/encore/server/internal/catalog"
	"codeberg.org/encore/server/internal/config"
	"codeberg.org/encore/server/internal/recap"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db         *pgxpool.Pool
	config     *config.Config
	showRepo   *shows.Repository
	artistRepo *artists.Repository
	aggregator *recap.Aggregator
	recapCache *cache.RecapCache
	catalog    *catalog.Client
	router     *gin.Engine
}
