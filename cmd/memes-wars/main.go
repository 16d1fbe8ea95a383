package main

import (
	"os"
	"path/filepath"

	"github.com/yoh91asakura/memes-wars-sub001/internal/api"
	"github.com/yoh91asakura/memes-wars-sub001/internal/config"
	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/logging"
	"github.com/yoh91asakura/memes-wars-sub001/internal/storage"
	"github.com/yoh91asakura/memes-wars-sub001/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load content configuration (required). Path may be provided via
	// MEMES_CONFIG env var or defaults to ./memes_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid memes-wars configuration", err, logging.Fields{"config_path": configPath, "hint": "create a memes_config.json with a 'card_list' array of card objects (name,health,tags,weight,projectile{damage,speed,trajectory,...}) and optional keys: synergy_list, passive_list, arena, server.address"})
	}

	// Allow the DB path to be configured via MEMES_DB. Default to a
	// `data/` directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logging.Fatal("Failed to create database directory", err, nil)
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	handler := api.NewMatchHandler(repo, cfg)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.GET(constants.RouteSynergies, handler.ListSynergies)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		apiRoutes.POST(constants.RouteMatches, handler.CreateMatch)
		apiRoutes.GET(constants.RouteMatches, handler.ListMatches)
		apiRoutes.GET(constants.RouteMatchByID, handler.GetMatch)
		apiRoutes.GET(constants.RouteMatchEvents, handler.GetMatchEvents)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, "version": version.Version})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
