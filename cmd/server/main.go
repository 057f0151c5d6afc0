package main

import (
	"context"
	"fmt"

	"github.com/autovenda/go-car-market/internal/advisor"
	"github.com/autovenda/go-car-market/internal/config"
	"github.com/autovenda/go-car-market/internal/handler"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/server"
	"github.com/autovenda/go-car-market/internal/service"
	"github.com/autovenda/go-car-market/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("car-market-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	repositories := store.NewRepositories(db, log)

	advisorClient := advisor.NewGeminiClient(cfg.Advisor)

	services := service.NewServices(repositories, advisorClient, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
