package main

import (
	"context"
	"fmt"

	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/handler"
	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/server"
	"github.com/tilyasov/bookstore/internal/service"
	"github.com/tilyasov/bookstore/internal/store"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/internal/workers"
	"github.com/tilyasov/bookstore/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookstore-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close() //nolint:errcheck

	if err = migrations.Migrate(storages.DB().DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	keys := identity.NewCertKeyStore(cfg.Identity, utils.NewHTTPClient(), log)
	verifier := identity.NewVerifier(cfg.Identity, keys, log)

	workers.NewWorkers(keys, cfg.Workers, log).Run()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, verifier, cfg.Server, log)
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
