package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/abcall/user-management-gateway/internal/adapter"
	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/internal/handler"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/server"
	"github.com/abcall/user-management-gateway/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-management-gateway")

	// optional .env for local development; real deployments set the
	// environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	adapters := adapter.NewAdapters(cfg.Downstream)
	services := service.NewServices(adapters, cfg.App, log)
	handlers := handler.NewHandlers(services, log)

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
