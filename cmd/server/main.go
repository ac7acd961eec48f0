// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/handler"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/server"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	flags := config.RegisterServerFlags(pflag.CommandLine)
	pflag.Parse()

	log := logger.NewLogger("kvsync-server")
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), *cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.Close()

	services, err := service.NewServices(repositories, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
