package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Standalone migrator for deployments that run migrations as a separate job.
func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	if err := storage.RunMigrations(env.PostgresDSN()); err != nil {
		logrus.WithError(err).Fatal("RunMigrations")
	}
}
