package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "ledger-server",
		Usage: "categorized transaction ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "optional YAML config file",
				EnvVars: []string{config.ConfigFileEnv},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP tool server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-migrate",
						Usage: "do not apply schema migrations on start-up",
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply schema migrations and exit",
				Action: migrateOnly,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("ledger-server")
	}
}

func loadConfig(c *cli.Context) (*config.Config, *logrus.Logger, error) {
	envConfig, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	return envConfig, logging.SetupLogging(envConfig.Log.Level), nil
}

func migrateOnly(c *cli.Context) error {
	envConfig, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	return storage.RunMigrations(envConfig.PostgresDSN())
}

func serve(c *cli.Context) error {
	envConfig, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger.Info("ledger-server starting")

	if !c.Bool("skip-migrate") {
		if err := storage.RunMigrations(envConfig.PostgresDSN()); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.Operator.Workers, envConfig.Operator.QueueSize, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.Store.Timeout)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Server.Port,
		Service: svc,
		Storage: dbStorage,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpRest.Serve(groupCtx)
	})

	err = group.Wait()
	logger.Info("ledger-server stopped")
	return err
}

