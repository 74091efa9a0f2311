package main

import (
	"fmt"
	"os"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/database"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/server"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/snowflake"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "오성고 학교 포털 API 서버",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "config file path",
				EnvVars: []string{"APP_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := load(ctx)
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					cfg := load(ctx)
					db := database.NewDB(cfg)
					if err := models.AutoMigrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func load(ctx *cli.Context) *config.Config {
	cfg := config.New(ctx.String("config"))
	log.SetDebug(cfg.Debug())
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid snowflake node", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}
	return cfg
}
