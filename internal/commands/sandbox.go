package commands

import (
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/gm3197/CSE437s-group-4/api"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/sandbox"
)

func sandboxCommand() *cli.Command {
	return &cli.Command{
		Name:  "sandbox",
		Usage: "serve an in-memory receipt API for local development",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address, overrides the config"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if c.IsSet("addr") {
				cfg.Sandbox.Addr = c.String("addr")
			}
			logger := logging.SetupLogging(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rest := api.Rest{
				Logger:       logger,
				Addr:         cfg.Sandbox.Addr,
				ReadTimeout:  cfg.Sandbox.ReadTimeout,
				WriteTimeout: cfg.Sandbox.WriteTimeout,
				Store:        sandbox.NewStore(),
			}
			return rest.Serve(ctx)
		},
	}
}
