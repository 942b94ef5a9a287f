// Package commands is the command line front end of the receipt client.
package commands

import (
	"github.com/urfave/cli/v2"
)

// NewApp builds the receiptme command tree.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "receiptme",
		Usage: "manage scanned receipts, their items and spending categories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
				EnvVars: []string{"RECEIPTME_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "API base URL, overrides the config",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level, overrides the config",
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			receiptsCommand(),
			itemsCommand(),
			categoriesCommand(),
			sandboxCommand(),
		},
	}
}
