package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/commands"
)

func main() {
	if err := commands.NewApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("receiptme")
	}
}
