package main

import (
	"context"

	"github.com/mvolkova/taskquest/internal/client/cli"
	"github.com/mvolkova/taskquest/internal/client/config"
	"github.com/mvolkova/taskquest/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app := cli.NewApp(cfg, logger)
	app.Run(context.Background())
}
