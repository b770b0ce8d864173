package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/visionai/console/internal/buildinfo"
	"github.com/visionai/console/internal/client/cli"
	"github.com/visionai/console/internal/client/config"
	"github.com/visionai/console/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
