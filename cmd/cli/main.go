package main

import (
	"context"
	"os"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/buildinfo"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/cli"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/config"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "starting up", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
