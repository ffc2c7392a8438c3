package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mbs-dev/blogctl/internal/buildinfo"
	"github.com/mbs-dev/blogctl/internal/client/cli"
	"github.com/mbs-dev/blogctl/internal/client/config"
	"github.com/mbs-dev/blogctl/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
