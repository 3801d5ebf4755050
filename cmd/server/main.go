package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server"
	"github.com/dmitrijs2005/dilbilim/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
