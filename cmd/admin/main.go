package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/dilbilim/internal/admin"
	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server"
	"github.com/dmitrijs2005/dilbilim/internal/server/config"
)

func main() {

	args := os.Args[1:]
	if admin.IsHelp(args) {
		admin.Usage(os.Stdout)
		return
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	a := admin.NewApp(app.UserService(), app.LanguageService(), os.Stdout)
	if err := a.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		app.Close()
		os.Exit(1)
	}

}
