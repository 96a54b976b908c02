package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"staffdesk.com/staffdesk/console"
	"staffdesk.com/staffdesk/infrastructure/devops"
	"staffdesk.com/staffdesk/infrastructure/observability"
	"staffdesk.com/staffdesk/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := devops.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, err := session.NewStore()
	if err != nil {
		log.Fatal(err)
	}

	app := console.NewApp(cfg, logger, store, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
