package main

import (
	"context"
	"os/signal"
	"syscall"

	"agenda/config"
	"agenda/di"
	"agenda/shared/logger"
	"agenda/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	go worker.Run(ctx)

	http := di.InitializeService()
	http.Serve()
}
