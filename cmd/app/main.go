package main

import (
	"os"
	"os/signal"
	"syscall"

	"cafepos/internal/app"
	"cafepos/internal/store/memory"
	"cafepos/pkg/config"
	"cafepos/pkg/lib/logger"
	"cafepos/pkg/lib/logger/sl"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, env vars may come from the environment itself
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.SetupLogger(cfg.HTTP.Env)
	if err != nil {
		panic(err)
	}

	var storage *memory.Storage
	if cfg.Catalog.Seed {
		storage = memory.NewSeeded(log)
	} else {
		storage = memory.New(log)
	}

	application := app.New(
		log,
		cfg.HTTP.Port,
		storage,
	)

	go func() {
		if err := application.Run(); err != nil {
			log.Error("Application failed to start", sl.Err(err))
			panic(err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT)
	<-done

	log.Info("Shutting down")
}
