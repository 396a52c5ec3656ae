package app

import (
	"fmt"
	"log/slog"
	"net/http"

	menuhandler "cafepos/internal/handlers/menu"
	orderhandler "cafepos/internal/handlers/orders"
	poshandler "cafepos/internal/handlers/pos"
	summaryhandler "cafepos/internal/handlers/summary"
	"cafepos/internal/notifier"
	"cafepos/internal/routes"
	menuservice "cafepos/internal/service/menu"
	orderservice "cafepos/internal/service/orders"
	posservice "cafepos/internal/service/pos"
	summaryservice "cafepos/internal/service/summary"
	"cafepos/internal/store/memory"
)

type App struct {
	log     *slog.Logger
	port    int
	storage *memory.Storage
}

func New(log *slog.Logger, port int, storage *memory.Storage) *App {
	return &App{
		log:     log,
		port:    port,
		storage: storage,
	}
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "app.Run"

	toasts := notifier.NewLogNotifier(a.log)

	posSession := posservice.New(a.log, a.storage, a.storage, toasts)
	menuSvc := menuservice.New(a.log, a.storage)
	orderSvc := orderservice.New(a.log, a.storage)
	summarySvc := summaryservice.New(a.log, a.storage)

	mux := http.NewServeMux()
	r := routes.New(
		poshandler.New(a.log, posSession),
		menuhandler.New(a.log, menuSvc),
		orderhandler.New(a.log, orderSvc),
		summaryhandler.New(a.log, summarySvc),
	)
	r.Register(mux)

	a.log.Info("starting http server", slog.Int("port", a.port))

	if err := http.ListenAndServe(
		fmt.Sprintf(":%d", a.port),
		mux,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
