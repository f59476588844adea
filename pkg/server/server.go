package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ventas-tools/sales-atlas/pkg/handlers/report"
	salesmiddleware "github.com/ventas-tools/sales-atlas/pkg/server/middleware"
)

type WebAPI struct {
	router          *chi.Mux
	shutdownTimeout time.Duration
	logger          *zerolog.Logger
	server          *http.Server
}

type Dependencies struct {
	Reports *report.Handler
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	h := config.Dependencies.Reports

	router := chi.NewRouter()

	router.Use(salesmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/reports", func(r chi.Router) {
		r.Get("/monthly", h.Monthly)
		r.Get("/products", h.Products)
		r.Get("/weekly", h.Weekly)
	})
	router.Get("/charts/monthly.svg", h.MonthlyChart)

	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router:          router,
		shutdownTimeout: config.ShutdownTimeout,
		logger:          &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
