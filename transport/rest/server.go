package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - builds the HTTP API.
func NewRouter(logger *slog.Logger, matches matchUseCase) http.Handler {
	handlers := NewHandlers(logger, matches)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/move", handlers.SuggestMove)

		r.Post("/matches", handlers.PlayMatch)
		r.Get("/matches/{id}", handlers.GetMatch)
		r.Delete("/matches/{id}", handlers.DeleteMatch)

		r.Post("/tournaments", handlers.RunTournament)

		r.Get("/score", handlers.GetScore)
		r.Delete("/score", handlers.ResetScore)
	})

	return router
}

// Start - serves handler on port until ctx is cancelled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
