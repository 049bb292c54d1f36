// Package server is the thin HTTP layer over the runner registry. It
// only decodes query parameters, dispatches to a source, and encodes
// the result; all domain behavior lives behind the source interfaces.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"vortex-source/source"
)

type Server struct {
	registry *source.Registry
}

func New(registry *source.Registry) *Server {
	return &Server{registry: registry}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/runners", s.handleRunners)
	r.Get("/popular", s.handlePopular)
	r.Get("/search", s.handleSearch)
	r.Get("/chapters", s.handleChapters)
	r.Get("/pages", s.handlePages)
	r.Get("/content", s.handleContent)
	r.Get("/sections", s.handleSections)
	r.Get("/section", s.handleSection)

	return r
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Run(cfg Config) error {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
		log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// badRequest answers missing or malformed request parameters with an
// empty body, matching what runner clients expect.
func badRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, struct{}{})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, source.ErrPageNotFound) || errors.Is(err, source.ErrUnknownSection) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
