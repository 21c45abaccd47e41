// Package httpserver is the inbound hosting shim: it accepts assistant
// directives over HTTP and hands them to the dispatcher. It contains no
// translation logic of its own.
package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/logging"
	"alexa-cloud-bridge/internal/ports"
)

const maxDirectiveBytes = 1 << 20

type Server struct {
	dispatcher ports.Dispatcher
	logger     *logging.Logger
	server     *http.Server
}

func New(cfg model.ServerConfig, dispatcher ports.Dispatcher, logger *logging.Logger) *Server {
	s := &Server{
		dispatcher: dispatcher,
		logger:     logger.With("component", "httpserver"),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/directive", s.handleDirective)
	r.Get("/healthz", s.handleHealth)

	s.server = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving directives until the listener fails or
// the server is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) handleDirective(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDirectiveBytes))
	if err != nil {
		s.writeEnvelope(w, http.StatusBadRequest,
			model.ErrorEnvelope(model.ErrInvalidDirective.AssistantType(), "unreadable request body", "", ""))
		return
	}

	req, err := model.DecodeRequest(body)
	if err != nil {
		s.logger.Warn("undecodable directive", "error", err.Error())
		s.writeEnvelope(w, http.StatusBadRequest,
			model.ErrorEnvelope(model.ErrInvalidDirective.AssistantType(), "malformed directive", "", ""))
		return
	}

	env := s.dispatcher.Dispatch(r.Context(), &req.Directive)
	s.writeEnvelope(w, http.StatusOK, env)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) writeEnvelope(w http.ResponseWriter, status int, env *model.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		s.logger.Error("writing response", "error", err.Error())
	}
}
