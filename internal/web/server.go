package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"date-topics/internal/notify"
	"date-topics/internal/storage"
	"date-topics/internal/timeslot"
)

// Batch runs the full generation pass for today.
type Batch interface {
	GenerateAll(ctx context.Context) error
}

// Pusher runs the read-format-dispatch path for the current slot.
type Pusher interface {
	Notify(ctx context.Context) error
}

// Server exposes the on-demand endpoints. Transport only: every semantic
// lives in the components it delegates to.
type Server struct {
	batch  Batch
	pusher Pusher
	repo   storage.Repository
	clock  *timeslot.Clock
}

func New(batch Batch, pusher Pusher, repo storage.Repository, clock *timeslot.Clock) *Server {
	return &Server{batch: batch, pusher: pusher, repo: repo, clock: clock}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/generate-topics", s.handleGenerate)
	r.Post("/notify", s.handleNotify)
	r.Get("/topics", s.handleCurrentTopics)
	r.Get("/topics/{slot}", s.handleSlotTopics)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := s.batch.GenerateAll(r.Context()); err != nil {
		httpError(w, http.StatusInternalServerError, "generation_error", "topic generation failed: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Topics generated for all time slots"})
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	err := s.pusher.Notify(r.Context())
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
		return
	}
	var de *notify.DeliveryError
	if errors.As(err, &de) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message":         "webhook delivery failed",
				"type":            "delivery_error",
				"upstream_status": de.Status,
				"upstream_body":   de.Body,
			},
		})
		return
	}
	httpError(w, http.StatusInternalServerError, "notify_error", "notification failed: %v", err)
}

func (s *Server) handleCurrentTopics(w http.ResponseWriter, r *http.Request) {
	date, slot := s.clock.Current()
	s.renderTopics(w, r, date, slot)
}

func (s *Server) handleSlotTopics(w http.ResponseWriter, r *http.Request) {
	slot, ok := timeslot.Parse(chi.URLParam(r, "slot"))
	if !ok {
		// Unknown labels behave exactly like a slot with no data.
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "No topics found for this time slot"})
		return
	}
	date, _ := s.clock.Current()
	s.renderTopics(w, r, date, slot)
}

func (s *Server) renderTopics(w http.ResponseWriter, r *http.Request, date string, slot timeslot.Slot) {
	rec, ok, err := s.repo.Read(r.Context(), date, slot)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "storage_error", "reading topics: %v", err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "No topics found for this time slot"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
