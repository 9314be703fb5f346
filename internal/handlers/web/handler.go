// Package web exposes a small read-only JSON API over the tracker service,
// for dashboards and widgets that poll BAC state outside Discord.
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/soberline/soberline/internal/models"
	"github.com/soberline/soberline/internal/services/tracker"
)

// Handler serves the HTTP API
type Handler struct {
	trackerService tracker.Service
}

// Config holds the configuration for the HTTP handler
type Config struct {
	// Tracker service
	TrackerService tracker.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	return &Handler{
		trackerService: cfg.TrackerService,
	}, nil
}

// Router builds the chi router for the API
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1/users/{userID}", func(ur chi.Router) {
		ur.Get("/status", h.getStatus)
		ur.Get("/curve", h.getCurve)
	})

	return r
}

type statusResponse struct {
	CurrentBAC       float64 `json:"current_bac"`
	TimeUntilLegalMs int64   `json:"time_until_legal_ms"`
	TimeUntilSoberMs int64   `json:"time_until_sober_ms"`
	OverLimit        bool    `json:"over_limit"`
	DrinkCount       int     `json:"drink_count"`
	SessionCleared   bool    `json:"session_cleared"`
	LegalLimit       float64 `json:"legal_limit"`
}

type sampleResponse struct {
	Time   time.Time `json:"time"`
	Level  float64   `json:"level"`
	IsPeak bool      `json:"is_peak"`
}

type curveResponse struct {
	Samples    []sampleResponse `json:"samples"`
	LegalLimit float64          `json:"legal_limit"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	output, err := h.trackerService.GetStatus(r.Context(), &tracker.GetStatusInput{
		UserID: userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		CurrentBAC:       output.CurrentBAC,
		TimeUntilLegalMs: output.TimeUntilLegal.Milliseconds(),
		TimeUntilSoberMs: output.TimeUntilSober.Milliseconds(),
		OverLimit:        output.OverLimit,
		DrinkCount:       output.DrinkCount,
		SessionCleared:   output.SessionCleared,
		LegalLimit:       output.Profile.LegalLimitPercent,
	})
}

func (h *Handler) getCurve(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	output, err := h.trackerService.GetCurve(r.Context(), &tracker.GetCurveInput{
		UserID: userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, curveResponse{
		Samples:    toSampleResponses(output.Samples),
		LegalLimit: output.Profile.LegalLimitPercent,
	})
}

func toSampleResponses(samples []models.Sample) []sampleResponse {
	out := make([]sampleResponse, 0, len(samples))
	for _, sample := range samples {
		out = append(out, sampleResponse{
			Time:   sample.Time,
			Level:  sample.Level,
			IsPeak: sample.IsPeak,
		})
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	var trackerErr tracker.TrackerError
	if errors.As(err, &trackerErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: trackerErr.Error()})
		return
	}

	log.Printf("Internal error serving request: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
