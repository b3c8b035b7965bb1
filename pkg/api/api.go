// Package api exposes the readiness engine over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ripixel/readiness/pkg/cache"
	"github.com/ripixel/readiness/pkg/infrastructure/sentry"
	"github.com/ripixel/readiness/pkg/recovery"
	"github.com/ripixel/readiness/pkg/types"
)

// ReadinessService is the slice of the cache service the handlers need.
type ReadinessService interface {
	Get(ctx context.Context, userID string, date types.Date) (*cache.Result, error)
	Recalculate(ctx context.Context, userID string, date types.Date) (*cache.Result, error)
	InvalidateFrom(userID string, date types.Date) int
}

type Handler struct {
	Service ReadinessService
	Logger  *slog.Logger
}

func NewHandler(svc ReadinessService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Service: svc, Logger: logger}
}

// Router wires the public surface.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Get("/recovery/{date}", h.GetRecovery)
		r.Post("/recovery/{date}/recalculate", h.Recalculate)
		r.Post("/invalidate/{date}", h.Invalidate)
	})
	return r
}

// errorResponse is the JSON body for every non-2xx status.
type errorResponse struct {
	Error         string `json:"error"`
	DaysAvailable *int   `json:"days_available,omitempty"`
	DaysRequired  *int   `json:"days_required,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetRecovery(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	result, err := h.Service.Get(r.Context(), userID, date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	result, err := h.Service.Recalculate(r.Context(), userID, date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Invalidate(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	removed := h.Service.InvalidateFrom(userID, date)
	h.Logger.Debug("cache invalidated via API", "user_id", userID, "date", date, "entries_removed", removed)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathParams(w http.ResponseWriter, r *http.Request) (string, types.Date, bool) {
	userID := chi.URLParam(r, "userID")
	date, err := types.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be formatted YYYY-MM-DD"})
		return "", "", false
	}
	return userID, date, true
}

// writeError maps engine errors onto HTTP statuses. Missing history is a
// retryable condition, so it reports 503 rather than a client error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var insufficientHistory *recovery.InsufficientHistoryError
	if errors.As(err, &insufficientHistory) {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:         insufficientHistory.Error(),
			DaysAvailable: &insufficientHistory.DaysAvailable,
			DaysRequired:  &insufficientHistory.DaysRequired,
		})
		return
	}

	var malformed *recovery.MalformedMetricError
	var insufficientMetrics *recovery.InsufficientMetricsError
	if errors.As(err, &malformed) || errors.As(err, &insufficientMetrics) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	h.Logger.Error("request failed", "error", err, "path", r.URL.Path)
	sentry.CaptureException(err, map[string]interface{}{"path": r.URL.Path}, h.Logger)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
