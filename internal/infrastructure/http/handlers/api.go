// Package handlers provides the JSON handlers for the REST API boundary.
// Handlers validate input, delegate to the inbound port and translate
// application errors; no business logic lives here.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/inbound"
	apperrors "github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

// APIHandlers handles REST API requests.
type APIHandlers struct {
	service  inbound.RecommendationService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAPIHandlers creates the API handlers.
func NewAPIHandlers(service inbound.RecommendationService, logger *zap.Logger) *APIHandlers {
	return &APIHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("api"),
	}
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError is the externally visible error shape.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type recommendRequest struct {
	Text string `json:"text" validate:"required"`
}

type locationRequest struct {
	Location string `json:"location" validate:"required,min=2"`
}

type preferenceRequest struct {
	Mood string `json:"mood" validate:"required"`
	Food string `json:"food" validate:"required"`
}

// Recommend maps mood text to food recommendations.
// POST /api/v1/recommendations
func (h *APIHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	// Best-effort audit of the raw request; failures never block the
	// recommendation itself.
	if err := h.service.LogRequest(r.Context(), map[string]any{
		"endpoint": r.URL.Path,
		"text":     req.Text,
	}); err != nil {
		h.logger.Warn("request audit failed", zap.Error(err))
	}

	recommendation, err := h.service.Recommend(r.Context(), req.Text)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, recommendation)
}

// GetProfile returns the current profile view.
// GET /api/v1/profile
func (h *APIHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Profile(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

// UpdateLocation validates and stores a new location.
// PUT /api/v1/profile/location
func (h *APIHandlers) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.SetLocation(r.Context(), req.Location); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"location": req.Location})
}

// UpdatePreference records a liked food for a mood.
// POST /api/v1/profile/preferences
func (h *APIHandlers) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	var req preferenceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdatePreference(r.Context(), mood.Mood(req.Mood), req.Food); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"mood": req.Mood, "food": req.Food})
}

// ToggleWeather flips weather-based recommendations.
// POST /api/v1/profile/weather/toggle
func (h *APIHandlers) ToggleWeather(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.service.ToggleWeather(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"weather_enabled": enabled})
}

// LogRequest appends an arbitrary JSON payload to the audit log.
// POST /api/v1/audit
func (h *APIHandlers) LogRequest(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, apperrors.NewValidationError("request body must be a JSON object"))
		return
	}

	if err := h.service.LogRequest(r.Context(), payload); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// Health reports liveness.
// GET /health
func (h *APIHandlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *APIHandlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, apperrors.NewValidationError("malformed JSON body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondError(w, apperrors.NewValidationError(err.Error()))
		return false
	}
	return true
}

func (h *APIHandlers) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("encoding response failed", zap.Error(err))
	}
}

func (h *APIHandlers) respondError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)
	h.logger.Warn("request failed",
		zap.String("code", string(appErr.Code)),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    string(appErr.Code),
			Message: appErr.Message,
		},
	})
}
