package chart

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler is the http api layer for the offline chart endpoints.
type Handler struct{}

// NewHandler creates a new chart handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the chart endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chart/synthesize", h.handleSynthesize)
	r.Post("/chart/validate", h.handleValidate)
}

// --- DTOs ---

type synthesizeRequest struct {
	Prompt string `json:"prompt"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// --- Handlers ---

// handleSynthesize returns the sample chart matching the prompt.
func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	writeJSON(w, http.StatusOK, Synthesize(req.Prompt))
}

// handleValidate checks a chart config without rendering it.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var cfg Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := cfg.Validate(); err != nil {
		writeJSON(w, http.StatusOK, validateResponse{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: true})
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
