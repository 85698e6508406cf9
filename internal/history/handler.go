package history

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"chart-assist/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler is the HTTP API layer for stored conversations.
type Handler struct {
	service Service
}

// NewHandler creates a new handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches all conversation endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/conversations", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleStart)
		r.Get("/{id}", h.handleGet)
		r.Post("/{id}/messages", h.handleAppend)
		r.Delete("/{id}", h.handleDelete)
	})
}

// --- DTOs ---

type startRequest struct {
	Title string `json:"title"`
}

type appendRequest struct {
	Messages []*domain.ChatMessage `json:"messages"`
}

// --- Handlers ---

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	convs, err := h.service.ListConversations(r.Context())
	if err != nil {
		slog.Error("list conversations failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not list conversations")
		return
	}
	writeJSON(w, http.StatusOK, convs)
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	conv, err := h.service.StartConversation(r.Context(), req.Title)
	if err != nil {
		slog.Error("start conversation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not create conversation")
		return
	}
	writeJSON(w, http.StatusCreated, conv)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	conv, err := h.service.GetConversation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Could not fetch conversation")
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (h *Handler) handleAppend(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req appendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "At least one message is required")
		return
	}

	conv, err := h.service.AppendMessages(r.Context(), id, req.Messages...)
	if err != nil {
		writeServiceError(w, err, "Could not save messages")
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteConversation(r.Context(), id); err != nil {
		writeServiceError(w, err, "Could not delete conversation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid conversation id format")
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, domain.ErrConversationNotFound) {
		writeError(w, http.StatusNotFound, "Conversation not found")
		return
	}
	slog.Error(message, "error", err)
	writeError(w, http.StatusInternalServerError, message)
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
