package assistant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"chart-assist/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler is the HTTP API layer for the assistant.
type Handler struct {
	service Service
}

// NewHandler creates a new handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches all assistant endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/interpret", h.handleInterpret)
	r.Post("/chat/chart", h.handleChart)
	r.Post("/chat/conversations/{id}", h.handleConverse)
	r.Get("/chat/ws", h.handleWebSocket)
}

// --- DTOs ---

type promptRequest struct {
	Prompt  string                `json:"prompt"`
	History []*domain.ChatMessage `json:"history"`
}

type interpretResponse struct {
	Reply   string `json:"reply"`
	Offline bool   `json:"offline"`
}

type converseRequest struct {
	Prompt string `json:"prompt"`
}

const (
	modeText  = "text"
	modeChart = "chart"
)

type wsFrame struct {
	Mode    string                `json:"mode"`
	Prompt  string                `json:"prompt"`
	History []*domain.ChatMessage `json:"history"`
}

type wsReply struct {
	Reply string `json:"reply"`
}

type wsError struct {
	Error string `json:"error"`
}

// --- Handlers ---

func (h *Handler) handleInterpret(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePrompt(w, r)
	if !ok {
		return
	}

	reply := h.service.Interpret(r.Context(), req.Prompt, req.History)
	writeJSON(w, http.StatusOK, interpretResponse{
		Reply:   reply,
		Offline: !h.service.CredentialValid(),
	})
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePrompt(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.GenerateChart(r.Context(), req.Prompt, req.History))
}

// handleConverse runs one turn against a stored conversation, eg POST /chat/conversations/{id}
func (h *Handler) handleConverse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid conversation id format")
		return
	}

	var req converseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	exchange, err := h.service.Converse(r.Context(), id, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConversationNotFound):
			writeError(w, http.StatusNotFound, "Conversation not found")
		case errors.Is(err, ErrHistoryUnavailable):
			writeError(w, http.StatusServiceUnavailable, "Conversation store is not available")
		default:
			slog.Error("converse failed", "conversation_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Could not process message")
		}
		return
	}

	writeJSON(w, http.StatusOK, exchange)
}

// handleWebSocket answers each frame on the connection in turn until the
// client goes away.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		var frame wsFrame
		if err := conn.ReadJSON(&frame); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				if err := conn.WriteJSON(wsError{Error: "Invalid frame"}); err != nil {
					return
				}
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("websocket read ended", "error", err)
			}
			return
		}

		var out any
		switch {
		case strings.TrimSpace(frame.Prompt) == "":
			out = wsError{Error: "Prompt is required"}
		case frame.Mode == modeChart:
			out = h.service.GenerateChart(ctx, frame.Prompt, frame.History)
		case frame.Mode == modeText || frame.Mode == "":
			out = wsReply{Reply: h.service.Interpret(ctx, frame.Prompt, frame.History)}
		default:
			out = wsError{Error: "Unknown mode"}
		}

		if err := conn.WriteJSON(out); err != nil {
			slog.Warn("websocket write failed", "error", err)
			return
		}
	}
}

func decodePrompt(w http.ResponseWriter, r *http.Request) (*promptRequest, bool) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return nil, false
	}
	return &req, true
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
