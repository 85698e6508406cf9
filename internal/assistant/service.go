package assistant

//go:generate mockgen -destination=./service_mock_test.go -package=assistant -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"chart-assist/internal/chart"
	"chart-assist/internal/config"
	"chart-assist/internal/domain"

	"github.com/google/uuid"
)

// noResponseReply is returned when the backend answers without any text.
const noResponseReply = "No response generated."

// ErrHistoryUnavailable is returned by Converse when no conversation store is wired.
var ErrHistoryUnavailable = errors.New("conversation store is not available")

// ChartSource says which path produced a chart.
type ChartSource string

const (
	// SourceModel is a config parsed from the model's reply.
	SourceModel ChartSource = "model"
	// SourceOffline is a synthesized config because the backend is not configured.
	SourceOffline ChartSource = "offline"
	// SourceFallback is a synthesized config after the model path failed.
	SourceFallback ChartSource = "fallback"
)

// ChartResult is a chart config together with where it came from.
type ChartResult struct {
	Source ChartSource   `json:"source"`
	Config *chart.Config `json:"config"`
}

// Exchange is the pair of messages one conversation turn adds.
type Exchange struct {
	User      *domain.ChatMessage `json:"user"`
	Assistant *domain.ChatMessage `json:"assistant"`
}

// Service defines the business logic for the chart assistant.
type Service interface {
	// Interpret sends the prompt to the backend and returns its reply. It never
	// fails: any problem yields the offline response instead.
	Interpret(ctx context.Context, prompt string, history []*domain.ChatMessage) string

	// GenerateChart asks the backend for a chart config and falls back to the
	// synthesized archetype when it can't get a valid one.
	GenerateChart(ctx context.Context, prompt string, history []*domain.ChatMessage) *ChartResult

	// Converse runs one turn of a stored conversation and saves both messages.
	Converse(ctx context.Context, conversationID uuid.UUID, prompt string) (*Exchange, error)

	// CredentialValid reports whether remote calls are attempted at all.
	CredentialValid() bool
}

// service is the concrete implementation of the Service interface.
type service struct {
	client  CompletionClient // nil when running offline
	history HistoryClient    // optional
}

// NewService is the constructor for the assistant. A nil client runs it offline.
func NewService(client CompletionClient, history HistoryClient) Service {
	return &service{
		client:  client,
		history: history,
	}
}

// NewServiceFromConfig builds the completion client once and decides whether
// the assistant goes online. Failures are logged here and leave it offline.
// The returned func releases the client and must be called on shutdown.
func NewServiceFromConfig(ctx context.Context, b config.Backend, history HistoryClient) (Service, func() error) {
	client, err := NewCompletionClient(ctx, b)
	if err != nil {
		if errors.Is(err, ErrConfigurationInvalid) {
			slog.Warn("completion backend not configured, running offline", "provider", b.Provider)
		} else {
			slog.Error("failed to initialize completion client, running offline", "provider", b.Provider, "error", err)
		}
		return NewService(nil, history), func() error { return nil }
	}

	closeClient := func() error { return nil }
	if c, ok := client.(io.Closer); ok {
		closeClient = c.Close
	}
	return NewService(client, history), closeClient
}

// CredentialValid implements the Service interface.
func (s *service) CredentialValid() bool {
	return s.client != nil
}

// Interpret implements the Service interface.
func (s *service) Interpret(ctx context.Context, prompt string, history []*domain.ChatMessage) string {
	wrapped := BuildChartPrompt(prompt)

	if s.client == nil {
		return OfflineResponse(wrapped)
	}

	resp, err := s.client.Complete(ctx, buildMessages(wrapped, history))
	if err != nil {
		slog.Error("completion request failed, using offline response", "error", err)
		return OfflineResponse(wrapped)
	}

	text, ok := resp.FirstText()
	if !ok {
		return noResponseReply
	}
	return text
}

// GenerateChart implements the Service interface.
func (s *service) GenerateChart(ctx context.Context, prompt string, history []*domain.ChatMessage) *ChartResult {
	if s.client == nil {
		return &ChartResult{Source: SourceOffline, Config: chart.Synthesize(prompt)}
	}

	resp, err := s.client.Complete(ctx, buildMessages(BuildChartPrompt(prompt), history))
	if err != nil {
		slog.Error("chart completion failed, synthesizing", "error", err)
		return fallbackChart(prompt)
	}

	text, ok := resp.FirstText()
	if !ok {
		slog.Warn("chart completion was empty, synthesizing")
		return fallbackChart(prompt)
	}

	cfg, err := chart.ParseConfig(text)
	if err != nil {
		slog.Warn("model reply is not a usable chart config, synthesizing", "error", err)
		return fallbackChart(prompt)
	}
	return &ChartResult{Source: SourceModel, Config: cfg}
}

// Converse implements the Service interface.
func (s *service) Converse(ctx context.Context, conversationID uuid.UUID, prompt string) (*Exchange, error) {
	if s.history == nil {
		return nil, ErrHistoryUnavailable
	}

	conv, err := s.history.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("could not load conversation: %w", err)
	}

	reply := s.Interpret(ctx, prompt, conv.Messages)

	exchange := &Exchange{
		User:      domain.NewTextMessage(domain.AuthorUser, prompt),
		Assistant: domain.NewTextMessage(domain.AuthorAssistant, reply),
	}
	if _, err := s.history.AppendMessages(ctx, conversationID, exchange.User, exchange.Assistant); err != nil {
		return nil, fmt.Errorf("could not save exchange: %w", err)
	}
	return exchange, nil
}

// buildMessages lays out the backend request: the system instruction, then
// prior text turns in order as assistant context, then the wrapped prompt.
func buildMessages(wrapped string, history []*domain.ChatMessage) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: systemInstruction})
	for _, m := range history {
		if !m.IsText() {
			continue
		}
		messages = append(messages, Message{Role: RoleAssistant, Content: m.Text})
	}
	return append(messages, Message{Role: RoleUser, Content: wrapped})
}

func fallbackChart(prompt string) *ChartResult {
	return &ChartResult{Source: SourceFallback, Config: chart.Synthesize(prompt)}
}
