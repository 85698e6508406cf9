package assistant

//go:generate mockgen -destination=./clients_mock_test.go -package=assistant -source=clients.go CompletionClient,HistoryClient

import (
	"context"
	"errors"
	"fmt"

	"chart-assist/internal/config"
	"chart-assist/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrConfigurationInvalid means the backend credentials are missing or still placeholders.
	ErrConfigurationInvalid = errors.New("completion backend is not configured")
	// ErrUnknownProvider is returned for an AI_PROVIDER we have no client for.
	ErrUnknownProvider = errors.New("unknown completion provider")
)

// Role tags who a message sent to the backend comes from.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of a completion request.
type Message struct {
	Role    Role
	Content string
}

// ContentBlock is one piece of a completion. Only text blocks are consumed.
type ContentBlock struct {
	Type string
	Text string
}

// ContentTypeText marks a text content block.
const ContentTypeText = "text"

// CompletionResponse is what a backend returns for one request.
type CompletionResponse struct {
	Model   string
	Content []ContentBlock
}

// FirstText returns the first non-empty text block and whether one exists.
func (r *CompletionResponse) FirstText() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, block := range r.Content {
		if block.Type == ContentTypeText && block.Text != "" {
			return block.Text, true
		}
	}
	return "", false
}

// CompletionClient is the contract for a remote language-model backend.
// Implementations must be safe for concurrent use.
type CompletionClient interface {
	// Complete submits the ordered messages and returns the completion.
	Complete(ctx context.Context, messages []Message) (*CompletionResponse, error)
}

// HistoryClient is the contract for the conversation store the assistant reads and appends to.
type HistoryClient interface {
	GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	AppendMessages(ctx context.Context, id uuid.UUID, msgs ...*domain.ChatMessage) (*domain.Conversation, error)
}

// NewCompletionClient builds the client for the configured provider. It returns
// ErrConfigurationInvalid when the credentials are absent or placeholders.
func NewCompletionClient(ctx context.Context, b config.Backend) (CompletionClient, error) {
	switch b.Provider {
	case "azure", "":
		if !b.AzureConfigured() {
			return nil, fmt.Errorf("azure: %w", ErrConfigurationInvalid)
		}
		client, err := NewAzureClient(b.Endpoint, b.Key, b.Deployment, b.APIVersion, b.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return client, nil

	case "gemini":
		if !b.GeminiConfigured() {
			return nil, fmt.Errorf("gemini: %w", ErrConfigurationInvalid)
		}
		client, err := NewGeminiClient(ctx, b.GeminiKey, b.GeminiModel)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, b.Provider)
	}
}
