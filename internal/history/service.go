package history

//go:generate mockgen -destination=./service_mock_test.go -package=history -source=service.go Service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"chart-assist/internal/domain"

	"github.com/google/uuid"
)

const (
	defaultTitle   = "New conversation"
	maxTitleLength = 60
)

// Service defines the business logic for stored conversations.
type Service interface {
	StartConversation(ctx context.Context, title string) (*domain.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	ListConversations(ctx context.Context) ([]*domain.Conversation, error)
	// AppendMessages adds messages to the end of a conversation and returns the updated conversation.
	AppendMessages(ctx context.Context, id uuid.UUID, msgs ...*domain.ChatMessage) (*domain.Conversation, error)
	DeleteConversation(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	// mu serializes the get-append-update cycle so concurrent turns don't drop messages.
	mu sync.Mutex
}

// NewService is the constructor for the conversation service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// StartConversation creates an empty conversation.
func (s *service) StartConversation(ctx context.Context, title string) (*domain.Conversation, error) {
	conv := &domain.Conversation{
		ConversationID: uuid.New(),
		Title:          normalizeTitle(title),
		CreatedAt:      time.Now().UTC(),
		Messages:       []*domain.ChatMessage{},
	}

	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("could not create conversation: %w", err)
	}
	return conv, nil
}

// GetConversation returns one conversation with its messages.
func (s *service) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}
	return conv, nil
}

// ListConversations returns every conversation, newest first.
func (s *service) ListConversations(ctx context.Context) ([]*domain.Conversation, error) {
	convs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	return convs, nil
}

// AppendMessages implements the Service interface. Messages without an ID or
// timestamp get one, and the preview follows the latest text message.
func (s *service) AppendMessages(ctx context.Context, id uuid.UUID, msgs ...*domain.ChatMessage) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}

	now := time.Now().UTC()
	for _, m := range msgs {
		if m == nil {
			continue
		}
		if m.MessageID == uuid.Nil {
			m.MessageID = uuid.New()
		}
		if m.Timestamp.IsZero() {
			m.Timestamp = now
		}
		if m.Type == "" {
			m.Type = domain.MessageTypeText
		}
		conv.Messages = append(conv.Messages, m)
	}
	if preview := conv.LatestText(); preview != "" {
		conv.Preview = preview
	}

	if err := s.repo.Update(ctx, conv); err != nil {
		return nil, fmt.Errorf("could not save conversation: %w", err)
	}
	return conv, nil
}

// DeleteConversation removes a conversation and its messages.
func (s *service) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("could not delete conversation: %w", err)
	}
	return nil
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return defaultTitle
	}
	if r := []rune(title); len(r) > maxTitleLength {
		return strings.TrimSpace(string(r[:maxTitleLength]))
	}
	return title
}
