package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageType says what a chat message carries.
type MessageType string

const (
	MessageTypeText       MessageType = "text"
	MessageTypeChart      MessageType = "chart"
	MessageTypeAttachment MessageType = "attachment"
)

// Authors of a chat message.
const (
	AuthorUser      = "user"
	AuthorAssistant = "assistant"
)

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	MessageID uuid.UUID   `json:"message_id" db:"message_id"`
	Author    string      `json:"author" db:"author"`
	Type      MessageType `json:"type" db:"message_type"`
	// Text is empty for non-text messages.
	Text string `json:"text,omitempty" db:"text"`
	// Attachment holds the raw payload of a chart or attachment message.
	Attachment json.RawMessage `json:"attachment,omitempty" db:"attachment"`
	Timestamp  time.Time       `json:"timestamp" db:"created_at"`
}

// IsText reports whether the message is plain text worth forwarding as context.
func (m *ChatMessage) IsText() bool {
	return m != nil && m.Type == MessageTypeText && strings.TrimSpace(m.Text) != ""
}

// NewTextMessage builds a text message stamped with a fresh ID and the current time.
func NewTextMessage(author, text string) *ChatMessage {
	return &ChatMessage{
		MessageID: uuid.New(),
		Author:    author,
		Type:      MessageTypeText,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// Conversation is a stored chat transcript.
type Conversation struct {
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	Title          string    `json:"title" db:"title"`
	// Preview is the text of the latest text message.
	Preview   string         `json:"preview" db:"preview"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	Messages  []*ChatMessage `json:"messages"`
}

// LatestText returns the text of the newest text message, or "" if there is none.
func (c *Conversation) LatestText() string {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].IsText() {
			return c.Messages[i].Text
		}
	}
	return ""
}
