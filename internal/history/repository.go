package history

//go:generate mockgen -destination=./repository_mock_test.go -package=history -source=repository.go Repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"chart-assist/internal/domain"

	"github.com/google/uuid"
)

// Repository is the interface for all conversation storage operations.
type Repository interface {
	// List returns every conversation, newest first.
	List(ctx context.Context) ([]*domain.Conversation, error)
	// Get finds a conversation by its ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	// Create stores a new conversation ahead of the existing ones.
	Create(ctx context.Context, conv *domain.Conversation) error
	// Update replaces the title, preview and messages of a stored conversation.
	Update(ctx context.Context, conv *domain.Conversation) error
	// Delete removes a conversation.
	Delete(ctx context.Context, id uuid.UUID) error
}

// fileRepository keeps all conversations in a single JSON document,
// newest first. Every operation reads, modifies and rewrites the file.
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository is the constructor for the JSON file repository.
// The file and its directory are created on the first write.
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

func (fr *fileRepository) load() ([]*domain.Conversation, error) {
	data, err := os.ReadFile(fr.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*domain.Conversation{}, nil
		}
		return nil, fmt.Errorf("could not read history file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.Conversation{}, nil
	}

	var convs []*domain.Conversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, fmt.Errorf("could not decode history file: %w", err)
	}
	return convs, nil
}

// save writes to a temp file and renames it so a crash never leaves half a document.
func (fr *fileRepository) save(convs []*domain.Conversation) error {
	data, err := json.MarshalIndent(convs, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode history: %w", err)
	}

	dir := filepath.Dir(fr.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("could not create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), fr.path); err != nil {
		return fmt.Errorf("could not replace history file: %w", err)
	}
	return nil
}

func indexOf(convs []*domain.Conversation, id uuid.UUID) int {
	for i, c := range convs {
		if c.ConversationID == id {
			return i
		}
	}
	return -1
}

// List implements the Repository interface.
func (fr *fileRepository) List(ctx context.Context) ([]*domain.Conversation, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.load()
}

// Get implements the Repository interface.
func (fr *fileRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	convs, err := fr.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(convs, id)
	if i < 0 {
		return nil, domain.ErrConversationNotFound
	}
	return convs[i], nil
}

// Create implements the Repository interface.
func (fr *fileRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	convs, err := fr.load()
	if err != nil {
		return err
	}
	if indexOf(convs, conv.ConversationID) >= 0 {
		return fmt.Errorf("conversation %s already exists", conv.ConversationID)
	}
	return fr.save(append([]*domain.Conversation{conv}, convs...))
}

// Update implements the Repository interface.
func (fr *fileRepository) Update(ctx context.Context, conv *domain.Conversation) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	convs, err := fr.load()
	if err != nil {
		return err
	}
	i := indexOf(convs, conv.ConversationID)
	if i < 0 {
		return domain.ErrConversationNotFound
	}
	convs[i] = conv
	return fr.save(convs)
}

// Delete implements the Repository interface.
func (fr *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	convs, err := fr.load()
	if err != nil {
		return err
	}
	i := indexOf(convs, id)
	if i < 0 {
		return domain.ErrConversationNotFound
	}
	return fr.save(append(convs[:i], convs[i+1:]...))
}
