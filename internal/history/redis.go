package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chart-assist/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "chartassist:conversation:"
	redisIndexKey  = "chartassist:conversations"
)

// redisRepository stores each conversation as one JSON value and keeps a
// sorted set of IDs scored by creation time for listing.
type redisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository is the constructor for the Redis repository.
func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

// OpenRedis parses the URL and checks the server answers.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return rdb, nil
}

func conversationKey(id uuid.UUID) string {
	return redisKeyPrefix + id.String()
}

// List implements the Repository interface.
func (rr *redisRepository) List(ctx context.Context) ([]*domain.Conversation, error) {
	ids, err := rr.rdb.ZRevRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("could not read conversation index: %w", err)
	}

	convs := []*domain.Conversation{}
	if len(ids) == 0 {
		return convs, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisKeyPrefix + id
	}
	values, err := rr.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("could not load conversations: %w", err)
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// Indexed but the value is gone.
			continue
		}
		conv, err := decodeConversation(s)
		if err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}
	return convs, nil
}

// Get implements the Repository interface.
func (rr *redisRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	s, err := rr.rdb.Get(ctx, conversationKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}
	return decodeConversation(s)
}

// Create implements the Repository interface.
func (rr *redisRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("could not encode conversation: %w", err)
	}

	_, err = rr.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, conversationKey(conv.ConversationID), data, 0)
		pipe.ZAdd(ctx, redisIndexKey, redis.Z{
			Score:  float64(conv.CreatedAt.UnixMilli()),
			Member: conv.ConversationID.String(),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not store conversation: %w", err)
	}
	return nil
}

// Update implements the Repository interface.
func (rr *redisRepository) Update(ctx context.Context, conv *domain.Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("could not encode conversation: %w", err)
	}

	ok, err := rr.rdb.SetXX(ctx, conversationKey(conv.ConversationID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("could not update conversation: %w", err)
	}
	if !ok {
		return domain.ErrConversationNotFound
	}
	return nil
}

// Delete implements the Repository interface.
func (rr *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var del *redis.IntCmd
	_, err := rr.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, conversationKey(id))
		pipe.ZRem(ctx, redisIndexKey, id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not delete conversation: %w", err)
	}
	if del.Val() == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func decodeConversation(s string) (*domain.Conversation, error) {
	conv := &domain.Conversation{}
	if err := json.Unmarshal([]byte(s), conv); err != nil {
		return nil, fmt.Errorf("could not decode conversation: %w", err)
	}
	if conv.Messages == nil {
		conv.Messages = []*domain.ChatMessage{}
	}
	return conv, nil
}
