package history

import (
	"context"
	"database/sql"
	"fmt"

	"chart-assist/internal/domain"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// postgresRepository is the Repository backed by the conversations and chat_messages tables.
type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

// OpenPostgres opens a connection pool and checks it can reach the server.
func OpenPostgres(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}
	return db, nil
}

// List implements the Repository interface.
func (pr *postgresRepository) List(ctx context.Context) ([]*domain.Conversation, error) {
	query := `
		SELECT conversation_id, title, preview, created_at
		FROM conversations
		ORDER BY created_at DESC
	`
	rows, err := pr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	defer rows.Close()

	convs := []*domain.Conversation{}
	byID := map[uuid.UUID]*domain.Conversation{}
	for rows.Next() {
		conv := &domain.Conversation{Messages: []*domain.ChatMessage{}}
		if err := rows.Scan(&conv.ConversationID, &conv.Title, &conv.Preview, &conv.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan conversation: %w", err)
		}
		convs = append(convs, conv)
		byID[conv.ConversationID] = conv
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	if len(convs) == 0 {
		return convs, nil
	}

	msgQuery := `
		SELECT conversation_id, message_id, author, message_type, text, attachment, created_at
		FROM chat_messages
		ORDER BY conversation_id, position
	`
	msgRows, err := pr.db.QueryContext(ctx, msgQuery)
	if err != nil {
		return nil, fmt.Errorf("could not list messages: %w", err)
	}
	defer msgRows.Close()

	for msgRows.Next() {
		var convID uuid.UUID
		msg, err := scanMessage(msgRows, &convID)
		if err != nil {
			return nil, err
		}
		if conv, ok := byID[convID]; ok {
			conv.Messages = append(conv.Messages, msg)
		}
	}
	if err := msgRows.Err(); err != nil {
		return nil, fmt.Errorf("could not list messages: %w", err)
	}
	return convs, nil
}

// Get implements the Repository interface.
func (pr *postgresRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	conv := &domain.Conversation{Messages: []*domain.ChatMessage{}}

	query := `
		SELECT conversation_id, title, preview, created_at
		FROM conversations
		WHERE conversation_id = $1
	`
	err := pr.db.QueryRowContext(ctx, query, id).Scan(
		&conv.ConversationID,
		&conv.Title,
		&conv.Preview,
		&conv.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}

	msgQuery := `
		SELECT conversation_id, message_id, author, message_type, text, attachment, created_at
		FROM chat_messages
		WHERE conversation_id = $1
		ORDER BY position
	`
	rows, err := pr.db.QueryContext(ctx, msgQuery, id)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var convID uuid.UUID
		msg, err := scanMessage(rows, &convID)
		if err != nil {
			return nil, err
		}
		conv.Messages = append(conv.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	return conv, nil
}

// Create implements the Repository interface.
func (pr *postgresRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO conversations (conversation_id, title, preview, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, query, conv.ConversationID, conv.Title, conv.Preview, conv.CreatedAt); err != nil {
		return fmt.Errorf("could not insert conversation: %w", err)
	}
	if err := insertMessages(ctx, tx, conv); err != nil {
		return err
	}
	return tx.Commit()
}

// Update implements the Repository interface.
func (pr *postgresRepository) Update(ctx context.Context, conv *domain.Conversation) error {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE conversations
		SET title = $2, preview = $3
		WHERE conversation_id = $1
	`
	res, err := tx.ExecContext(ctx, query, conv.ConversationID, conv.Title, conv.Preview)
	if err != nil {
		return fmt.Errorf("could not update conversation: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("could not update conversation: %w", err)
	} else if n == 0 {
		return domain.ErrConversationNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM chat_messages WHERE conversation_id = $1`, conv.ConversationID); err != nil {
		return fmt.Errorf("could not clear messages: %w", err)
	}
	if err := insertMessages(ctx, tx, conv); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete implements the Repository interface. Messages go with it via ON DELETE CASCADE.
func (pr *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := pr.db.ExecContext(ctx, `DELETE FROM conversations WHERE conversation_id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete conversation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not delete conversation: %w", err)
	}
	if n == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func insertMessages(ctx context.Context, tx *sql.Tx, conv *domain.Conversation) error {
	query := `
		INSERT INTO chat_messages (message_id, conversation_id, position, author, message_type, text, attachment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for i, m := range conv.Messages {
		var attachment any
		if len(m.Attachment) > 0 {
			attachment = string(m.Attachment)
		}
		_, err := tx.ExecContext(ctx, query,
			m.MessageID,
			conv.ConversationID,
			i,
			m.Author,
			string(m.Type),
			m.Text,
			attachment,
			m.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("could not insert message: %w", err)
		}
	}
	return nil
}

func scanMessage(rows *sql.Rows, convID *uuid.UUID) (*domain.ChatMessage, error) {
	msg := &domain.ChatMessage{}
	var msgType string
	var attachment []byte
	err := rows.Scan(
		convID,
		&msg.MessageID,
		&msg.Author,
		&msgType,
		&msg.Text,
		&attachment,
		&msg.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("could not scan message: %w", err)
	}
	msg.Type = domain.MessageType(msgType)
	if len(attachment) > 0 {
		msg.Attachment = attachment
	}
	return msg, nil
}
