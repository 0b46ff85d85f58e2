package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository maps domain recipients (role + id) to Bale chat ids so
// drafted messages can be delivered. Rows are registered when a user first
// talks to the bot.
type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// Register stores or refreshes the chat id for a recipient.
func (r *ChatRepository) Register(ctx context.Context, role, recipientID string, chatID int64) error {
	query := `
		INSERT INTO bale_chats (role, recipient_id, chat_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (role, recipient_id) DO UPDATE SET chat_id = EXCLUDED.chat_id
	`

	_, err := r.pool.Exec(ctx, query, role, recipientID, chatID)
	if err != nil {
		return fmt.Errorf("register chat: %w", err)
	}

	return nil
}

// Lookup returns the chat id for a recipient.
func (r *ChatRepository) Lookup(ctx context.Context, role, recipientID string) (int64, error) {
	query := `SELECT chat_id FROM bale_chats WHERE role = $1 AND recipient_id = $2`

	var chatID int64
	err := r.pool.QueryRow(ctx, query, role, recipientID).Scan(&chatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("no chat registered for %s %s", role, recipientID)
		}
		return 0, fmt.Errorf("lookup chat: %w", err)
	}

	return chatID, nil
}
