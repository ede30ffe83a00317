package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertChat appends one message to the chat transcript.
func (db *DB) InsertChat(ctx context.Context, userID, sender, message string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO chat_history (id, user_id, sender, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), userID, sender, message, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// ChatHistory returns the most recent transcript rows for a user,
// newest first.
func (db *DB) ChatHistory(ctx context.Context, userID string, limit int) ([]ChatMessage, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, sender, message, created_at
		 FROM chat_history WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	var messages []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Sender, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
