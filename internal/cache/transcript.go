// Package cache keeps a short rolling transcript per user in Redis for
// the debug surface. It is strictly best-effort: a missing or failing
// Redis never affects chat handling.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// keep is how many recent turns are retained per user
const keep = 100

// Entry is one cached transcript turn
type Entry struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Transcript is a rolling last-N message cache keyed by user
type Transcript struct {
	client *redis.Client
}

// NewTranscript creates the cache. An empty addr returns nil: callers
// treat a nil Transcript as disabled.
func NewTranscript(addr string) *Transcript {
	if addr == "" {
		return nil
	}
	return &Transcript{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Record appends a turn to the user's rolling transcript
func (t *Transcript) Record(ctx context.Context, userID, sender, message string) {
	if t == nil {
		return
	}
	data, err := json.Marshal(Entry{
		Sender:    sender,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	key := transcriptKey(userID)
	pipe := t.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, keep-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("cache: transcript append failed for user %s: %v", userID, err)
	}
}

// Recent returns up to limit cached turns, newest first
func (t *Transcript) Recent(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if t == nil {
		return nil, nil
	}
	if limit <= 0 || limit > keep {
		limit = keep
	}

	data, err := t.client.LRange(ctx, transcriptKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read transcript cache: %w", err)
	}

	entries := make([]Entry, 0, len(data))
	for _, item := range data {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Close releases the Redis connection
func (t *Transcript) Close() error {
	if t == nil {
		return nil
	}
	return t.client.Close()
}

func transcriptKey(userID string) string {
	return fmt.Sprintf("transcript:%s", userID)
}
