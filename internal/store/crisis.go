package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertCrisis writes one crisis determination. The raw numeric score
// travels in the meta column as JSON, matching the original schema.
func (db *DB) InsertCrisis(ctx context.Context, rec *CrisisRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.DetectedAt.IsZero() {
		rec.DetectedAt = time.Now().UTC()
	}

	meta, err := json.Marshal(map[string]float64{"score": rec.Score})
	if err != nil {
		return fmt.Errorf("marshal crisis meta: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO crisis_logs
		 (id, user_id, message, model_response, severity, sms_sent, call_initiated,
		  contact_name, contact_number, action_taken, detected_at, meta)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rec.ID, rec.UserID, rec.Message, rec.ModelResponse, rec.Severity,
		rec.SMSSent, rec.CallInitiated,
		nullable(rec.ContactName), nullable(rec.ContactNumber),
		rec.ActionTaken, rec.DetectedAt, string(meta),
	)
	if err != nil {
		return fmt.Errorf("insert crisis record: %w", err)
	}
	return nil
}

// CrisisCount returns how many crisis records exist for a user.
func (db *DB) CrisisCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM crisis_logs WHERE user_id = $1", userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count crisis records: %w", err)
	}
	return n, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
