package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PrimaryContact returns the user's primary emergency contact, or
// (nil, nil) when none is registered.
func (db *DB) PrimaryContact(ctx context.Context, userID string) (*Contact, error) {
	var c Contact
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, name, phone_number, is_primary, opted_in, allow_auto_call
		 FROM emergency_contacts
		 WHERE user_id = $1 AND is_primary = TRUE
		 LIMIT 1`,
		userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.IsPrimary, &c.OptedIn, &c.AllowAutoCall)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get primary contact: %w", err)
	}

	return &c, nil
}

// InsertContact registers an emergency contact. Contact management is
// owned by a separate service; this exists for seeding and tests.
func (db *DB) InsertContact(ctx context.Context, c *Contact) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO emergency_contacts
		 (id, user_id, name, phone_number, is_primary, opted_in, allow_auto_call)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.Name, c.PhoneNumber, c.IsPrimary, c.OptedIn, c.AllowAutoCall,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}
