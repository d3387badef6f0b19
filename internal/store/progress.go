package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ProgressRepo persists the completion mapping: course ID → completed topics.
// The mapping is stored as a single JSON document and overwritten wholesale
// on every save.
type ProgressRepo interface {
	// Load returns the stored mapping. A missing or unreadable document
	// yields an empty mapping, never an error surfaced to the caller.
	Load(ctx context.Context) map[string][]string

	// Save overwrites the stored mapping with the given one.
	Save(ctx context.Context, mapping map[string][]string) error

	// Reset deletes the stored mapping.
	Reset(ctx context.Context) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context) map[string][]string {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE id = 1`,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string][]string{}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load progress: %v\n", err)
		return map[string][]string{}
	}

	var mapping map[string][]string
	if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
		// Corrupt document: start fresh rather than refuse to launch.
		fmt.Fprintf(os.Stderr, "warning: corrupt progress document, resetting: %v\n", err)
		return map[string][]string{}
	}
	if mapping == nil {
		return map[string][]string{}
	}
	return mapping
}

func (r *progressRepo) Save(ctx context.Context, mapping map[string][]string) error {
	raw, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(raw), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = 1`); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
