// Package postgres stores user documents as JSONB rows.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/domain"
)

const (
	selectDocumentSQL = `SELECT body FROM user_documents WHERE user_id = $1 AND kind = $2`

	upsertDocumentSQL = `
INSERT INTO user_documents (user_id, kind, body, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (user_id, kind) DO UPDATE
SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
)

// Documents is a Postgres-backed database.Documents backend.
type Documents struct {
	pool *pgxpool.Pool
}

// New wraps an open pool. The schema must already be migrated.
func New(pool *pgxpool.Pool) *Documents {
	return &Documents{pool: pool}
}

// NewStore returns a DocumentStore backed by Postgres.
func NewStore(pool *pgxpool.Pool) *database.DocumentStore {
	return database.NewDocumentStore(New(pool))
}

func (d *Documents) Get(ctx context.Context, userID string, kind database.Kind) ([]byte, error) {
	var body []byte
	err := d.pool.QueryRow(ctx, selectDocumentSQL, userID, string(kind)).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}
	return body, nil
}

func (d *Documents) Put(ctx context.Context, userID string, kind database.Kind, body []byte) error {
	if _, err := d.pool.Exec(ctx, upsertDocumentSQL, userID, string(kind), body); err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

func (d *Documents) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *Documents) Close() error {
	d.pool.Close()
	return nil
}
