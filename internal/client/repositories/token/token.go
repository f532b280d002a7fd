// Package token keeps the access token in the client's single durable slot,
// the metadata row keyed common.TokenStorageKey.
package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wandergenie/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wandergenie/internal/common"
)

type Repository interface {
	// Get returns "" when no token is stored.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	md *metadata.SQLiteRepository
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{md: metadata.NewSQLiteRepository(db)}
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	v, err := r.md.Get(ctx, common.TokenStorageKey)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(v), nil
}

// Set overwrites the slot; an empty token clears it.
func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	if token == "" {
		return r.Clear(ctx)
	}
	if err := r.md.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if err := r.md.Delete(ctx, common.TokenStorageKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
