package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emops/internal/core/domain"
	"emops/internal/core/port"
)

// ShareLinkRepository implements port.ShareLinkRepository using pgxpool.
type ShareLinkRepository struct {
	pool *pgxpool.Pool
}

// NewShareLinkRepository returns a new repository instance.
func NewShareLinkRepository(pool *pgxpool.Pool) *ShareLinkRepository {
	return &ShareLinkRepository{pool: pool}
}

// Create stores a share link.
func (r *ShareLinkRepository) Create(ctx context.Context, link *domain.ShareLink) error {
	_, err := r.pool.Exec(ctx, `
	INSERT INTO share_links (token, client, params, created_at, expires_at)
	VALUES ($1, $2, $3, $4, $5)`,
		link.Token, link.Client, link.Params, link.CreatedAt, link.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert share link: %w", err)
	}
	return nil
}

// Get returns a share link by token, port.ErrNotFound when unknown.
func (r *ShareLinkRepository) Get(ctx context.Context, token uuid.UUID) (*domain.ShareLink, error) {
	var link domain.ShareLink
	err := r.pool.QueryRow(ctx,
		`SELECT token, client, params, created_at, expires_at FROM share_links WHERE token = $1`,
		token).Scan(&link.Token, &link.Client, &link.Params, &link.CreatedAt, &link.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get share link: %w", err)
	}
	return &link, nil
}
