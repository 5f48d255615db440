package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"emops/internal/core/business"
	"emops/internal/core/domain"
)

// ErrNotFound is returned by repositories when the requested record does
// not exist for the client.
var ErrNotFound = errors.New("not found")

// ErrShareLinkExpired is returned when a public share link exists but is
// past its expiry.
var ErrShareLinkExpired = errors.New("share link expired")

// ListQuery narrows a campaign row listing. Nil bounds are open-ended.
type ListQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// CampaignRepository persists campaign rows per client. It is an outbound
// port; implementations translate driver-level "no rows" into ErrNotFound.
type CampaignRepository interface {
	// Create stores a fully derived row.
	Create(ctx context.Context, row *domain.CampaignRow) error
	// Get returns the row by id scoped to the client.
	Get(ctx context.Context, client string, id uuid.UUID) (*domain.CampaignRow, error)
	// Update rewrites the row, inputs and derived fields together.
	Update(ctx context.Context, row *domain.CampaignRow) error
	// Delete removes the row scoped to the client.
	Delete(ctx context.Context, client string, id uuid.UUID) error
	// List returns the client's rows matching the query, date ascending.
	List(ctx context.Context, client string, q ListQuery) ([]domain.CampaignRow, error)
}

// CatalogRepository loads per-client reference snapshots consumed by the
// derivation and aggregation engines. The core never writes catalogs.
type CatalogRepository interface {
	// LoadCatalog returns the catalog snapshot for the client.
	LoadCatalog(ctx context.Context, client string) (*business.Catalog, error)
	// LoadRates returns the time-versioned routing rate table.
	LoadRates(ctx context.Context, client string) (business.RateTable, error)
}

// ShareLinkRepository persists public report share links.
type ShareLinkRepository interface {
	Create(ctx context.Context, link *domain.ShareLink) error
	Get(ctx context.Context, token uuid.UUID) (*domain.ShareLink, error)
}
