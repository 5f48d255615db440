package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emops/internal/core/business"
	"emops/internal/core/domain"
)

// CampaignInput carries the editable input fields of a campaign row. The
// derived financials are never part of the input: the usecase recomputes
// them on every write. Advertiser, geo, database type and invoice office
// are manual fallbacks used only when the catalog has no match.
type CampaignInput struct {
	Date                time.Time            `json:"date"`
	Campaign            string               `json:"campaign"`
	Advertiser          string               `json:"advertiser"`
	InvoiceOffice       domain.InvoiceOffice `json:"invoiceOffice"`
	Partner             string               `json:"partner"`
	Theme               string               `json:"theme"`
	Price               decimal.Decimal      `json:"price"`
	Type                domain.PricingModel  `json:"type"`
	VSent               int64                `json:"vSent"`
	Qty                 int64                `json:"qty"`
	Database            string               `json:"database"`
	Geo                 string               `json:"geo"`
	DatabaseType        domain.DatabaseType  `json:"databaseType"`
	RoutingRateOverride *decimal.Decimal     `json:"routingRateOverride,omitempty"`
}

// CampaignUseCase is the primary port for campaign row writes and reads.
type CampaignUseCase interface {
	// Create derives financials for the input and persists the row.
	Create(ctx context.Context, client string, in CampaignInput) (*domain.CampaignRow, error)
	// Get returns one row, ErrNotFound when missing.
	Get(ctx context.Context, client string, id uuid.UUID) (*domain.CampaignRow, error)
	// Update applies the input to an existing row, rerunning derivation.
	Update(ctx context.Context, client string, id uuid.UUID, in CampaignInput) (*domain.CampaignRow, error)
	// Delete removes a row.
	Delete(ctx context.Context, client string, id uuid.UUID) error
	// List returns rows matching the query.
	List(ctx context.Context, client string, q ListQuery) ([]domain.CampaignRow, error)
	// Recompute re-derives and rewrites every row of the client against
	// the current catalog and rate table. It returns the number of rows
	// rewritten. The worker runs it when a catalog changes.
	Recompute(ctx context.Context, client string) (int, error)
}

// ReportReq is the full description of one report run, parsed from query
// parameters by the HTTP layer and stored verbatim inside share links.
type ReportReq struct {
	GroupBy  business.GroupBy  `json:"groupBy"`
	Criteria business.Criteria `json:"criteria"`
	Ranking  business.Ranking  `json:"ranking"`
}

// ReportUseCase builds reports over the client's campaign rows.
type ReportUseCase interface {
	// Build fetches the rows and catalog for the client and runs the
	// aggregation engine.
	Build(ctx context.Context, client string, req ReportReq) (*business.Report, error)
	// Share persists the request under an opaque token valid for ttl and
	// returns the created link.
	Share(ctx context.Context, client string, req ReportReq, ttl time.Duration) (*domain.ShareLink, error)
	// BuildShared resolves a share token and replays the stored request
	// against fresh data. ErrNotFound for unknown tokens,
	// ErrShareLinkExpired past expiry.
	BuildShared(ctx context.Context, token uuid.UUID) (*business.Report, error)
}
