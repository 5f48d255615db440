package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emops/internal/core/business"
	"emops/internal/core/domain"
	"emops/internal/core/port"
)

// DefaultCurrency is the only currency carried today. Aggregation assumes
// all rows share it; a stricter design would tag every derived value.
const DefaultCurrency = "EUR"

// CampaignUseCase implements port.CampaignUseCase. Every write loads a
// fresh catalog snapshot and rate table, runs the derivation engine and
// stores inputs plus derived fields as one consistent set.
type CampaignUseCase struct {
	rows     port.CampaignRepository
	catalogs port.CatalogRepository

	// fallbackRate applies when neither an override nor the versioned
	// table covers the send date.
	fallbackRate decimal.Decimal
}

// NewCampaignUseCase creates the usecase with the provided repositories
// and fallback routing rate.
func NewCampaignUseCase(rows port.CampaignRepository, catalogs port.CatalogRepository, fallbackRate decimal.Decimal) *CampaignUseCase {
	return &CampaignUseCase{rows: rows, catalogs: catalogs, fallbackRate: fallbackRate}
}

// Create derives the financials for the input and persists a new row.
func (u *CampaignUseCase) Create(ctx context.Context, client string, in port.CampaignInput) (*domain.CampaignRow, error) {
	row := domain.CampaignRow{
		ID:            uuid.New(),
		Client:        client,
		PriceCurrency: DefaultCurrency,
		CreatedAt:     time.Now().UTC(),
	}
	applyInput(&row, in)

	derived, err := u.derive(ctx, row)
	if err != nil {
		return nil, err
	}
	derived.UpdatedAt = derived.CreatedAt
	if err = u.rows.Create(ctx, &derived); err != nil {
		return nil, err
	}
	return &derived, nil
}

// Get returns one row scoped to the client.
func (u *CampaignUseCase) Get(ctx context.Context, client string, id uuid.UUID) (*domain.CampaignRow, error) {
	return u.rows.Get(ctx, client, id)
}

// Update applies the input to an existing row and reruns derivation so the
// stored derived fields stay consistent with the inputs.
func (u *CampaignUseCase) Update(ctx context.Context, client string, id uuid.UUID, in port.CampaignInput) (*domain.CampaignRow, error) {
	existing, err := u.rows.Get(ctx, client, id)
	if err != nil {
		return nil, err
	}
	row := *existing
	applyInput(&row, in)

	derived, err := u.derive(ctx, row)
	if err != nil {
		return nil, err
	}
	derived.UpdatedAt = time.Now().UTC()
	if err = u.rows.Update(ctx, &derived); err != nil {
		return nil, err
	}
	return &derived, nil
}

// Delete removes a row scoped to the client.
func (u *CampaignUseCase) Delete(ctx context.Context, client string, id uuid.UUID) error {
	return u.rows.Delete(ctx, client, id)
}

// List returns the client's rows matching the query.
func (u *CampaignUseCase) List(ctx context.Context, client string, q port.ListQuery) ([]domain.CampaignRow, error) {
	return u.rows.List(ctx, client, q)
}

// Recompute re-derives every row of the client against the current catalog
// and rate table and rewrites them. Rows whose derived fields are already
// current are rewritten anyway; the operation is idempotent.
func (u *CampaignUseCase) Recompute(ctx context.Context, client string) (int, error) {
	cat, rates, err := u.snapshot(ctx, client)
	if err != nil {
		return 0, err
	}
	rows, err := u.rows.List(ctx, client, port.ListQuery{})
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range rows {
		derived := business.Derive(rows[i], cat, rates, u.fallbackRate)
		derived.UpdatedAt = time.Now().UTC()
		if err = u.rows.Update(ctx, &derived); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (u *CampaignUseCase) derive(ctx context.Context, row domain.CampaignRow) (domain.CampaignRow, error) {
	cat, rates, err := u.snapshot(ctx, row.Client)
	if err != nil {
		return row, err
	}
	return business.Derive(row, cat, rates, u.fallbackRate), nil
}

func (u *CampaignUseCase) snapshot(ctx context.Context, client string) (*business.Catalog, business.RateTable, error) {
	cat, err := u.catalogs.LoadCatalog(ctx, client)
	if err != nil {
		return nil, business.RateTable{}, err
	}
	rates, err := u.catalogs.LoadRates(ctx, client)
	if err != nil {
		return nil, business.RateTable{}, err
	}
	return cat, rates, nil
}

func applyInput(row *domain.CampaignRow, in port.CampaignInput) {
	row.Date = in.Date
	row.Campaign = in.Campaign
	row.Advertiser = in.Advertiser
	row.InvoiceOffice = in.InvoiceOffice
	row.Partner = in.Partner
	row.Theme = in.Theme
	row.Price = in.Price
	row.Type = in.Type
	row.VSent = in.VSent
	row.Qty = in.Qty
	row.Database = in.Database
	row.Geo = in.Geo
	row.DatabaseType = in.DatabaseType
	row.RoutingRateOverride = in.RoutingRateOverride
}
