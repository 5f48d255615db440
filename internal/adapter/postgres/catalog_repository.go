package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"emops/internal/core/business"
	"emops/internal/core/domain"
)

// CatalogRepository implements port.CatalogRepository. Catalog tables are
// written by an administrative workflow outside this service; this adapter
// only reads them into immutable snapshots.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// LoadCatalog returns the catalog snapshot for the client.
func (r *CatalogRepository) LoadCatalog(ctx context.Context, client string) (*business.Catalog, error) {
	campaigns, err := r.loadCampaigns(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("load catalog campaigns: %w", err)
	}
	databases, err := r.loadDatabases(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("load catalog databases: %w", err)
	}
	partners, err := r.loadPartners(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("load catalog partners: %w", err)
	}
	return business.NewCatalog(campaigns, databases, partners), nil
}

// LoadRates returns the time-versioned routing rate table for the client.
func (r *CatalogRepository) LoadRates(ctx context.Context, client string) (business.RateTable, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT effective_from, rate::text FROM routing_rates WHERE client = $1 ORDER BY effective_from`,
		client)
	if err != nil {
		return business.RateTable{}, fmt.Errorf("load routing rates: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RoutingRate, error) {
		var (
			e    domain.RoutingRate
			rate string
		)
		if err := row.Scan(&e.EffectiveFrom, &rate); err != nil {
			return e, err
		}
		var perr error
		e.Rate, perr = decimal.NewFromString(rate)
		return e, perr
	})
	if err != nil {
		return business.RateTable{}, fmt.Errorf("scan routing rates: %w", err)
	}
	return business.NewRateTable(entries), nil
}

func (r *CatalogRepository) loadCampaigns(ctx context.Context, client string) ([]domain.CatalogCampaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, advertiser FROM catalog_campaigns WHERE client = $1`, client)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogCampaign, error) {
		var e domain.CatalogCampaign
		err := row.Scan(&e.Name, &e.Advertiser)
		return e, err
	})
}

func (r *CatalogRepository) loadDatabases(ctx context.Context, client string) ([]domain.CatalogDatabase, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, geo, database_type FROM catalog_databases WHERE client = $1`, client)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogDatabase, error) {
		var (
			e      domain.CatalogDatabase
			dbType string
		)
		err := row.Scan(&e.Name, &e.Geo, &dbType)
		e.DatabaseType = domain.DatabaseType(dbType)
		return e, err
	})
}

func (r *CatalogRepository) loadPartners(ctx context.Context, client string) ([]domain.CatalogPartner, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, internal, COALESCE(invoice_office, '') FROM catalog_partners WHERE client = $1`, client)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogPartner, error) {
		var (
			e      domain.CatalogPartner
			office string
		)
		err := row.Scan(&e.Name, &e.Internal, &office)
		e.InvoiceOffice = domain.InvoiceOffice(office)
		return e, err
	})
}
