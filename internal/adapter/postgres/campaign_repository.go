package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"emops/internal/core/domain"
	"emops/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Money columns are NUMERIC; they cross the wire as text and are parsed
// into decimals to avoid any float rounding.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
	id, client, date, campaign, advertiser, invoice_office, partner, theme,
	price::text, price_currency, type, v_sent, qty, database_name, geo,
	database_type, routing_rate_override::text, routing_costs::text,
	turnover::text, margin::text, ecpm::text, created_at, updated_at`

// Create stores a fully derived row.
func (r *CampaignRepository) Create(ctx context.Context, row *domain.CampaignRow) error {
	_, err := r.pool.Exec(ctx, `
	INSERT INTO campaign_rows
		(id, client, date, campaign, advertiser, invoice_office, partner, theme,
		 price, price_currency, type, v_sent, qty, database_name, geo,
		 database_type, routing_rate_override, routing_costs, turnover, margin,
		 ecpm, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::numeric,$10,$11,$12,$13,$14,$15,$16,
		$17::numeric,$18::numeric,$19::numeric,$20::numeric,$21::numeric,$22,$23)`,
		row.ID, row.Client, row.Date, row.Campaign, row.Advertiser,
		string(row.InvoiceOffice), row.Partner, row.Theme, row.Price.String(),
		row.PriceCurrency, string(row.Type), row.VSent, row.Qty, row.Database,
		row.Geo, string(row.DatabaseType), decimalPtrString(row.RoutingRateOverride),
		row.RoutingCosts.String(), row.Turnover.String(), row.Margin.String(),
		row.ECPM.String(), row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign row: %w", err)
	}
	return nil
}

// Get returns the row by id scoped to the client.
func (r *CampaignRepository) Get(ctx context.Context, client string, id uuid.UUID) (*domain.CampaignRow, error) {
	row, err := scanCampaignRow(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaign_rows WHERE client = $1 AND id = $2`,
		client, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign row: %w", err)
	}
	return row, nil
}

// Update rewrites the row, inputs and derived fields together.
func (r *CampaignRepository) Update(ctx context.Context, row *domain.CampaignRow) error {
	tag, err := r.pool.Exec(ctx, `
	UPDATE campaign_rows SET
		date = $3, campaign = $4, advertiser = $5, invoice_office = $6,
		partner = $7, theme = $8, price = $9::numeric, price_currency = $10,
		type = $11, v_sent = $12, qty = $13, database_name = $14, geo = $15,
		database_type = $16, routing_rate_override = $17::numeric,
		routing_costs = $18::numeric, turnover = $19::numeric,
		margin = $20::numeric, ecpm = $21::numeric, updated_at = $22
	WHERE client = $1 AND id = $2`,
		row.Client, row.ID, row.Date, row.Campaign, row.Advertiser,
		string(row.InvoiceOffice), row.Partner, row.Theme, row.Price.String(),
		row.PriceCurrency, string(row.Type), row.VSent, row.Qty, row.Database,
		row.Geo, string(row.DatabaseType), decimalPtrString(row.RoutingRateOverride),
		row.RoutingCosts.String(), row.Turnover.String(), row.Margin.String(),
		row.ECPM.String(), row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes the row scoped to the client.
func (r *CampaignRepository) Delete(ctx context.Context, client string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_rows WHERE client = $1 AND id = $2`, client, id)
	if err != nil {
		return fmt.Errorf("delete campaign row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// List returns the client's rows matching the query, date ascending.
func (r *CampaignRepository) List(ctx context.Context, client string, q port.ListQuery) ([]domain.CampaignRow, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign_rows WHERE client = $1`
	args := []interface{}{client}
	idx := 2
	if q.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", idx)
		args = append(args, *q.From)
		idx++
	}
	if q.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", idx)
		args = append(args, *q.To)
		idx++
	}
	query += " ORDER BY date, created_at"
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, q.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaign rows: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRow, error) {
		c, err := scanCampaignRow(row)
		if err != nil {
			return domain.CampaignRow{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaign rows: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaignRow(s rowScanner) (*domain.CampaignRow, error) {
	var (
		c                       domain.CampaignRow
		office, pricing, dbType string
		price, costs, turnover  string
		margin, ecpm            string
		override                *string
	)
	err := s.Scan(
		&c.ID, &c.Client, &c.Date, &c.Campaign, &c.Advertiser, &office,
		&c.Partner, &c.Theme, &price, &c.PriceCurrency, &pricing, &c.VSent,
		&c.Qty, &c.Database, &c.Geo, &dbType, &override, &costs, &turnover,
		&margin, &ecpm, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.InvoiceOffice = domain.InvoiceOffice(office)
	c.Type = domain.PricingModel(pricing)
	c.DatabaseType = domain.DatabaseType(dbType)
	if c.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if c.RoutingCosts, err = decimal.NewFromString(costs); err != nil {
		return nil, err
	}
	if c.Turnover, err = decimal.NewFromString(turnover); err != nil {
		return nil, err
	}
	if c.Margin, err = decimal.NewFromString(margin); err != nil {
		return nil, err
	}
	if c.ECPM, err = decimal.NewFromString(ecpm); err != nil {
		return nil, err
	}
	if override != nil {
		d, err := decimal.NewFromString(*override)
		if err != nil {
			return nil, err
		}
		c.RoutingRateOverride = &d
	}
	return &c, nil
}

func decimalPtrString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
