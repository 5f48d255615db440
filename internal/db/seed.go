package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"emops/internal/core/business"
	"emops/internal/core/domain"
)

// Seed inserts demo reference data and derived campaign rows for a demo
// client. Intended for local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	const client = "demo"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	catalogCampaigns := []domain.CatalogCampaign{
		{Name: "Acme - Spring Promo FR", Advertiser: "Acme"},
		{Name: "Globex - B2B Leads DE", Advertiser: "Globex"},
		{Name: "Initech - Renewal Wave", Advertiser: "Initech"},
	}
	catalogDatabases := []domain.CatalogDatabase{
		{Name: "Newsbase FR", Geo: "FR", DatabaseType: domain.DatabaseB2C},
		{Name: "Tradeline DE", Geo: "DE", DatabaseType: domain.DatabaseB2B},
		{Name: "Omnilist EU", Geo: "MULTI", DatabaseType: domain.DatabaseMixed},
	}
	catalogPartners := []domain.CatalogPartner{
		{Name: "MailPartners", Internal: false, InvoiceOffice: domain.InvoiceOfficeCAR},
		{Name: "InHouse Media", Internal: true, InvoiceOffice: domain.InvoiceOfficeINT},
		{Name: "Directline FR", Internal: false, InvoiceOffice: domain.InvoiceOfficeDAT},
	}

	for _, e := range catalogCampaigns {
		if _, err := pool.Exec(ctx, `INSERT INTO catalog_campaigns (client, name, advertiser)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, client, e.Name, e.Advertiser); err != nil {
			return err
		}
	}
	for _, e := range catalogDatabases {
		if _, err := pool.Exec(ctx, `INSERT INTO catalog_databases (client, name, geo, database_type)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, client, e.Name, e.Geo, string(e.DatabaseType)); err != nil {
			return err
		}
	}
	for _, e := range catalogPartners {
		if _, err := pool.Exec(ctx, `INSERT INTO catalog_partners (client, name, internal, invoice_office)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, client, e.Name, e.Internal, string(e.InvoiceOffice)); err != nil {
			return err
		}
	}

	rates := []domain.RoutingRate{
		{EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Rate: decimal.RequireFromString("0.00030")},
		{EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Rate: decimal.RequireFromString("0.00035")},
	}
	for _, e := range rates {
		if _, err := pool.Exec(ctx, `INSERT INTO routing_rates (client, effective_from, rate)
VALUES ($1,$2,$3::numeric) ON CONFLICT DO NOTHING`, client, e.EffectiveFrom, e.Rate.String()); err != nil {
			return err
		}
	}

	cat := business.NewCatalog(catalogCampaigns, catalogDatabases, catalogPartners)
	rateTable := business.NewRateTable(rates)
	models := []domain.PricingModel{domain.PricingCPL, domain.PricingCPM, domain.PricingCPC, domain.PricingCPA}
	themes := []string{"Finance", "Retail", "Energy"}

	for i := 0; i < 120; i++ {
		now := time.Now().UTC()
		row := domain.CampaignRow{
			ID:            uuid.New(),
			Client:        client,
			Date:          time.Date(2025, time.Month(1+r.Intn(6)), 1+r.Intn(28), 0, 0, 0, 0, time.UTC),
			Campaign:      catalogCampaigns[r.Intn(len(catalogCampaigns))].Name,
			Partner:       catalogPartners[r.Intn(len(catalogPartners))].Name,
			Theme:         themes[r.Intn(len(themes))],
			Price:         decimal.NewFromFloat(float64(5+r.Intn(40)) / 10),
			PriceCurrency: "EUR",
			Type:          models[r.Intn(len(models))],
			VSent:         int64(10000 + r.Intn(200000)),
			Qty:           int64(50 + r.Intn(2000)),
			Database:      catalogDatabases[r.Intn(len(catalogDatabases))].Name,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		row = business.Derive(row, cat, rateTable, business.DefaultRoutingRate)
		if _, err := pool.Exec(ctx, `INSERT INTO campaign_rows
	(id, client, date, campaign, advertiser, invoice_office, partner, theme,
	 price, price_currency, type, v_sent, qty, database_name, geo,
	 database_type, routing_rate_override, routing_costs, turnover, margin,
	 ecpm, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::numeric,$10,$11,$12,$13,$14,$15,$16,NULL,
	$17::numeric,$18::numeric,$19::numeric,$20::numeric,$21,$22)
ON CONFLICT DO NOTHING`,
			row.ID, row.Client, row.Date, row.Campaign, row.Advertiser,
			string(row.InvoiceOffice), row.Partner, row.Theme, row.Price.String(),
			row.PriceCurrency, string(row.Type), row.VSent, row.Qty, row.Database,
			row.Geo, string(row.DatabaseType), row.RoutingCosts.String(),
			row.Turnover.String(), row.Margin.String(), row.ECPM.String(),
			row.CreatedAt, row.UpdatedAt); err != nil {
			return fmt.Errorf("seed campaign row: %w", err)
		}
	}
	return nil
}
