package business

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emops/internal/core/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func deriveFixture() (*Catalog, RateTable) {
	cat := testCatalog()
	rates := NewRateTable([]domain.RoutingRate{
		{EffectiveFrom: day(2025, 1, 1), Rate: dec("0.05")},
	})
	return cat, rates
}

// The reference scenario: price 10, qty 100, vSent 1000, resolved rate
// 0.05 and CPM pricing.
func TestDeriveReferenceScenario(t *testing.T) {
	cat, rates := deriveFixture()
	row := domain.CampaignRow{
		Date:  day(2025, 1, 1),
		Price: dec("10"),
		Qty:   100,
		VSent: 1000,
		Type:  domain.PricingCPM,
	}

	got := Derive(row, cat, rates, DefaultRoutingRate)

	assert.True(t, got.Turnover.Equal(dec("1000")), "turnover = price*qty, got %s", got.Turnover)
	assert.True(t, got.RoutingCosts.Equal(dec("50")), "routingCosts = vSent*rate, got %s", got.RoutingCosts)
	assert.True(t, got.Margin.Equal(dec("950")), "margin, got %s", got.Margin)
	assert.True(t, got.ECPM.Equal(dec("1000")), "ecpm, got %s", got.ECPM)
}

func TestDeriveMarginIdentity(t *testing.T) {
	cat, rates := deriveFixture()
	rows := []domain.CampaignRow{
		{Date: day(2025, 2, 1), Price: dec("0.75"), Qty: 1234, VSent: 98765, Type: domain.PricingCPL},
		{Date: day(2025, 2, 2), Price: dec("3.10"), Qty: 7, VSent: 0, Type: domain.PricingCPC},
		{Date: day(2025, 2, 3), Price: dec("0"), Qty: 0, VSent: 50000, Type: domain.PricingCPA},
	}
	for _, row := range rows {
		got := Derive(row, cat, rates, DefaultRoutingRate)
		assert.True(t, got.Margin.Equal(got.Turnover.Sub(got.RoutingCosts)),
			"margin must equal turnover-routingCosts exactly for %+v", row)
	}
}

func TestDeriveZeroVolumeECPM(t *testing.T) {
	cat, rates := deriveFixture()
	got := Derive(domain.CampaignRow{
		Date: day(2025, 1, 10), Price: dec("5"), Qty: 10, VSent: 0, Type: domain.PricingCPL,
	}, cat, rates, DefaultRoutingRate)

	assert.True(t, got.ECPM.IsZero())
	assert.True(t, got.RoutingCosts.IsZero())
}

func TestDeriveOverrideWinsOverTable(t *testing.T) {
	cat, rates := deriveFixture()
	override := dec("0.002")
	got := Derive(domain.CampaignRow{
		Date:                day(2025, 1, 1), // table would say 0.05
		Price:               dec("1"),
		Qty:                 10,
		VSent:               1000,
		Type:                domain.PricingCPM,
		RoutingRateOverride: &override,
	}, cat, rates, DefaultRoutingRate)

	assert.True(t, got.RoutingCosts.Equal(dec("2")), "got %s", got.RoutingCosts)
}

func TestDeriveFallbackRate(t *testing.T) {
	cat, rates := deriveFixture()

	// no date: the rate table cannot resolve, the fallback applies
	got := Derive(domain.CampaignRow{
		Price: dec("1"), Qty: 1, VSent: 10000, Type: domain.PricingCPM,
	}, cat, rates, dec("0.001"))
	assert.True(t, got.RoutingCosts.Equal(dec("10")), "got %s", got.RoutingCosts)

	// date before every table entry
	got = Derive(domain.CampaignRow{
		Date: day(2020, 1, 1), Price: dec("1"), Qty: 1, VSent: 10000, Type: domain.PricingCPM,
	}, cat, rates, dec("0.001"))
	assert.True(t, got.RoutingCosts.Equal(dec("10")), "got %s", got.RoutingCosts)
}

func TestDeriveTurnoverLinearInQty(t *testing.T) {
	cat, rates := deriveFixture()
	for _, model := range []domain.PricingModel{domain.PricingCPL, domain.PricingCPM, domain.PricingCPC, domain.PricingCPA} {
		base := Derive(domain.CampaignRow{
			Date: day(2025, 1, 1), Price: dec("2.5"), Qty: 10, VSent: 100, Type: model,
		}, cat, rates, DefaultRoutingRate)
		tripled := Derive(domain.CampaignRow{
			Date: day(2025, 1, 1), Price: dec("2.5"), Qty: 30, VSent: 100, Type: model,
		}, cat, rates, DefaultRoutingRate)
		assert.True(t, tripled.Turnover.Equal(base.Turnover.Mul(decimal.NewFromInt(3))),
			"turnover must scale linearly with qty for %s", model)
	}
}

func TestDeriveCatalogResolution(t *testing.T) {
	cat, rates := deriveFixture()
	got := Derive(domain.CampaignRow{
		Date:     day(2025, 1, 5),
		Campaign: "acme - spring promo fr",
		Database: "newsbase fr",
		Partner:  "MailPartners",
		Type:     domain.PricingCPM,
	}, cat, rates, DefaultRoutingRate)

	assert.Equal(t, "Acme", got.Advertiser)
	assert.Equal(t, "FR", got.Geo)
	assert.Equal(t, domain.DatabaseB2C, got.DatabaseType)
	assert.Equal(t, domain.InvoiceOfficeCAR, got.InvoiceOffice)
}

// A row with no catalog match keeps its manually supplied values.
func TestDeriveManualFallback(t *testing.T) {
	cat, rates := deriveFixture()
	got := Derive(domain.CampaignRow{
		Date:         day(2025, 1, 5),
		Campaign:     "Mystery Campaign",
		Advertiser:   "Manual Advertiser",
		Database:     "unlisted base",
		Geo:          "ES",
		DatabaseType: domain.DatabaseMixed,
		Type:         domain.PricingCPL,
	}, cat, rates, DefaultRoutingRate)

	assert.Equal(t, "Manual Advertiser", got.Advertiser)
	assert.Equal(t, "ES", got.Geo)
	assert.Equal(t, domain.DatabaseMixed, got.DatabaseType)
}

// A row with no catalog match and an empty geo keeps it empty when no
// heuristic applies either.
func TestDeriveEmptyGeoStaysEmpty(t *testing.T) {
	cat, rates := deriveFixture()
	got := Derive(domain.CampaignRow{
		Date:     day(2025, 1, 5),
		Database: "unlisted base",
		Type:     domain.PricingCPL,
	}, cat, rates, DefaultRoutingRate)

	assert.Equal(t, "", got.Geo)
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	cat, rates := deriveFixture()
	row := domain.CampaignRow{
		Date: day(2025, 1, 1), Price: dec("10"), Qty: 100, VSent: 1000, Type: domain.PricingCPM,
	}
	_ = Derive(row, cat, rates, DefaultRoutingRate)

	require.True(t, row.Turnover.IsZero())
	require.True(t, row.Margin.IsZero())
}
