package business

import (
	"github.com/shopspring/decimal"

	"emops/internal/core/domain"
)

var thousand = decimal.NewFromInt(1000)

// Derive recomputes every derived field of a campaign row from its inputs,
// the catalog snapshot and the routing rate table. It is a pure function:
// the input row is not mutated and no I/O happens. Unresolvable inputs
// degrade to the row's own values or to fallbackRate; Derive never fails.
//
// Advertiser, geo, database type and invoice office resolve catalog-first,
// then by name-pattern heuristic, then keep whatever the row already
// carried. The four financial fields are always rewritten as a consistent
// set.
func Derive(row domain.CampaignRow, cat *Catalog, rates RateTable, fallbackRate decimal.Decimal) domain.CampaignRow {
	if adv, ok := cat.ResolveCampaign(row.Campaign); ok {
		row.Advertiser = adv
	} else if guess := GuessAdvertiser(row.Campaign); guess != "" && row.Advertiser == "" {
		row.Advertiser = guess
	}

	if geo, dbType, ok := cat.ResolveDatabase(row.Database); ok {
		row.Geo = geo
		row.DatabaseType = dbType
	} else {
		if row.Geo == "" {
			row.Geo = GuessGeo(row.Database)
		}
		if row.DatabaseType == "" {
			row.DatabaseType = GuessDatabaseType(row.Database)
		}
	}

	row.InvoiceOffice = cat.ResolveInvoiceOffice(row.Geo, row.Partner)

	rate := EffectiveRate(row, rates, fallbackRate)

	vSent := decimal.NewFromInt(row.VSent)
	row.RoutingCosts = vSent.Mul(rate)
	row.Turnover = turnover(row)
	row.Margin = row.Turnover.Sub(row.RoutingCosts)
	if row.VSent > 0 {
		row.ECPM = row.Turnover.Div(vSent).Mul(thousand)
	} else {
		row.ECPM = decimal.Zero
	}
	return row
}

// EffectiveRate picks the per-message routing rate for a row: a row-level
// override always wins, then the rate in effect on the send date, then the
// fallback constant.
func EffectiveRate(row domain.CampaignRow, rates RateTable, fallbackRate decimal.Decimal) decimal.Decimal {
	if row.RoutingRateOverride != nil {
		return *row.RoutingRateOverride
	}
	if rate, ok := rates.Resolve(row.Date); ok && !rate.IsZero() {
		return rate
	}
	return fallbackRate
}

// turnover applies the pricing-model formula. Every model bills price per
// unit of qty (leads for CPL, thousands of impressions for CPM, clicks for
// CPC, acquisitions for CPA), so turnover is linear in qty for a fixed
// price.
func turnover(row domain.CampaignRow) decimal.Decimal {
	return row.Price.Mul(decimal.NewFromInt(row.Qty))
}
