package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceOffice classifies the billing entity a campaign is invoiced
// through.
type InvoiceOffice string

const (
	InvoiceOfficeDAT InvoiceOffice = "DAT"
	InvoiceOfficeCAR InvoiceOffice = "CAR"
	InvoiceOfficeINT InvoiceOffice = "INT"
)

// PricingModel determines how the billable quantity of a campaign row is
// interpreted: leads for CPL, thousands of impressions for CPM, clicks for
// CPC and acquisitions for CPA.
type PricingModel string

const (
	PricingCPL PricingModel = "CPL"
	PricingCPM PricingModel = "CPM"
	PricingCPC PricingModel = "CPC"
	PricingCPA PricingModel = "CPA"
)

// DatabaseType classifies the audience of a campaign database.
type DatabaseType string

const (
	DatabaseB2B   DatabaseType = "B2B"
	DatabaseB2C   DatabaseType = "B2C"
	DatabaseMixed DatabaseType = "Mixed"
)

// CampaignRow is one priced campaign send event belonging to a client.
// Monetary amounts are decimals denominated in PriceCurrency (EUR today).
//
// RoutingCosts, Turnover, Margin and ECPM are derived from Price, Qty,
// VSent and the effective routing rate. They are never edited directly:
// every write that touches an input field recomputes all four and stores
// them together with the inputs.
type CampaignRow struct {
	ID            uuid.UUID       `json:"id"`
	Client        string          `json:"client"`
	Date          time.Time       `json:"date"`
	Campaign      string          `json:"campaign"`
	Advertiser    string          `json:"advertiser"`
	InvoiceOffice InvoiceOffice   `json:"invoiceOffice"`
	Partner       string          `json:"partner"`
	Theme         string          `json:"theme"`
	Price         decimal.Decimal `json:"price"`
	PriceCurrency string          `json:"priceCurrency"`
	Type          PricingModel    `json:"type"`
	VSent         int64           `json:"vSent"`
	Qty           int64           `json:"qty"`
	Database      string          `json:"database"`
	Geo           string          `json:"geo"`
	DatabaseType  DatabaseType    `json:"databaseType"`

	// RoutingRateOverride pins the per-message routing rate for this row.
	// When set it always wins over the time-versioned rate table.
	RoutingRateOverride *decimal.Decimal `json:"routingRateOverride,omitempty"`

	RoutingCosts decimal.Decimal `json:"routingCosts"`
	Turnover     decimal.Decimal `json:"turnover"`
	Margin       decimal.Decimal `json:"margin"`
	ECPM         decimal.Decimal `json:"ecpm"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
