package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogCampaign is a reference entry mapping a campaign name to its
// advertiser. Catalog tables are maintained by an administrative workflow
// outside this service; the core only reads them.
type CatalogCampaign struct {
	Name       string `json:"name"`
	Advertiser string `json:"advertiser"`
}

// CatalogDatabase maps a database name to its target geo and audience type.
type CatalogDatabase struct {
	Name         string       `json:"name"`
	Geo          string       `json:"geo"`
	DatabaseType DatabaseType `json:"databaseType"`
}

// CatalogPartner carries partner-level billing attributes.
type CatalogPartner struct {
	Name          string        `json:"name"`
	Internal      bool          `json:"internal"`
	InvoiceOffice InvoiceOffice `json:"invoiceOffice"`
}

// RoutingRate is one entry of the time-versioned routing rate table. The
// rate applies from EffectiveFrom until superseded by a later entry.
type RoutingRate struct {
	EffectiveFrom time.Time `json:"effectiveFrom"`
	// Rate is the per-message routing cost in EUR.
	Rate decimal.Decimal `json:"rate"`
}
