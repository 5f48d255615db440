package business

import (
	"strings"
	"unicode"

	"emops/internal/core/domain"
)

// Catalog is an immutable snapshot of the client's reference tables, keyed
// by normalized name. A snapshot is loaded per request and passed into the
// derivation engine explicitly, so the engine stays a pure function.
type Catalog struct {
	campaigns map[string]domain.CatalogCampaign
	databases map[string]domain.CatalogDatabase
	partners  map[string]domain.CatalogPartner
}

// NewCatalog builds a snapshot from raw reference rows. Entries whose
// normalized names collide keep the last occurrence; collisions are a
// data-quality condition prevented upstream by the catalog workflow, not
// enforced here.
func NewCatalog(campaigns []domain.CatalogCampaign, databases []domain.CatalogDatabase, partners []domain.CatalogPartner) *Catalog {
	c := &Catalog{
		campaigns: make(map[string]domain.CatalogCampaign, len(campaigns)),
		databases: make(map[string]domain.CatalogDatabase, len(databases)),
		partners:  make(map[string]domain.CatalogPartner, len(partners)),
	}
	for _, e := range campaigns {
		c.campaigns[NormalizeName(e.Name)] = e
	}
	for _, e := range databases {
		c.databases[NormalizeName(e.Name)] = e
	}
	for _, e := range partners {
		c.partners[NormalizeName(e.Name)] = e
	}
	return c
}

// NormalizeName lowercases a free-text name and collapses runs of
// whitespace into single spaces. Matching is case-insensitive and
// whitespace-insensitive but does not fold diacritics.
func NormalizeName(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.ToLower(strings.Join(fields, " "))
}

// ResolveCampaign returns the advertiser registered for the campaign name.
// ok is false when the catalog has no entry; the caller must fall back to
// the row's own value, never to an error.
func (c *Catalog) ResolveCampaign(name string) (advertiser string, ok bool) {
	e, ok := c.campaigns[NormalizeName(name)]
	if !ok || e.Advertiser == "" {
		return "", false
	}
	return e.Advertiser, true
}

// ResolveDatabase returns the geo and audience type registered for the
// database name.
func (c *Catalog) ResolveDatabase(name string) (geo string, dbType domain.DatabaseType, ok bool) {
	e, ok := c.databases[NormalizeName(name)]
	if !ok {
		return "", "", false
	}
	return e.Geo, e.DatabaseType, true
}

// ResolveInvoiceOffice picks the billing office for a row. A partner entry
// with an explicit office wins; internal partners bill through INT;
// otherwise the office follows the geo (FR bills domestically through DAT,
// everything else through CAR).
func (c *Catalog) ResolveInvoiceOffice(geo, partner string) domain.InvoiceOffice {
	if e, ok := c.partners[NormalizeName(partner)]; ok {
		if e.InvoiceOffice != "" {
			return e.InvoiceOffice
		}
		if e.Internal {
			return domain.InvoiceOfficeINT
		}
	}
	return DefaultInvoiceOffice(geo)
}

// IsInternalPartner reports whether the partner is flagged internal in the
// catalog. Unknown partners are external.
func (c *Catalog) IsInternalPartner(partner string) bool {
	e, ok := c.partners[NormalizeName(partner)]
	return ok && e.Internal
}

// DefaultInvoiceOffice is the geo-based fallback used when the partner
// catalog gives no answer.
func DefaultInvoiceOffice(geo string) domain.InvoiceOffice {
	if strings.EqualFold(strings.TrimSpace(geo), "FR") {
		return domain.InvoiceOfficeDAT
	}
	return domain.InvoiceOfficeCAR
}

// GuessAdvertiser extracts an advertiser from a campaign name when the
// catalog has no entry. Campaign names conventionally lead with the
// advertiser followed by " - ", e.g. "Acme - Spring Promo FR".
func GuessAdvertiser(campaign string) string {
	name := strings.TrimSpace(campaign)
	if i := strings.Index(name, " - "); i > 0 {
		return strings.TrimSpace(name[:i])
	}
	return ""
}

// GuessGeo extracts a geo from a database name when the catalog has no
// entry: a trailing two-letter uppercase token, e.g. "Newsbase DE".
func GuessGeo(database string) string {
	fields := strings.Fields(database)
	if len(fields) == 0 {
		return ""
	}
	last := fields[len(fields)-1]
	if len(last) == 2 && last == strings.ToUpper(last) && isLetters(last) {
		return last
	}
	return ""
}

// GuessDatabaseType infers the audience type from tokens of the database
// name ("b2b", "b2c"). Returns the empty type when nothing matches.
func GuessDatabaseType(database string) domain.DatabaseType {
	for _, f := range strings.Fields(strings.ToLower(database)) {
		switch f {
		case "b2b":
			return domain.DatabaseB2B
		case "b2c":
			return domain.DatabaseB2C
		}
	}
	return ""
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
