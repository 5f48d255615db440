package business

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"emops/internal/core/domain"
)

// GroupBy selects the dimension a report partitions campaign rows by.
type GroupBy string

const (
	GroupByDatabase     GroupBy = "database"
	GroupByPartner      GroupBy = "partner"
	GroupByCampaign     GroupBy = "campaign"
	GroupByAdvertiser   GroupBy = "advertiser"
	GroupByTheme        GroupBy = "theme"
	GroupByGeo          GroupBy = "geo"
	GroupByType         GroupBy = "type"
	GroupByDatabaseType GroupBy = "databaseType"
)

// ParseGroupBy validates a raw group-by value. Empty input defaults to
// grouping by database.
func ParseGroupBy(s string) (GroupBy, bool) {
	switch GroupBy(s) {
	case GroupByDatabase, GroupByPartner, GroupByCampaign, GroupByAdvertiser,
		GroupByTheme, GroupByGeo, GroupByType, GroupByDatabaseType:
		return GroupBy(s), true
	case "":
		return GroupByDatabase, true
	}
	return "", false
}

// Metric names a sortable column of the ranking.
type Metric string

const (
	MetricVSent        Metric = "vSent"
	MetricTurnover     Metric = "turnover"
	MetricMargin       Metric = "margin"
	MetricRoutingCosts Metric = "routingCosts"
	MetricECPM         Metric = "ecpm"
	MetricCount        Metric = "count"
)

// ParseMetric validates a raw sort metric. Empty input defaults to
// turnover.
func ParseMetric(s string) (Metric, bool) {
	switch Metric(s) {
	case MetricVSent, MetricTurnover, MetricMargin, MetricRoutingCosts, MetricECPM, MetricCount:
		return Metric(s), true
	case "":
		return MetricTurnover, true
	}
	return "", false
}

// Criteria is the AND of all active report filters. Nil date bounds and
// empty sets are inactive predicates.
type Criteria struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`

	Geos          []string              `json:"geos,omitempty"`
	Partners      []string              `json:"partners,omitempty"`
	Campaigns     []string              `json:"campaigns,omitempty"`
	Advertisers   []string              `json:"advertisers,omitempty"`
	Themes        []string              `json:"themes,omitempty"`
	Databases     []string              `json:"databases,omitempty"`
	Types         []domain.PricingModel `json:"types,omitempty"`
	DatabaseTypes []domain.DatabaseType `json:"databaseTypes,omitempty"`

	OnlyInternalPartners         bool `json:"onlyInternalPartners,omitempty"`
	IncludeInternalInvoiceOffice bool `json:"includeInternalInvoiceOffice,omitempty"`
}

// Ranking controls ordering and truncation of the grouped rows.
type Ranking struct {
	Metric    Metric `json:"metric"`
	Ascending bool   `json:"ascending"`
	// Top truncates the ranking to the first N groups after sorting.
	// Zero means no truncation.
	Top int `json:"top"`
}

// AggregateRow is the reporting-time projection of one group. It is a pure
// function of the filtered row set and is never persisted.
type AggregateRow struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	VSent        int64           `json:"vSent"`
	Qty          int64           `json:"qty"`
	Turnover     decimal.Decimal `json:"turnover"`
	Margin       decimal.Decimal `json:"margin"`
	RoutingCosts decimal.Decimal `json:"routingCosts"`
	// MarginPct is nil when turnover is not positive, signalling
	// "undefined" rather than a fake zero.
	MarginPct *decimal.Decimal `json:"marginPct"`
	// ECPM is weighted by vSent across the group's rows. A simple average
	// would overweight low-volume rows.
	ECPM  decimal.Decimal `json:"ecpm"`
	Count int             `json:"count"`
}

// TrendPoint is one calendar-day bucket of the trend series.
type TrendPoint struct {
	Date         string          `json:"date"`
	VSent        int64           `json:"vSent"`
	Turnover     decimal.Decimal `json:"turnover"`
	Margin       decimal.Decimal `json:"margin"`
	RoutingCosts decimal.Decimal `json:"routingCosts"`
	ECPM         decimal.Decimal `json:"ecpm"`
	Count        int             `json:"count"`
}

// Report is the full result of one aggregation run.
type Report struct {
	KPIs    AggregateRow   `json:"kpis"`
	Ranking []AggregateRow `json:"ranking"`
	Trend   []TrendPoint   `json:"trend"`
}

// BuildReport filters rows by the criteria, groups them by the chosen
// dimension and produces global KPIs, the sorted ranking and the daily
// trend. An empty filtered set yields a well-formed zero-valued report.
// The catalog is only consulted for the internal-partner flag.
func BuildReport(rows []domain.CampaignRow, groupBy GroupBy, crit Criteria, rank Ranking, cat *Catalog) Report {
	filtered := Filter(rows, crit, cat)
	return Report{
		KPIs:    fold("", "All", filtered),
		Ranking: Rank(Group(filtered, groupBy), rank),
		Trend:   Trend(filtered),
	}
}

// Filter returns the rows satisfying every active predicate of the
// criteria. It never mutates its input and is idempotent.
func Filter(rows []domain.CampaignRow, crit Criteria, cat *Catalog) []domain.CampaignRow {
	out := make([]domain.CampaignRow, 0, len(rows))
	for _, row := range rows {
		if matches(row, crit, cat) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row domain.CampaignRow, crit Criteria, cat *Catalog) bool {
	if crit.From != nil && row.Date.Before(dayStart(*crit.From)) {
		return false
	}
	if crit.To != nil && row.Date.After(dayEnd(*crit.To)) {
		return false
	}
	if !inSet(crit.Geos, row.Geo) ||
		!inSet(crit.Partners, row.Partner) ||
		!inSet(crit.Campaigns, row.Campaign) ||
		!inSet(crit.Advertisers, row.Advertiser) ||
		!inSet(crit.Themes, row.Theme) ||
		!inSet(crit.Databases, row.Database) {
		return false
	}
	if len(crit.Types) > 0 && !slices.Contains(crit.Types, row.Type) {
		return false
	}
	if len(crit.DatabaseTypes) > 0 && !slices.Contains(crit.DatabaseTypes, row.DatabaseType) {
		return false
	}
	if crit.OnlyInternalPartners && (cat == nil || !cat.IsInternalPartner(row.Partner)) {
		return false
	}
	if !crit.IncludeInternalInvoiceOffice && row.InvoiceOffice == domain.InvoiceOfficeINT {
		return false
	}
	return true
}

// Group partitions rows by the raw value of the chosen dimension. Keys are
// deliberately not normalized: rows with differently-cased names of the
// same logical entity stay separate, which existing dashboards rely on.
// Group order is first-seen insertion order.
func Group(rows []domain.CampaignRow, groupBy GroupBy) []AggregateRow {
	order := make([]string, 0)
	buckets := make(map[string][]domain.CampaignRow)
	for _, row := range rows {
		key := groupKey(row, groupBy)
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], row)
	}
	out := make([]AggregateRow, 0, len(order))
	for _, key := range order {
		out = append(out, fold(key, key, buckets[key]))
	}
	return out
}

// Rank sorts aggregate rows by the requested metric (descending unless
// Ascending is set) and truncates to Top when positive. The sort is stable
// so ties keep first-seen group order, which snapshot tests depend on.
func Rank(groups []AggregateRow, rank Ranking) []AggregateRow {
	out := make([]AggregateRow, len(groups))
	copy(out, groups)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareMetric(out[i], out[j], rank.Metric)
		if rank.Ascending {
			return c < 0
		}
		return c > 0
	})
	if rank.Top > 0 && len(out) > rank.Top {
		out = out[:rank.Top]
	}
	return out
}

// Trend buckets rows per calendar day, ascending, with the same weighted
// eCPM semantics as the grouped rows.
func Trend(rows []domain.CampaignRow) []TrendPoint {
	order := make([]string, 0)
	buckets := make(map[string][]domain.CampaignRow)
	for _, row := range rows {
		day := row.Date.Format("2006-01-02")
		if _, ok := buckets[day]; !ok {
			order = append(order, day)
		}
		buckets[day] = append(buckets[day], row)
	}
	sort.Strings(order)
	out := make([]TrendPoint, 0, len(order))
	for _, day := range order {
		agg := fold(day, day, buckets[day])
		out = append(out, TrendPoint{
			Date:         day,
			VSent:        agg.VSent,
			Turnover:     agg.Turnover,
			Margin:       agg.Margin,
			RoutingCosts: agg.RoutingCosts,
			ECPM:         agg.ECPM,
			Count:        agg.Count,
		})
	}
	return out
}

// fold reduces a set of rows to one aggregate row. Sums are plain decimal
// additions; eCPM is weighted by vSent; marginPct is nil unless turnover
// is positive.
func fold(key, label string, rows []domain.CampaignRow) AggregateRow {
	agg := AggregateRow{
		Key:          key,
		Label:        label,
		Turnover:     decimal.Zero,
		Margin:       decimal.Zero,
		RoutingCosts: decimal.Zero,
		ECPM:         decimal.Zero,
		Count:        len(rows),
	}
	weighted := decimal.Zero
	for _, row := range rows {
		agg.VSent += row.VSent
		agg.Qty += row.Qty
		agg.Turnover = agg.Turnover.Add(row.Turnover)
		agg.Margin = agg.Margin.Add(row.Margin)
		agg.RoutingCosts = agg.RoutingCosts.Add(row.RoutingCosts)
		weighted = weighted.Add(row.ECPM.Mul(decimal.NewFromInt(row.VSent)))
	}
	if agg.Turnover.IsPositive() {
		pct := agg.Margin.Div(agg.Turnover)
		agg.MarginPct = &pct
	}
	if agg.VSent > 0 {
		agg.ECPM = weighted.Div(decimal.NewFromInt(agg.VSent))
	}
	return agg
}

func groupKey(row domain.CampaignRow, groupBy GroupBy) string {
	switch groupBy {
	case GroupByPartner:
		return row.Partner
	case GroupByCampaign:
		return row.Campaign
	case GroupByAdvertiser:
		return row.Advertiser
	case GroupByTheme:
		return row.Theme
	case GroupByGeo:
		return row.Geo
	case GroupByType:
		return string(row.Type)
	case GroupByDatabaseType:
		return string(row.DatabaseType)
	default:
		return row.Database
	}
}

func compareMetric(a, b AggregateRow, m Metric) int {
	switch m {
	case MetricVSent:
		return compareInt(a.VSent, b.VSent)
	case MetricMargin:
		return a.Margin.Cmp(b.Margin)
	case MetricRoutingCosts:
		return a.RoutingCosts.Cmp(b.RoutingCosts)
	case MetricECPM:
		return a.ECPM.Cmp(b.ECPM)
	case MetricCount:
		return compareInt(int64(a.Count), int64(b.Count))
	default:
		return a.Turnover.Cmp(b.Turnover)
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// inSet treats an empty set as an inactive predicate.
func inSet(set []string, v string) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
