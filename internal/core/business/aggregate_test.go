package business

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emops/internal/core/domain"
)

func aggRow(date time.Time, database string, vSent int64, turnover, ecpm string) domain.CampaignRow {
	t := dec(turnover)
	return domain.CampaignRow{
		Date:          date,
		Database:      database,
		VSent:         vSent,
		Turnover:      t,
		Margin:        t, // zero routing costs unless overridden by caller
		RoutingCosts:  decimal.Zero,
		ECPM:          dec(ecpm),
		InvoiceOffice: domain.InvoiceOfficeCAR,
	}
}

// Two rows in one group with vSent 100/900 and ecpm 500/1000 must produce
// the volume-weighted 950, not the simple average 750.
func TestWeightedECPM(t *testing.T) {
	rows := []domain.CampaignRow{
		aggRow(day(2025, 1, 1), "list", 100, "50", "500"),
		aggRow(day(2025, 1, 1), "list", 900, "900", "1000"),
	}

	report := BuildReport(rows, GroupByDatabase, Criteria{}, Ranking{}, nil)

	require.Len(t, report.Ranking, 1)
	assert.True(t, report.Ranking[0].ECPM.Equal(dec("950")), "got %s", report.Ranking[0].ECPM)
	assert.True(t, report.KPIs.ECPM.Equal(dec("950")))
}

func TestEmptyFilteredSet(t *testing.T) {
	rows := []domain.CampaignRow{aggRow(day(2025, 1, 1), "list", 100, "50", "500")}
	from := day(2030, 1, 1)
	crit := Criteria{From: &from}

	report := BuildReport(rows, GroupByDatabase, crit, Ranking{}, nil)

	assert.Equal(t, int64(0), report.KPIs.VSent)
	assert.True(t, report.KPIs.Turnover.IsZero())
	assert.True(t, report.KPIs.Margin.IsZero())
	assert.Nil(t, report.KPIs.MarginPct)
	assert.True(t, report.KPIs.ECPM.IsZero())
	assert.Empty(t, report.Ranking)
	assert.Empty(t, report.Trend)
}

func TestMarginPct(t *testing.T) {
	withMargin := fold("k", "k", []domain.CampaignRow{
		{Turnover: dec("200"), Margin: dec("50")},
	})
	require.NotNil(t, withMargin.MarginPct)
	assert.True(t, withMargin.MarginPct.Equal(dec("0.25")))

	zeroTurnover := fold("k", "k", []domain.CampaignRow{
		{Turnover: decimal.Zero, Margin: dec("-10")},
	})
	assert.Nil(t, zeroTurnover.MarginPct)
}

// Aggregating the whole set must equal recombining the sums of two
// disjoint partitions. Weighted eCPM is recomputed from raw sums, not
// composed from the partitions' pre-weighted values.
func TestAggregationAssociativeUnderPartitioning(t *testing.T) {
	all := []domain.CampaignRow{
		aggRow(day(2025, 1, 1), "a", 100, "50", "500"),
		aggRow(day(2025, 1, 2), "b", 900, "900", "1000"),
		aggRow(day(2025, 1, 3), "a", 250, "100", "400"),
		aggRow(day(2025, 1, 4), "c", 0, "10", "0"),
	}
	left, right := all[:2], all[2:]

	whole := fold("", "", all)
	l := fold("", "", left)
	r := fold("", "", right)

	assert.Equal(t, whole.VSent, l.VSent+r.VSent)
	assert.True(t, whole.Turnover.Equal(l.Turnover.Add(r.Turnover)))
	assert.True(t, whole.Margin.Equal(l.Margin.Add(r.Margin)))
	assert.True(t, whole.RoutingCosts.Equal(l.RoutingCosts.Add(r.RoutingCosts)))
	assert.Equal(t, whole.Count, l.Count+r.Count)
}

func TestFilterIdempotent(t *testing.T) {
	rows := []domain.CampaignRow{
		aggRow(day(2025, 1, 1), "a", 100, "50", "500"),
		aggRow(day(2025, 2, 1), "b", 900, "900", "1000"),
	}
	from, to := day(2025, 1, 1), day(2025, 1, 31)
	crit := Criteria{From: &from, To: &to, Databases: []string{"a"}}

	once := Filter(rows, crit, nil)
	twice := Filter(once, crit, nil)

	assert.Equal(t, once, twice)
	require.Len(t, once, 1)
	assert.Equal(t, "a", once[0].Database)
}

// Group keys are the raw field values: case variants of the same logical
// entity stay separate groups.
func TestGroupKeysNotNormalized(t *testing.T) {
	rows := []domain.CampaignRow{
		aggRow(day(2025, 1, 1), "List FR", 100, "50", "500"),
		aggRow(day(2025, 1, 1), "list fr", 100, "50", "500"),
	}

	groups := Group(rows, GroupByDatabase)

	assert.Len(t, groups, 2)
}

func TestRankingStableTieBreakAndTop(t *testing.T) {
	rows := []domain.CampaignRow{
		aggRow(day(2025, 1, 1), "first", 100, "500", "1000"),
		aggRow(day(2025, 1, 1), "second", 100, "500", "1000"), // ties with first
		aggRow(day(2025, 1, 1), "third", 100, "900", "1000"),
	}

	ranked := Rank(Group(rows, GroupByDatabase), Ranking{Metric: MetricTurnover})
	require.Len(t, ranked, 3)
	assert.Equal(t, "third", ranked[0].Key)
	// first-seen group wins ties
	assert.Equal(t, "first", ranked[1].Key)
	assert.Equal(t, "second", ranked[2].Key)

	top := Rank(Group(rows, GroupByDatabase), Ranking{Metric: MetricTurnover, Top: 1})
	require.Len(t, top, 1)
	assert.Equal(t, "third", top[0].Key)

	asc := Rank(Group(rows, GroupByDatabase), Ranking{Metric: MetricTurnover, Ascending: true})
	assert.Equal(t, "first", asc[0].Key)
}

func TestTrendDailyAscending(t *testing.T) {
	rows := []domain.CampaignRow{
		aggRow(day(2025, 1, 3), "a", 100, "100", "1000"),
		aggRow(day(2025, 1, 1), "a", 100, "100", "1000"),
		aggRow(day(2025, 1, 1), "b", 300, "300", "1000"),
	}

	trend := Trend(rows)

	require.Len(t, trend, 2)
	assert.Equal(t, "2025-01-01", trend[0].Date)
	assert.Equal(t, int64(400), trend[0].VSent)
	assert.True(t, trend[0].Turnover.Equal(dec("400")))
	assert.Equal(t, "2025-01-03", trend[1].Date)
}

func TestInternalInvoiceOfficeExcludedByDefault(t *testing.T) {
	internal := aggRow(day(2025, 1, 1), "a", 100, "50", "500")
	internal.InvoiceOffice = domain.InvoiceOfficeINT
	rows := []domain.CampaignRow{
		internal,
		aggRow(day(2025, 1, 1), "b", 100, "50", "500"),
	}

	def := Filter(rows, Criteria{}, nil)
	require.Len(t, def, 1)
	assert.Equal(t, "b", def[0].Database)

	all := Filter(rows, Criteria{IncludeInternalInvoiceOffice: true}, nil)
	assert.Len(t, all, 2)
}

func TestOnlyInternalPartners(t *testing.T) {
	cat := testCatalog()
	in := aggRow(day(2025, 1, 1), "a", 100, "50", "500")
	in.Partner = "InHouse Media"
	out := aggRow(day(2025, 1, 1), "b", 100, "50", "500")
	out.Partner = "MailPartners"

	got := Filter([]domain.CampaignRow{in, out},
		Criteria{OnlyInternalPartners: true, IncludeInternalInvoiceOffice: true}, cat)

	require.Len(t, got, 1)
	assert.Equal(t, "InHouse Media", got[0].Partner)
}

func TestDateRangeInclusive(t *testing.T) {
	rows := []domain.CampaignRow{
		aggRow(day(2025, 1, 1), "a", 1, "1", "0"),
		aggRow(day(2025, 1, 15), "b", 1, "1", "0"),
		aggRow(day(2025, 1, 31), "c", 1, "1", "0"),
		aggRow(day(2025, 2, 1), "d", 1, "1", "0"),
	}
	from, to := day(2025, 1, 1), day(2025, 1, 31)

	got := Filter(rows, Criteria{From: &from, To: &to}, nil)

	assert.Len(t, got, 3)
}
