package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emops/internal/adapter/usecase"
	"emops/internal/core/business"
	"emops/internal/core/domain"
	"emops/internal/core/port"
	"emops/internal/core/port/mocks"
)

func testHandler(t *testing.T) (*Handler, *mocks.MockCampaignRepository, *mocks.MockCatalogRepository) {
	rows := mocks.NewMockCampaignRepository(t)
	catalogs := mocks.NewMockCatalogRepository(t)
	shares := mocks.NewMockShareLinkRepository(t)

	campaigns := usecase.NewCampaignUseCase(rows, catalogs, business.DefaultRoutingRate)
	reports := usecase.NewReportUseCase(rows, catalogs, shares)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(campaigns, reports, nil, time.Hour, logger), rows, catalogs
}

func emptyCatalog() *business.Catalog {
	return business.NewCatalog(nil, nil, nil)
}

func TestReportEndpoint(t *testing.T) {
	h, rows, catalogs := testHandler(t)

	turnover := decimal.RequireFromString("950")
	rows.EXPECT().List(mock.Anything, "demo", mock.AnythingOfType("port.ListQuery")).
		Return([]domain.CampaignRow{{
			Client: "demo", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			Database: "list", VSent: 1000, Turnover: turnover, Margin: turnover,
			ECPM:          turnover,
			InvoiceOffice: domain.InvoiceOfficeCAR,
		}}, nil)
	catalogs.EXPECT().LoadCatalog(mock.Anything, "demo").Return(emptyCatalog(), nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/demo/reports?group_by=database&from=2025-01-01&to=2025-01-31&sort=ecpm&order=desc&top=10", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report business.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, int64(1000), report.KPIs.VSent)
	require.Len(t, report.Ranking, 1)
	assert.Equal(t, "list", report.Ranking[0].Key)
	require.Len(t, report.Trend, 1)
	assert.Equal(t, "2025-01-05", report.Trend[0].Date)
}

func TestReportBadParams(t *testing.T) {
	h, _, _ := testHandler(t)

	for _, target := range []string{
		"/api/v1/demo/reports?group_by=bogus",
		"/api/v1/demo/reports?from=01-01-2025",
		"/api/v1/demo/reports?sort=bogus",
		"/api/v1/demo/reports?order=sideways",
		"/api/v1/demo/reports?top=-1",
	} {
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCampaignGetNotFound(t *testing.T) {
	h, rows, _ := testHandler(t)

	id := uuid.New()
	rows.EXPECT().Get(mock.Anything, "demo", id).Return(nil, port.ErrNotFound)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/demo/campaigns/"+id.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportCSV(t *testing.T) {
	h, rows, catalogs := testHandler(t)

	rows.EXPECT().List(mock.Anything, "demo", mock.AnythingOfType("port.ListQuery")).
		Return(nil, nil)
	catalogs.EXPECT().LoadCatalog(mock.Anything, "demo").Return(emptyCatalog(), nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/demo/reports/export.csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "label,vSent,qty,turnover")
}

func TestRecomputeWithoutQueue(t *testing.T) {
	h, _, _ := testHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/demo/recompute", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestParseReportReqFilters(t *testing.T) {
	q := url.Values{}
	q.Set("geo", "FR, DE ,")
	q.Set("type", "CPM,CPC")
	q.Set("only_internal_partners", "true")
	q.Set("include_internal_invoice_office", "1")
	r := httptest.NewRequest(http.MethodGet, "/api/v1/demo/reports?"+q.Encode(), nil)

	req, err := parseReportReq(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"FR", "DE"}, req.Criteria.Geos)
	assert.Equal(t, []domain.PricingModel{domain.PricingCPM, domain.PricingCPC}, req.Criteria.Types)
	assert.True(t, req.Criteria.OnlyInternalPartners)
	assert.True(t, req.Criteria.IncludeInternalInvoiceOffice)
	// defaults
	assert.Equal(t, business.GroupByDatabase, req.GroupBy)
	assert.Equal(t, business.MetricTurnover, req.Ranking.Metric)
	assert.False(t, req.Ranking.Ascending)
}
