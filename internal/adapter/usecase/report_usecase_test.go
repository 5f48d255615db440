package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emops/internal/core/business"
	"emops/internal/core/domain"
	"emops/internal/core/port"
	"emops/internal/core/port/mocks"
)

func reportRows() []domain.CampaignRow {
	mk := func(db string, vSent int64, turnover, ecpm string) domain.CampaignRow {
		t := decimal.RequireFromString(turnover)
		return domain.CampaignRow{
			Client: "demo", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Database: db, VSent: vSent, Turnover: t, Margin: t,
			ECPM:          decimal.RequireFromString(ecpm),
			InvoiceOffice: domain.InvoiceOfficeCAR,
		}
	}
	return []domain.CampaignRow{
		mk("list", 100, "50", "500"),
		mk("list", 900, "900", "1000"),
	}
}

func TestBuildReport(t *testing.T) {
	rows := mocks.NewMockCampaignRepository(t)
	catalogs := mocks.NewMockCatalogRepository(t)
	shares := mocks.NewMockShareLinkRepository(t)

	rows.EXPECT().List(mock.Anything, "demo", mock.AnythingOfType("port.ListQuery")).Return(reportRows(), nil)
	catalogs.EXPECT().LoadCatalog(mock.Anything, "demo").Return(fixtureCatalog(), nil)

	svc := NewReportUseCase(rows, catalogs, shares)
	report, err := svc.Build(context.Background(), "demo", port.ReportReq{GroupBy: business.GroupByDatabase})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), report.KPIs.VSent)
	assert.True(t, report.KPIs.ECPM.Equal(decimal.RequireFromString("950")))
	require.Len(t, report.Ranking, 1)
	assert.Equal(t, "list", report.Ranking[0].Key)
}

// Share stores the request verbatim; BuildShared replays it against fresh
// data for the stored client.
func TestShareRoundTrip(t *testing.T) {
	rows := mocks.NewMockCampaignRepository(t)
	catalogs := mocks.NewMockCatalogRepository(t)
	shares := mocks.NewMockShareLinkRepository(t)

	var stored *domain.ShareLink
	shares.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.ShareLink")).
		Run(func(ctx context.Context, link *domain.ShareLink) { stored = link }).
		Return(nil)

	svc := NewReportUseCase(rows, catalogs, shares)
	req := port.ReportReq{
		GroupBy: business.GroupByPartner,
		Ranking: business.Ranking{Metric: business.MetricMargin, Top: 5},
	}
	link, err := svc.Share(context.Background(), "demo", req, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "demo", stored.Client)
	assert.NotEqual(t, uuid.Nil, link.Token)
	assert.True(t, link.ExpiresAt.After(link.CreatedAt))

	shares.EXPECT().Get(mock.Anything, link.Token).Return(stored, nil)
	rows.EXPECT().List(mock.Anything, "demo", mock.AnythingOfType("port.ListQuery")).Return(reportRows(), nil)
	catalogs.EXPECT().LoadCatalog(mock.Anything, "demo").Return(fixtureCatalog(), nil)

	report, err := svc.BuildShared(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), report.KPIs.VSent)
}

func TestBuildSharedExpired(t *testing.T) {
	rows := mocks.NewMockCampaignRepository(t)
	catalogs := mocks.NewMockCatalogRepository(t)
	shares := mocks.NewMockShareLinkRepository(t)

	token := uuid.New()
	shares.EXPECT().Get(mock.Anything, token).Return(&domain.ShareLink{
		Token:     token,
		Client:    "demo",
		Params:    []byte(`{}`),
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)

	svc := NewReportUseCase(rows, catalogs, shares)
	_, err := svc.BuildShared(context.Background(), token)
	assert.ErrorIs(t, err, port.ErrShareLinkExpired)
}

func TestBuildSharedUnknownToken(t *testing.T) {
	rows := mocks.NewMockCampaignRepository(t)
	catalogs := mocks.NewMockCatalogRepository(t)
	shares := mocks.NewMockShareLinkRepository(t)

	token := uuid.New()
	shares.EXPECT().Get(mock.Anything, token).Return(nil, port.ErrNotFound)

	svc := NewReportUseCase(rows, catalogs, shares)
	_, err := svc.BuildShared(context.Background(), token)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
