package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"emops/internal/core/business"
	"emops/internal/core/domain"
	"emops/internal/core/port"
)

// ReportUseCase implements port.ReportUseCase. Each call fetches its own
// row set and catalog snapshot, so concurrent requests share no mutable
// state.
type ReportUseCase struct {
	rows     port.CampaignRepository
	catalogs port.CatalogRepository
	shares   port.ShareLinkRepository
}

// NewReportUseCase creates the usecase with the provided repositories.
func NewReportUseCase(rows port.CampaignRepository, catalogs port.CatalogRepository, shares port.ShareLinkRepository) *ReportUseCase {
	return &ReportUseCase{rows: rows, catalogs: catalogs, shares: shares}
}

// Build fetches the client's rows within the requested date range and runs
// the aggregation engine over them.
func (u *ReportUseCase) Build(ctx context.Context, client string, req port.ReportReq) (*business.Report, error) {
	rows, err := u.rows.List(ctx, client, port.ListQuery{From: req.Criteria.From, To: req.Criteria.To})
	if err != nil {
		return nil, err
	}
	cat, err := u.catalogs.LoadCatalog(ctx, client)
	if err != nil {
		return nil, err
	}
	report := business.BuildReport(rows, req.GroupBy, req.Criteria, req.Ranking, cat)
	return &report, nil
}

// Share persists the report request under a fresh token valid for ttl.
func (u *ReportUseCase) Share(ctx context.Context, client string, req port.ReportReq, ttl time.Duration) (*domain.ShareLink, error) {
	params, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode share params: %w", err)
	}
	now := time.Now().UTC()
	link := &domain.ShareLink{
		Token:     uuid.New(),
		Client:    client,
		Params:    params,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err = u.shares.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// BuildShared resolves a share token and replays the stored request
// against fresh data.
func (u *ReportUseCase) BuildShared(ctx context.Context, token uuid.UUID) (*business.Report, error) {
	link, err := u.shares.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.Expired(time.Now().UTC()) {
		return nil, port.ErrShareLinkExpired
	}
	var req port.ReportReq
	if err = json.Unmarshal(link.Params, &req); err != nil {
		return nil, fmt.Errorf("decode share params: %w", err)
	}
	return u.Build(ctx, link.Client, req)
}
