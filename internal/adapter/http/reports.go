package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"emops/internal/core/business"
	"emops/internal/core/domain"
	"emops/internal/core/port"
)

// handleReport runs an aggregation over the client's rows. Criteria come
// from query parameters: from/to (YYYY-MM-DD, inclusive), group_by, sort,
// order (asc|desc), top, comma-separated set filters and boolean flags.
// Invalid parameters produce HTTP 400; an empty result set is a valid
// zero-valued report, never an error.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportReq(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report, err := h.reports.Build(r.Context(), chi.URLParam(r, "client"), req)
	if err != nil {
		h.logger.Error("report error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// parseReportReq translates query-string parameters into a report request.
func parseReportReq(r *http.Request) (port.ReportReq, error) {
	var (
		q   = r.URL.Query()
		req port.ReportReq
	)

	groupBy, ok := business.ParseGroupBy(q.Get("group_by"))
	if !ok {
		return req, fmt.Errorf("invalid group_by %q", q.Get("group_by"))
	}
	req.GroupBy = groupBy

	from, ok := parseDateParam(q.Get("from"))
	if !ok {
		return req, fmt.Errorf("invalid 'from' date")
	}
	req.Criteria.From = from
	to, ok := parseDateParam(q.Get("to"))
	if !ok {
		return req, fmt.Errorf("invalid 'to' date")
	}
	req.Criteria.To = to

	req.Criteria.Geos = splitParam(q.Get("geo"))
	req.Criteria.Partners = splitParam(q.Get("partner"))
	req.Criteria.Campaigns = splitParam(q.Get("campaign"))
	req.Criteria.Advertisers = splitParam(q.Get("advertiser"))
	req.Criteria.Themes = splitParam(q.Get("theme"))
	req.Criteria.Databases = splitParam(q.Get("database"))
	for _, raw := range splitParam(q.Get("type")) {
		req.Criteria.Types = append(req.Criteria.Types, domain.PricingModel(raw))
	}
	for _, raw := range splitParam(q.Get("database_type")) {
		req.Criteria.DatabaseTypes = append(req.Criteria.DatabaseTypes, domain.DatabaseType(raw))
	}
	req.Criteria.OnlyInternalPartners = boolParam(q.Get("only_internal_partners"))
	req.Criteria.IncludeInternalInvoiceOffice = boolParam(q.Get("include_internal_invoice_office"))

	metric, ok := business.ParseMetric(q.Get("sort"))
	if !ok {
		return req, fmt.Errorf("invalid sort metric %q", q.Get("sort"))
	}
	req.Ranking.Metric = metric
	switch q.Get("order") {
	case "", "desc":
	case "asc":
		req.Ranking.Ascending = true
	default:
		return req, fmt.Errorf("invalid order %q", q.Get("order"))
	}
	if raw := q.Get("top"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil || top < 0 {
			return req, fmt.Errorf("invalid top %q", raw)
		}
		req.Ranking.Top = top
	}
	return req, nil
}

// splitParam parses a comma-separated multi-value filter. Empty segments
// are dropped; an empty parameter means the filter is inactive.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func boolParam(raw string) bool {
	return raw == "true" || raw == "1"
}
