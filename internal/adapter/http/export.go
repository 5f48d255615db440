package httpadapter

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emops/internal/core/business"
)

// handleReportExport streams the ranking of a report as CSV with the same
// criteria parameters as the JSON report endpoint.
func (h *Handler) handleReportExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportReq(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report, err := h.reports.Build(r.Context(), chi.URLParam(r, "client"), req)
	if err != nil {
		h.logger.Error("export error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"label", "vSent", "qty", "turnover", "margin", "marginPct", "routingCosts", "ecpm", "count"})
	for _, g := range report.Ranking {
		_ = cw.Write(exportRecord(g))
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err))
	}
}

func exportRecord(g business.AggregateRow) []string {
	marginPct := ""
	if g.MarginPct != nil {
		marginPct = g.MarginPct.String()
	}
	return []string{
		g.Label,
		strconv.FormatInt(g.VSent, 10),
		strconv.FormatInt(g.Qty, 10),
		g.Turnover.String(),
		g.Margin.String(),
		marginPct,
		g.RoutingCosts.String(),
		g.ECPM.String(),
		strconv.Itoa(g.Count),
	}
}
