package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emops/internal/core/port"
)

// handleReportShare persists the report criteria under an opaque token and
// returns the public URL. The query parameters are the same as for the
// report endpoint.
func (h *Handler) handleReportShare(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportReq(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	link, err := h.reports.Share(r.Context(), chi.URLParam(r, "client"), req, h.shareTTL)
	if err != nil {
		h.logger.Error("share error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{
		"token":     link.Token.String(),
		"url":       fmt.Sprintf("/public/reports/%s", link.Token),
		"expiresAt": link.ExpiresAt.Format(http.TimeFormat),
	})
}

// handlePublicReport resolves a share token and replays the stored report
// against fresh data. Unknown and expired tokens are both reported as 404
// to avoid leaking which links ever existed.
func (h *Handler) handlePublicReport(w http.ResponseWriter, r *http.Request) {
	token, err := uuid.Parse(chi.URLParam(r, "token"))
	if err != nil {
		http.Error(w, "invalid token", http.StatusBadRequest)
		return
	}
	report, err := h.reports.BuildShared(r.Context(), token)
	if errors.Is(err, port.ErrNotFound) || errors.Is(err, port.ErrShareLinkExpired) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("public report error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
