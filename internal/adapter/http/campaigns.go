package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emops/internal/core/port"
	"emops/internal/queue"
)

// handleCampaignCreate decodes a campaign input, runs derivation through
// the usecase and returns the stored row with all derived fields. Parsing
// errors produce HTTP 400, internal failures HTTP 500.
func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	row, err := h.campaigns.Create(r.Context(), chi.URLParam(r, "client"), in)
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, row)
}

// handleCampaignList returns the client's rows, optionally narrowed by
// `from`, `to` (YYYY-MM-DD) and `limit` query parameters.
func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.ListQuery
	)
	from, ok := parseDateParam(q.Get("from"))
	if !ok {
		http.Error(w, "invalid 'from' date", http.StatusBadRequest)
		return
	}
	req.From = from
	to, ok := parseDateParam(q.Get("to"))
	if !ok {
		http.Error(w, "invalid 'to' date", http.StatusBadRequest)
		return
	}
	req.To = to
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		req.Limit = limit
	}

	rows, err := h.campaigns.List(r.Context(), chi.URLParam(r, "client"), req)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	row, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "client"), id)
	if errors.Is(err, port.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, row)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var in port.CampaignInput
	if err = json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	row, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "client"), id, in)
	if errors.Is(err, port.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("update campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, row)
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	err = h.campaigns.Delete(r.Context(), chi.URLParam(r, "client"), id)
	if errors.Is(err, port.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("delete campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRecompute publishes a recompute event for the client. Used by the
// catalog administration workflow after reference data changes.
func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	if h.publisher == nil {
		http.Error(w, "recompute queue not configured", http.StatusServiceUnavailable)
		return
	}
	client := chi.URLParam(r, "client")
	if err := h.publisher.Publish(queue.RecomputeEvent{Client: client}); err != nil {
		h.logger.Error("publish recompute error", slog.String("client", client), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// parseDateParam parses an optional YYYY-MM-DD parameter. Empty input is
// valid and yields nil.
func parseDateParam(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
