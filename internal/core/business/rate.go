package business

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"emops/internal/core/domain"
)

// DefaultRoutingRate is the per-message routing cost applied when neither
// a row override nor a versioned table entry covers the send date.
var DefaultRoutingRate = decimal.RequireFromString("0.00035")

// RateTable resolves the routing rate in effect on a given date from
// time-versioned entries. The zero value is an empty table that always
// falls through to the caller's fallback.
type RateTable struct {
	entries []domain.RoutingRate
}

// NewRateTable builds a table from raw entries, ordered by EffectiveFrom
// ascending. Input order does not matter; ties on EffectiveFrom keep the
// last occurrence.
func NewRateTable(entries []domain.RoutingRate) RateTable {
	sorted := make([]domain.RoutingRate, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom)
	})
	return RateTable{entries: sorted}
}

// Resolve returns the rate whose effective period covers the date: the
// entry with the most recent EffectiveFrom not after the date. ok is false
// when the date is zero or precedes every entry; the caller degrades to a
// fallback constant, never to an error.
func (t RateTable) Resolve(date time.Time) (decimal.Decimal, bool) {
	if date.IsZero() {
		return decimal.Zero, false
	}
	for i := len(t.entries) - 1; i >= 0; i-- {
		if !t.entries[i].EffectiveFrom.After(date) {
			return t.entries[i].Rate, true
		}
	}
	return decimal.Zero, false
}
