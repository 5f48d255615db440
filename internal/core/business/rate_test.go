package business

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emops/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRateTableResolve(t *testing.T) {
	table := NewRateTable([]domain.RoutingRate{
		{EffectiveFrom: day(2025, 1, 1), Rate: decimal.RequireFromString("0.05")},
		{EffectiveFrom: day(2024, 1, 1), Rate: decimal.RequireFromString("0.04")},
		{EffectiveFrom: day(2025, 6, 1), Rate: decimal.RequireFromString("0.06")},
	})

	rate, ok := table.Resolve(day(2025, 3, 15))
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.05")))

	// the most recent effective_from not exceeding the date wins on the
	// boundary itself
	rate, ok = table.Resolve(day(2025, 6, 1))
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.06")))

	rate, ok = table.Resolve(day(2024, 7, 1))
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.04")))
}

func TestRateTableNoCoverage(t *testing.T) {
	table := NewRateTable([]domain.RoutingRate{
		{EffectiveFrom: day(2025, 1, 1), Rate: decimal.RequireFromString("0.05")},
	})

	_, ok := table.Resolve(day(2023, 12, 31))
	assert.False(t, ok)

	_, ok = table.Resolve(time.Time{})
	assert.False(t, ok)

	_, ok = NewRateTable(nil).Resolve(day(2025, 1, 1))
	assert.False(t, ok)
}
