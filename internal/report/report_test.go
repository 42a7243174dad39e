package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionfit/gym-management-backend/internal/service"
)

func TestRenderSummary(t *testing.T) {
	stats := &service.Stats{
		TotalMembers:    12,
		ActiveMembers:   9,
		InactiveMembers: 3,
		MonthlyRevenue:  decimal.RequireFromString("359.10"),
	}

	pdf, err := RenderSummary(stats, time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Greater(t, len(pdf), 500)
}

func TestRenderSummaryEmptyStats(t *testing.T) {
	pdf, err := RenderSummary(&service.Stats{}, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
