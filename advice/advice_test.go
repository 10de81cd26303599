package advice

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rvaldes/tradeweek/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleSummary(t *testing.T) ledger.Summary {
	t.Helper()

	w := ledger.NewWeek(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), d("100"))
	assert.NoError(t, w.SetDay(ledger.Monday, d("50"), ledger.Reinvestment))
	assert.NoError(t, w.SetDay(ledger.Tuesday, d("-20"), ledger.Unset))
	assert.NoError(t, w.SetDay(ledger.Friday, d("30"), ledger.Withdrawal))
	return w.Summarize()
}

func TestWithdrawalSplit(t *testing.T) {
	t.Parallel()

	withdraw, reinvest := WithdrawalSplit(d("60"))
	assert.True(t, withdraw.Equal(d("18")))
	assert.True(t, reinvest.Equal(d("42")))

	withdraw, reinvest = WithdrawalSplit(d("-40"))
	assert.True(t, withdraw.IsZero())
	assert.True(t, reinvest.IsZero())
}

func TestDailyLeadsWithMetrics(t *testing.T) {
	t.Parallel()

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		// 2026-08-23 is a Sunday.
		now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC).AddDate(0, 0, int(wd))
		msg := Daily(now, sampleSummary(t))

		assert.Contains(t, msg.Title, wd.String())
		assert.Contains(t, msg.Body, "Initial capital $100.00")
		assert.Contains(t, msg.Body, "Balance $160.00")
		assert.Contains(t, msg.Body, "$60.00 (60.00%)")
		assert.NotEmpty(t, strings.TrimSpace(msg.Body))
	}
}

func TestSaturdayIncludesWithdrawalBreakdown(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	msg := Daily(saturday, sampleSummary(t))

	assert.Contains(t, msg.Body, "Suggested withdrawal (30%): $18.00")
	assert.Contains(t, msg.Body, "To reinvest next week: $42.00")
}

func TestSaturdayLossWeekNoWithdrawal(t *testing.T) {
	t.Parallel()

	w := ledger.NewWeek(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), d("100"))
	assert.NoError(t, w.SetDay(ledger.Wednesday, d("-40"), ledger.Unset))

	saturday := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	msg := Daily(saturday, w.Summarize())

	assert.Contains(t, msg.Body, "No withdrawal on a losing week")
	assert.NotContains(t, msg.Body, "Suggested withdrawal")
}
