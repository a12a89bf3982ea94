package events

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDayStampUsesLocation(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata not available")
	}
	utc := time.Date(2025, 12, 10, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-12-10", DayStamp(utc, time.UTC))
	assert.Equal(t, "2025-12-11", DayStamp(utc, ist))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "stats:daily:2025-12-10:r1:revenue", DailyRevenueKey("2025-12-10", "r1"))
	assert.Equal(t, "stats:daily:2025-12-10:r1:orders", DailyOrdersKey("2025-12-10", "r1"))
	assert.Equal(t, "stats:daily:2025-12-10:r1:items", DailyItemsKey("2025-12-10", "r1"))
	assert.Equal(t, "stats:daily:2025-12-10:r1:item_names", DailyItemNamesKey("2025-12-10", "r1"))
	assert.Equal(t, "stats:daily:2025-12-10:r1:service", DailyServiceKey("2025-12-10", "r1"))
	assert.Equal(t, []byte("r1"), OrderEvent{RestaurantID: "r1"}.Key())
}

func TestRevenueUnitsRoundTrip(t *testing.T) {
	tests := []struct {
		amount string
		units  int64
	}{
		{amount: "1889.475", units: 1889475},
		{amount: "0", units: 0},
		{amount: "735", units: 735000},
		{amount: "-892.5", units: -892500},
	}
	for _, testCase := range tests {
		t.Run(testCase.amount, func(t *testing.T) {
			amount := decimal.RequireFromString(testCase.amount)
			assert.Equal(t, testCase.units, RevenueUnits(amount))
			assert.True(t, amount.Equal(RevenueFromUnits(testCase.units)))
		})
	}
}
