package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsAggregatorRunningAverage(t *testing.T) {
	agg := NewStatsAggregator()

	agg.RecordInquiry()
	agg.RecordInquiry()
	agg.RecordOffer()
	agg.RecordDeal(100)
	agg.RecordDeal(200)

	stats := agg.Snapshot()
	assert.Equal(t, 2, stats.TotalInquiries)
	assert.Equal(t, 1, stats.OffersReceived)
	assert.Equal(t, 2, stats.DealsMade)
	assert.Equal(t, 150.0, stats.AverageFinalPrice)
}

func TestStatsAggregatorZeroPriceDealKeepsAverage(t *testing.T) {
	agg := NewStatsAggregator()

	agg.RecordDeal(100)
	agg.RecordDeal(0)

	stats := agg.Snapshot()
	assert.Equal(t, 2, stats.DealsMade)
	assert.Equal(t, 100.0, stats.AverageFinalPrice)
}

func TestStatsAggregatorReset(t *testing.T) {
	agg := NewStatsAggregator()
	agg.RecordInquiry()
	agg.RecordDeal(500)

	agg.Reset()

	stats := agg.Snapshot()
	assert.Equal(t, 0, stats.TotalInquiries)
	assert.Equal(t, 0, stats.DealsMade)
	assert.Equal(t, 0.0, stats.AverageFinalPrice)
}
