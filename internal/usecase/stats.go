package usecase

import (
	"sync"
	"time"

	"negobot/internal/domain/entity"
)

// StatsAggregator keeps process-wide negotiation metrics. All methods
// are safe for concurrent turns.
type StatsAggregator struct {
	mu    sync.Mutex
	stats entity.Stats
}

func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{
		stats: entity.Stats{StartTime: time.Now()},
	}
}

func (a *StatsAggregator) RecordInquiry() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.TotalInquiries++
}

func (a *StatsAggregator) RecordOffer() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.OffersReceived++
}

// RecordDeal counts a closed deal and folds the final price into the
// running mean over closed deals.
func (a *StatsAggregator) RecordDeal(finalPrice float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.DealsMade++
	if finalPrice > 0 {
		a.stats.AverageFinalPrice = (a.stats.AverageFinalPrice*float64(a.stats.DealsMade-1) + finalPrice) / float64(a.stats.DealsMade)
	}
}

func (a *StatsAggregator) Snapshot() entity.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Reset accompanies any replacement of the negotiated item.
func (a *StatsAggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats = entity.Stats{StartTime: time.Now()}
}

func (a *StatsAggregator) UptimeHours() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return time.Since(a.stats.StartTime).Hours()
}
