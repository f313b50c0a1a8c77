package entity

import "time"

type DealStatus string

const (
	StatusOngoing      DealStatus = "ongoing"
	StatusDealMade     DealStatus = "deal_made"
	StatusCounterOffer DealStatus = "counter_offer"
	StatusRejected     DealStatus = "rejected"
	StatusNeedsInfo    DealStatus = "needs_info"
)

type CurrencyConvention string

const (
	// Symbol-prefixed minor-unit currency, e.g. "$12.50".
	ConventionUSD CurrencyConvention = "usd"
	// Grouped-digit currency with magnitude suffixes, e.g. "Rp1.000.000", "500 ribu".
	ConventionIDR CurrencyConvention = "idr"
)

// Offer is a monetary amount parsed out of free text. Ephemeral: only
// the committed amount enters a NegotiationResult.
type Offer struct {
	Amount     float64
	Convention CurrencyConvention
	Source     string
}

// NegotiationResult is produced fresh each turn and never merged across
// turns.
type NegotiationResult struct {
	DealStatus      DealStatus `json:"deal_status"`
	CounterOffer    float64    `json:"counter_offer"`
	Accepted        bool       `json:"accepted"`
	MessageToBuyer  string     `json:"message_to_buyer"`
	MessageToSeller string     `json:"message_to_seller"`
	Timestamp       int64      `json:"timestamp"`
}

// Stats are process-wide negotiation metrics, reset whenever the
// negotiated item is replaced.
type Stats struct {
	TotalInquiries    int       `json:"total_inquiries"`
	OffersReceived    int       `json:"offers_received"`
	DealsMade         int       `json:"deals_made"`
	AverageFinalPrice float64   `json:"average_final_price"`
	StartTime         time.Time `json:"start_time"`
}
