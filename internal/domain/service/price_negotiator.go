package service

import (
	"time"

	"negobot/internal/domain/entity"
)

// Negotiate maps a price band and an optional offer to a negotiation
// outcome. Pure and total; message composition is a templating concern
// handled elsewhere. Each turn is decided independently: the function
// keeps no memory of prior offers.
func Negotiate(band entity.PriceBand, offer *entity.Offer) entity.NegotiationResult {
	result := entity.NegotiationResult{
		DealStatus: entity.StatusOngoing,
		Timestamp:  time.Now().Unix(),
	}

	if offer == nil {
		return result
	}

	amount := offer.Amount
	switch {
	case amount >= band.Target:
		result.DealStatus = entity.StatusDealMade
		result.Accepted = true
		result.CounterOffer = amount

	case amount >= band.Minimum:
		// Half-split heuristic: move the offer halfway toward the
		// target, never past it.
		counter := amount + (band.Target-amount)*0.5
		if counter > band.Target {
			counter = band.Target
		}
		result.DealStatus = entity.StatusCounterOffer
		result.CounterOffer = counter

	default:
		// Suggested floor, not an acceptance.
		result.DealStatus = entity.StatusRejected
		result.CounterOffer = band.Minimum
	}

	return result
}
