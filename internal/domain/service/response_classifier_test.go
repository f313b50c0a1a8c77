package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"negobot/internal/domain/entity"
)

func TestClassifySplitsSections(t *testing.T) {
	freeText := "[message_to_buyer]\nHow about $80?\n[message_to_seller]\n[INFO] Buyer offered $75, countered at $80."

	result := Classify(freeText)

	assert.Equal(t, "How about $80?", result.MessageToBuyer)
	assert.Equal(t, "[INFO] Buyer offered $75, countered at $80.", result.MessageToSeller)
	assert.Equal(t, entity.StatusCounterOffer, result.DealStatus)
	assert.Equal(t, 80.0, result.CounterOffer)
}

func TestClassifyWholeTextFallback(t *testing.T) {
	result := Classify("Let me check with the warehouse first.")

	assert.Equal(t, "Let me check with the warehouse first.", result.MessageToBuyer)
	assert.Equal(t, standardResponseNotice, result.MessageToSeller)
	assert.Equal(t, entity.StatusOngoing, result.DealStatus)
}

func TestClassifyStatusFamilies(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		status   entity.DealStatus
		accepted bool
	}{
		{"deal cue", "Deal! It is settled then.", entity.StatusDealMade, true},
		{"accept phrase", "I happily accept your offer.", entity.StatusDealMade, true},
		{"counter cue", "Would you consider $90 instead?", entity.StatusCounterOffer, false},
		{"reject cue", "That is too low for this item.", entity.StatusRejected, false},
		{"needs info cue", "[ACTION REQUIRED] Please confirm the shipping address.", entity.StatusNeedsInfo, false},
		{"no cue", "Thanks for your interest in the bike.", entity.StatusOngoing, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.text)
			assert.Equal(t, tc.status, result.DealStatus)
			assert.Equal(t, tc.accepted, result.Accepted)
		})
	}
}

func TestClassifyDealFamilyWinsOverLaterFamilies(t *testing.T) {
	// "sorry" alone would reject, but the deal family is scanned first.
	result := Classify("Sorry for the wait. Deal, it's yours!")

	assert.Equal(t, entity.StatusDealMade, result.DealStatus)
	assert.True(t, result.Accepted)
}

func TestClassifyIgnoresUnknownBracketedSections(t *testing.T) {
	freeText := "[message_to_buyer]\nStill available.\n[debug]\ninternal note\n"

	result := Classify(freeText)

	assert.Equal(t, "Still available.", result.MessageToBuyer)
	assert.Empty(t, result.MessageToSeller)
}

func TestClassifyRecoversDealPrice(t *testing.T) {
	result := Classify("[message_to_buyer]\nDeal at $95, congratulations!\n")

	assert.Equal(t, entity.StatusDealMade, result.DealStatus)
	assert.Equal(t, 95.0, result.CounterOffer)
}
