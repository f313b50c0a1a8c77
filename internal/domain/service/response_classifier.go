package service

import (
	"strings"
	"time"

	"negobot/internal/domain/entity"
)

const (
	buyerSectionMarker  = "[message_to_buyer]"
	sellerSectionMarker = "[message_to_seller]"

	standardResponseNotice = "[INFO] Generated standard response to buyer."
)

// statusFamily is one keyword family of the fixed-priority status scan.
type statusFamily struct {
	status   entity.DealStatus
	accepted bool
	cues     []string
}

var statusFamilies = []statusFamily{
	{entity.StatusDealMade, true, []string{"deal", "sold", "agreed", "accept your offer", "it's yours"}},
	{entity.StatusCounterOffer, false, []string{"counter", "how about", "would you consider", "meet me at"}},
	{entity.StatusRejected, false, []string{"too low", "cannot accept", "below my minimum", "sorry"}},
	{entity.StatusNeedsInfo, false, []string{"action required"}},
}

// Classify turns free-text generator output into structured negotiation
// fields. It is the seam between the trusted decision engine and an
// untrusted text generator: arbitrary, malformed input is recovered
// locally and never fails the turn.
func Classify(freeText string) entity.NegotiationResult {
	result := entity.NegotiationResult{
		DealStatus: entity.StatusOngoing,
		Timestamp:  time.Now().Unix(),
	}

	result.MessageToBuyer, result.MessageToSeller = extractSections(freeText)
	if result.MessageToBuyer == "" && result.MessageToSeller == "" {
		// No section markers at all: treat the whole text as the buyer
		// message.
		result.MessageToBuyer = freeText
		result.MessageToSeller = standardResponseNotice
	}

	lowered := strings.ToLower(freeText)
	for _, family := range statusFamilies {
		if containsAny(lowered, family.cues) {
			result.DealStatus = family.status
			result.Accepted = family.accepted
			break
		}
	}

	if result.DealStatus == entity.StatusDealMade || result.DealStatus == entity.StatusCounterOffer {
		if offer, ok := ExtractOffer(freeText); ok {
			result.CounterOffer = offer.Amount
		}
	}

	return result
}

// extractSections scans lines: an exact section marker opens that
// accumulator, any other bracketed line closes the current one, other
// lines append to the open accumulator.
func extractSections(freeText string) (toBuyer, toSeller string) {
	var buyer, seller strings.Builder
	var current *strings.Builder

	for _, line := range strings.Split(freeText, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == buyerSectionMarker:
			current = &buyer
		case line == sellerSectionMarker:
			current = &seller
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			current = nil
		case line != "" && current != nil:
			current.WriteString(line)
			current.WriteString(" ")
		}
	}

	return strings.TrimSpace(buyer.String()), strings.TrimSpace(seller.String())
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
