package service

import (
	"strings"

	"negobot/internal/domain/entity"
)

// ItemProfile is negotiation-relevant context mined from the free-text
// listing description. It feeds the completion prompt and the
// counter-offer replies.
type ItemProfile struct {
	Condition     string
	KnownFlaws    string
	SellingPoints string
	DeliveryInfo  string
}

var (
	conditionExcellent = []string{"excellent", "perfect", "mint", "like new"}
	conditionGood      = []string{"very good", "good condition", "well maintained"}
	conditionFair      = []string{"fair", "used", "worn"}
	conditionGoodID    = []string{"kondisi baik", "sangat baik"}

	flawIndicators = []string{
		"scratch", "dent", "crack", "worn", "flaw", "issue", "problem",
		"lecet", "retak", "cacat", "rusak", "bekas",
	}

	positiveIndicators = []string{
		"original", "included", "warranty", "new", "premium", "quality",
		"asli", "berkualitas", "bagus", "lengkap",
	}

	pickupIndicators   = []string{"pickup", "cod", "meet", "ambil"}
	deliveryIndicators = []string{"shipping", "delivery", "kirim", "diantar"}
)

// ProfileItem derives an ItemProfile from an item's description. An
// explicitly set condition on the item wins over the heuristic.
func ProfileItem(item *entity.Item) ItemProfile {
	profile := ItemProfile{
		Condition:     extractCondition(item.Description),
		KnownFlaws:    extractSentences(item.Description, flawIndicators, 0, "No major flaws mentioned"),
		SellingPoints: extractSentences(item.Description, positiveIndicators, 3, "Good quality item"),
		DeliveryInfo:  extractDeliveryInfo(item.Description),
	}
	if item.Condition != "" {
		profile.Condition = item.Condition
	}
	return profile
}

func extractCondition(description string) string {
	lowered := strings.ToLower(description)

	switch {
	case containsAny(lowered, conditionExcellent):
		return "Excellent condition"
	case containsAny(lowered, conditionGood):
		return "Good condition"
	case containsAny(lowered, conditionFair):
		return "Fair condition"
	case containsAny(lowered, conditionGoodID):
		return "Kondisi baik"
	default:
		return "Used condition"
	}
}

// extractSentences keeps sentences containing any indicator, up to
// limit (0 = unlimited), falling back to a default.
func extractSentences(description string, indicators []string, limit int, fallback string) string {
	var kept []string
	for _, sentence := range strings.Split(description, ". ") {
		if containsAny(strings.ToLower(sentence), indicators) {
			kept = append(kept, strings.TrimSpace(sentence))
			if limit > 0 && len(kept) == limit {
				break
			}
		}
	}

	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, ". ")
}

func extractDeliveryInfo(description string) string {
	lowered := strings.ToLower(description)

	switch {
	case containsAny(lowered, pickupIndicators):
		return "Pickup available"
	case containsAny(lowered, deliveryIndicators):
		return "Shipping/delivery available"
	default:
		return "Contact seller for delivery options"
	}
}
