package service

import (
	"fmt"

	"negobot/internal/domain/entity"
)

// ComposeReply renders buyer and seller messages for a rule-based
// negotiation outcome. The seller report is always English and prefixed
// [INFO] or [ACTION REQUIRED].
func ComposeReply(result entity.NegotiationResult, item *entity.Item, offer *entity.Offer, buyerID string, lang Language) (toBuyer, toSeller string) {
	profile := ProfileItem(item)
	counter := FormatCurrency(result.CounterOffer, lang)
	minimum := FormatCurrency(item.MinimumPrice, lang)

	offered := ""
	if offer != nil {
		offered = FormatCurrency(offer.Amount, lang)
	}

	switch result.DealStatus {
	case entity.StatusDealMade:
		if lang == LanguageIndonesian {
			toBuyer = fmt.Sprintf("Sip! Saya terima tawaran %s untuk %s. Kapan mau diambil?", counter, item.Name)
		} else {
			toBuyer = fmt.Sprintf("Perfect! I accept your offer of %s. When would you like to pick up the %s?", counter, item.Name)
		}
		toSeller = fmt.Sprintf("[INFO] DEAL MADE! Buyer %s offered %s which meets our target price. Arrange pickup details.", buyerID, counter)

	case entity.StatusCounterOffer:
		if lang == LanguageIndonesian {
			toBuyer = fmt.Sprintf("Makasih tawarannya! Saya harap bisa di %s. Barangnya berkualitas: %s. Gimana?", counter, profile.SellingPoints)
		} else {
			toBuyer = fmt.Sprintf("Thanks for your offer! I was hoping to get closer to %s. It's a really quality piece with %s. Would that work for you?", counter, profile.SellingPoints)
		}
		toSeller = fmt.Sprintf("[INFO] Buyer %s offered %s. I countered with %s. This is within negotiable range.", buyerID, offered, counter)

	case entity.StatusRejected:
		if lang == LanguageIndonesian {
			toBuyer = fmt.Sprintf("Terima kasih minatnya, tapi %s terlalu rendah. Paling rendah saya bisa %s. Gimana?", offered, minimum)
		} else {
			toBuyer = fmt.Sprintf("I appreciate your interest, but %s is a bit too low for me. The lowest I could go is %s given the quality and condition. Would you consider that?", offered, minimum)
		}
		toSeller = fmt.Sprintf("[INFO] Buyer %s offered %s which is below our minimum of %s. I suggested our minimum price.", buyerID, offered, minimum)

	default:
		if lang == LanguageIndonesian {
			toBuyer = fmt.Sprintf("Halo! %s masih tersedia. Ada yang mau ditanyakan, atau mau langsung nawar?", item.Name)
		} else {
			toBuyer = fmt.Sprintf("Hi! The %s is still available. Feel free to ask questions or make an offer.", item.Name)
		}
		toSeller = fmt.Sprintf("[INFO] Buyer %s is inquiring about %s. No offer yet.", buyerID, item.Name)
	}

	return toBuyer, toSeller
}

// ApologyMessage is the fixed fallback when an external collaborator
// fails mid-turn.
func ApologyMessage(lang Language) string {
	if lang == LanguageIndonesian {
		return "Maaf, saya sedang mengalami gangguan teknis. Mohon tunggu sebentar."
	}
	return "I'm having technical difficulties. Please give me a moment."
}

// OnboardingMessage asks the buyer for a product reference when the
// session has no product context yet.
func OnboardingMessage(lang Language) string {
	if lang == LanguageIndonesian {
		return "Halo! Kirim ID produk dulu ya supaya saya bisa bantu nego. Contoh: PROD123456 Halo, masih available?"
	}
	return "Please provide a product ID to start negotiating. Example: PROD123456 Hi, is this still available?"
}

func NotFoundMessage(productID string, lang Language) string {
	if lang == LanguageIndonesian {
		return fmt.Sprintf("Produk %s tidak ditemukan. Cek lagi ID produknya ya.", productID)
	}
	return fmt.Sprintf("Product %s was not found. Please check the product ID and try again.", productID)
}

func InactiveMessage(item *entity.Item, lang Language) string {
	if lang == LanguageIndonesian {
		return fmt.Sprintf("Maaf, %s sudah tidak dijual.", item.Name)
	}
	return fmt.Sprintf("Sorry, %s is no longer active for sale.", item.Name)
}

// ItemFoundMessage summarizes a freshly resolved item when the buyer
// sent only a product id with no message.
func ItemFoundMessage(item *entity.Item, lang Language) string {
	profile := ProfileItem(item)
	price := FormatCurrency(item.ListingPrice, lang)

	if lang == LanguageIndonesian {
		return fmt.Sprintf("%s [%s] - %s, stok %d, kondisi: %s. Silakan tanya atau langsung nawar!",
			item.Name, item.ID, price, item.Stock, profile.Condition)
	}
	return fmt.Sprintf("Found %s [%s] - %s, %d in stock, condition: %s. Ask a question or make an offer!",
		item.Name, item.ID, price, item.Stock, profile.Condition)
}
