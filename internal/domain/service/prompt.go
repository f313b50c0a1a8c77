package service

import (
	"fmt"

	"negobot/internal/domain/entity"
)

// BuildSystemPrompt produces the system message framing a completion
// call: item facts, price goals and the exact response format the
// classifier expects back.
func BuildSystemPrompt(item *entity.Item, lang Language) string {
	profile := ProfileItem(item)

	listing := FormatCurrency(item.ListingPrice, lang)
	target := FormatCurrency(item.TargetPrice, lang)
	minimum := FormatCurrency(item.MinimumPrice, lang)

	langInstruction := "LANGUAGE: Respond in English. Use USD format for prices. Use friendly and professional language."
	if lang == LanguageIndonesian {
		langInstruction = "BAHASA: Respons dalam Bahasa Indonesia. Gunakan format Rupiah untuk harga. Gunakan bahasa ramah dan profesional."
	}

	return fmt.Sprintf(`You are Marketplace Pro, an expert AI sales assistant. You are friendly, professional, and an expert negotiator.

DETECTED BUYER LANGUAGE: %s
%s

ITEM DETAILS:
- Product ID: %s
- Item Name: %s
- Description: %s
- Listing Price: %s
- Target Price: %s
- Minimum Price: %s
- Stock Available: %d
- Condition: %s
- Known Flaws: %s
- Key Selling Points: %s
- Delivery: %s

RULES:
1. Respond to the buyer in %s only
2. Your goal is to sell at %s, but you must never go below %s
3. If offer >= target: accept enthusiastically
4. If offer between minimum and target: negotiate upward
5. If offer < minimum: politely decline and counter
6. Be friendly and professional
7. If you need more information, ask specific questions

RESPONSE FORMAT:
%s
Your response to the buyer in %s

%s
Your report to the seller in English, starting with [INFO] or [ACTION REQUIRED]`,
		lang, langInstruction,
		item.ID, item.Name, item.Description,
		listing, target, minimum,
		item.Stock, profile.Condition, profile.KnownFlaws, profile.SellingPoints, profile.DeliveryInfo,
		lang, target, minimum,
		buyerSectionMarker, lang, sellerSectionMarker)
}

// BuildCompletionMessages assembles the ordered request: system prompt,
// trimmed history, current buyer message.
func BuildCompletionMessages(item *entity.Item, lang Language, history []entity.ChatMessage, buyerMessage string) []entity.ChatMessage {
	messages := make([]entity.ChatMessage, 0, len(history)+2)
	messages = append(messages, entity.ChatMessage{
		Role:    entity.RoleSystem,
		Content: BuildSystemPrompt(item, lang),
	})
	messages = append(messages, history...)
	messages = append(messages, entity.ChatMessage{
		Role:    entity.RoleBuyer,
		Content: fmt.Sprintf("Buyer says: %s", buyerMessage),
	})
	return messages
}
