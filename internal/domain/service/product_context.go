package service

import (
	"regexp"
	"strings"
)

// Identifier extraction rules, first match wins. Explicit forms outrank
// the bare high-entropy token so "product id: ABC-789 please" never
// resolves to "please".
var productIDRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)product[_ ]id:?\s*([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)\bid:?\s*([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`#([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?m)^([a-zA-Z0-9_-]{6,})$`),
}

// ExtractProductID finds a referenced product identifier in free text.
// Returns false when the message references no product.
func ExtractProductID(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", false
	}

	for _, rule := range productIDRules {
		if match := rule.FindStringSubmatch(cleaned); match != nil {
			return match[1], true
		}
	}

	return "", false
}

// StripProductID removes the first occurrence of the resolved id from
// the message, leaving the buyer's actual text.
func StripProductID(text, productID string) string {
	return strings.TrimSpace(strings.Replace(text, productID, "", 1))
}
