package service

import (
	"regexp"
	"strconv"
	"strings"

	"negobot/internal/domain/entity"
)

// offerRule is one entry of the priority-ordered extraction table.
// Rules are evaluated top to bottom, first match wins.
type offerRule struct {
	name       string
	pattern    *regexp.Regexp
	multiplier float64
	convention entity.CurrencyConvention
}

// The minor-unit (USD) family is tried before the grouped-digit (IDR)
// family so an unambiguous "$100" is never re-read as grouped digits.
// Within the IDR family, magnitude-suffixed and verb-cued rules outrank
// the bare grouped-digit rule; otherwise "500 ribu" would parse as 500.
//
// Grouped-digit convention: both "." and "," are grouping separators
// and are stripped before parsing. Fractional amounts do not exist in
// this convention; "Rp1.000.000" is exactly one million.
var offerRules = []offerRule{
	{"usd-symbol", regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`), 1, entity.ConventionUSD},
	{"usd-word", regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*dollars?`), 1, entity.ConventionUSD},
	{"usd-offer", regexp.MustCompile(`offer\s+\$?(\d+(?:\.\d{2})?)`), 1, entity.ConventionUSD},
	{"usd-pay", regexp.MustCompile(`pay\s+\$?(\d+(?:\.\d{2})?)`), 1, entity.ConventionUSD},

	{"idr-thousand", regexp.MustCompile(`(\d+(?:[.,]\d{3})*)\s*(?:ribu|rb|thousand|k)\b`), 1000, entity.ConventionIDR},
	{"idr-million", regexp.MustCompile(`(\d+(?:[.,]\d{3})*)\s*(?:juta|jt|million|m)\b`), 1000000, entity.ConventionIDR},
	{"idr-tawar", regexp.MustCompile(`tawar\s+(?:rp\.?\s*)?(\d+(?:[.,]\d{3})*)`), 1, entity.ConventionIDR},
	{"idr-bayar", regexp.MustCompile(`bayar\s+(?:rp\.?\s*)?(\d+(?:[.,]\d{3})*)`), 1, entity.ConventionIDR},
	{"idr-beli", regexp.MustCompile(`beli\s+(?:rp\.?\s*)?(\d+(?:[.,]\d{3})*)`), 1, entity.ConventionIDR},
	// The leading guard keeps digits embedded in identifiers like
	// "item_aaa111" from being read as amounts.
	{"idr-plain", regexp.MustCompile(`(?:^|[^a-z0-9_])(?:rp\.?\s*)?(\d{1,3}(?:[.,]\d{3})+|\d+)\b`), 1, entity.ConventionIDR},
}

// ExtractOffer parses a monetary amount out of free text. The second
// return value is false when no rule matches or the digits fail to
// parse.
func ExtractOffer(text string) (entity.Offer, bool) {
	lowered := strings.ToLower(text)

	for _, rule := range offerRules {
		match := rule.pattern.FindStringSubmatch(lowered)
		if match == nil {
			continue
		}

		raw := match[1]
		if rule.convention == entity.ConventionIDR {
			raw = strings.NewReplacer(".", "", ",", "").Replace(raw)
		}

		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}

		return entity.Offer{
			Amount:     amount * rule.multiplier,
			Convention: rule.convention,
			Source:     match[0],
		}, true
	}

	return entity.Offer{}, false
}
