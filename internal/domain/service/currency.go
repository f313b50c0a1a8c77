package service

import (
	"fmt"
	"strconv"
)

// FormatCurrency renders an amount in the convention of the buyer's
// language: "Rp1.000.000" for Indonesian, "$12.50" for English.
func FormatCurrency(amount float64, lang Language) string {
	if lang == LanguageIndonesian {
		if amount == 0 {
			return "Rp0"
		}
		return "Rp" + groupDigits(int64(amount))
	}

	if amount <= 0 {
		return "$0"
	}
	return fmt.Sprintf("$%.2f", amount)
}

// groupDigits inserts "." thousands separators, Indonesian style.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
