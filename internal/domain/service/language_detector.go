package service

import (
	"strings"
	"unicode"
)

type Language string

const (
	LanguageEnglish    Language = "english"
	LanguageIndonesian Language = "indonesian"
)

// Alternate-language lexicon: function words, negotiation verbs and
// currency terms. Matching is per whole token, so "dike" never counts
// as "di".
var indonesianLexicon = map[string]bool{
	"apa": true, "yang": true, "ini": true, "itu": true, "saya": true,
	"kamu": true, "dengan": true, "untuk": true, "dari": true, "ke": true,
	"di": true, "pada": true, "adalah": true, "akan": true, "sudah": true,
	"belum": true, "bisa": true, "tidak": true, "ya": true, "berapa": true,
	"harga": true, "jual": true, "beli": true, "tawar": true, "nego": true,
	"cod": true, "transfer": true, "kirim": true, "barang": true,
	"kondisi": true, "masih": true, "ada": true, "gimana": true,
	"bagaimana": true, "ambil": true, "lokasi": true, "dimana": true,
	"kapan": true, "jam": true, "hari": true, "minggu": true, "bulan": true,
}

const lexiconThreshold = 2

// DetectLanguage classifies a message by lexicon vote: Indonesian when
// at least two lexicon tokens appear, English otherwise. Deterministic
// and order-independent.
func DetectLanguage(text string) Language {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	count := 0
	for _, token := range tokens {
		if indonesianLexicon[token] {
			count++
			if count >= lexiconThreshold {
				return LanguageIndonesian
			}
		}
	}

	return LanguageEnglish
}
