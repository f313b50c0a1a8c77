package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"plain english", "Hi, is this still available?", LanguageEnglish},
		{"indonesian negotiation", "berapa harga barang ini?", LanguageIndonesian},
		{"two lexicon words", "masih ada?", LanguageIndonesian},
		{"single lexicon word stays default", "harga?", LanguageEnglish},
		{"no substring credit", "divide the middle", LanguageEnglish},
		{"mixed but mostly english", "I want to nego", LanguageEnglish},
		{"empty", "", LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}
