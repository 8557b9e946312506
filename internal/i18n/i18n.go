// Package i18n holds the display languages and string tables for the game.
// The game ships in Brazilian Portuguese with an English toggle; everything
// here is a plain lookup so callers never branch on the language themselves.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language is a supported display language.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == Portuguese || l == English
}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == English {
		return Portuguese
	}
	return English
}

// Tag maps the language onto its BCP 47 tag for x/text formatting.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.AmericanEnglish
	}
	return language.BrazilianPortuguese
}

// Strings is the translated string table for one language.
type Strings struct {
	You           string
	HintContinent string
	HintLanguage  string
	HintCelebrity string
	LoadingFact   string
	CountryWas    string
}

var tables = map[Language]Strings{
	Portuguese: {
		You:           "Você",
		HintContinent: "Continente",
		HintLanguage:  "Idioma",
		HintCelebrity: "Atleta famoso",
		LoadingFact:   "Buscando curiosidade...",
		CountryWas:    "O país era",
	},
	English: {
		You:           "You",
		HintContinent: "Continent",
		HintLanguage:  "Language",
		HintCelebrity: "Famous athlete",
		LoadingFact:   "Fetching fun fact...",
		CountryWas:    "The country was",
	},
}

// T returns the string table for l, defaulting to Portuguese.
func T(l Language) Strings {
	if s, ok := tables[l]; ok {
		return s
	}
	return tables[Portuguese]
}

// FormatPopulation renders a raw population count the way the stat card
// shows it: billions and millions are abbreviated with a localized word,
// smaller values use the locale's digit grouping.
func FormatPopulation(l Language, n int64) string {
	p := message.NewPrinter(l.Tag())
	switch {
	case n >= 1_000_000_000:
		word := "Bilhões"
		if l == English {
			word = "Billion"
		}
		return p.Sprintf("%.2f %s", float64(n)/1_000_000_000, word)
	case n >= 1_000_000:
		word := "Milhões"
		if l == English {
			word = "Million"
		}
		return p.Sprintf("%.1f %s", float64(n)/1_000_000, word)
	default:
		return p.Sprintf("%d", n)
	}
}
