// Package catalog is the static country reference data and everything that
// reads it: localization accessors, guess normalization and matching,
// suggestion filtering, and random selection.
//
// The catalog is embedded and read-only. The canonical (Portuguese) name is
// the unique key; session history and repeat-prevention are keyed on it
// regardless of the display language.
package catalog

import (
	"math/rand/v2"
	"slices"

	"github.com/geoplay/geostats/internal/i18n"
)

// Country is one immutable catalog record.
type Country struct {
	Name         string  // canonical key, Portuguese
	NameEN       string
	Population   int64   // raw inhabitant count
	HDI          float64 // fraction in [0,1]
	HomicideRate float64 // per 100k inhabitants
	Continent    string
	ContinentEN  string
	FlagEmoji    string
	Language     string // main spoken language, localized pair
	LanguageEN   string
	FamousPlayer string // famous athlete, not localized
	// Independence labels are strings so they can carry era qualifiers
	// ("Antiguidade", "660 a.C."). The EN field is only set when the
	// wording differs between languages.
	IndependenceYear   string
	IndependenceYearEN string
}

// localize picks one side of a pt/en field pair. Every display field goes
// through here so language branching lives in exactly one place.
func localize(lang i18n.Language, pt, en string) string {
	if lang == i18n.English && en != "" {
		return en
	}
	return pt
}

// LocalName returns the country name in the given display language.
func (c Country) LocalName(lang i18n.Language) string {
	return localize(lang, c.Name, c.NameEN)
}

// LocalContinent returns the continent name in the given display language.
func (c Country) LocalContinent(lang i18n.Language) string {
	return localize(lang, c.Continent, c.ContinentEN)
}

// LocalLanguage returns the spoken-language name in the given display language.
func (c Country) LocalLanguage(lang i18n.Language) string {
	return localize(lang, c.Language, c.LanguageEN)
}

// LocalIndependenceYear returns the independence label, honoring the
// optional English override.
func (c Country) LocalIndependenceYear(lang i18n.Language) string {
	return localize(lang, c.IndependenceYear, c.IndependenceYearEN)
}

// All returns the full catalog. Callers must treat it as read-only.
func All() []Country {
	return countries
}

// Find looks a country up by canonical name.
func Find(name string) (Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}

// Pick selects a uniformly random country whose canonical name is not in
// history. The second return is false when the catalog is exhausted.
func Pick(rng *rand.Rand, history []string) (Country, bool) {
	var available []Country
	for _, c := range countries {
		if !slices.Contains(history, c.Name) {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return Country{}, false
	}
	return available[rng.IntN(len(available))], true
}
