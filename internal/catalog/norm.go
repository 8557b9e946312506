package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/geoplay/geostats/internal/i18n"
)

// stripMarks decomposes to NFD and removes combining diacritical marks, so
// "México" and "Mexico" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowers s and strips accents. All guess comparison, suggestion
// filtering, and input resolution go through this one function.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Matches reports whether a free-text guess names the target,
// accent- and case-insensitively.
func Matches(guess, target string) bool {
	return Normalize(guess) == Normalize(target)
}

// Suggestions returns the sorted display names whose normalized form
// contains the normalized input. An empty input yields no suggestions.
func Suggestions(input string, lang i18n.Language) []string {
	if input == "" {
		return nil
	}
	needle := Normalize(input)
	var names []string
	for _, c := range countries {
		name := c.LocalName(lang)
		if strings.Contains(Normalize(name), needle) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve turns raw input into a guessable country name. An exact
// normalized match wins; otherwise an input that narrows the suggestion
// list to a single candidate resolves to that candidate. The second return
// is false when nothing resolved and the input is passed through as-is.
func Resolve(input string, lang i18n.Language) (string, bool) {
	needle := Normalize(input)
	for _, c := range countries {
		if Normalize(c.LocalName(lang)) == needle {
			return c.LocalName(lang), true
		}
	}
	if s := Suggestions(input, lang); len(s) == 1 {
		return s[0], true
	}
	return input, false
}
