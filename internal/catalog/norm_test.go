package catalog

import (
	"slices"
	"testing"

	"github.com/geoplay/geostats/internal/i18n"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"México", "mexico"},
		{"JAPÃO", "japao"},
		{"França", "franca"},
		{"Brasil", "brasil"},
		{"  ", "  "},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatches(t *testing.T) {
	if !Matches("mexico", "México") {
		t.Error("expected accent/case-insensitive match for mexico/México")
	}
	if !Matches("MÉXICO", "Mexico") {
		t.Error("expected match for MÉXICO/Mexico")
	}
	// Cross-language names are never interchangeable.
	if Matches("brazil", "Brasil") {
		t.Error("brazil must not match the Portuguese canonical name Brasil")
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions("bra", i18n.Portuguese)
	if !slices.Contains(got, "Brasil") {
		t.Errorf("expected Brasil in suggestions, got %v", got)
	}

	got = Suggestions("razi", i18n.English)
	if !slices.Contains(got, "Brazil") {
		t.Errorf("expected Brazil in English suggestions, got %v", got)
	}

	if got := Suggestions("", i18n.Portuguese); got != nil {
		t.Errorf("empty input should yield no suggestions, got %v", got)
	}

	got = Suggestions("ZZZZ", i18n.Portuguese)
	if len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}

	// Sorted output.
	got = Suggestions("a", i18n.Portuguese)
	if !slices.IsSorted(got) {
		t.Errorf("suggestions not sorted: %v", got)
	}
}

func TestResolveExactMatch(t *testing.T) {
	name, ok := Resolve("mexico", i18n.Portuguese)
	if !ok || name != "México" {
		t.Errorf("Resolve(mexico) = %q, %v; want México, true", name, ok)
	}
}

func TestResolveUniqueSuggestion(t *testing.T) {
	name, ok := Resolve("mexi", i18n.Portuguese)
	if !ok || name != "México" {
		t.Errorf("Resolve(mexi) = %q, %v; want México, true", name, ok)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	// "co" hits several names; the input passes through unresolved.
	name, ok := Resolve("co", i18n.Portuguese)
	if ok || name != "co" {
		t.Errorf("Resolve(co) = %q, %v; want co, false", name, ok)
	}
}
