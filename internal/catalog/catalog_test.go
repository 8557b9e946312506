package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/geoplay/geostats/internal/i18n"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestCanonicalNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All() {
		if seen[c.Name] {
			t.Errorf("duplicate canonical name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestLocalization(t *testing.T) {
	c, ok := Find("Japão")
	if !ok {
		t.Fatal("Japão not in catalog")
	}

	if got := c.LocalName(i18n.English); got != "Japan" {
		t.Errorf("LocalName(en) = %q, want Japan", got)
	}
	if got := c.LocalName(i18n.Portuguese); got != "Japão" {
		t.Errorf("LocalName(pt) = %q, want Japão", got)
	}
	if got := c.LocalIndependenceYear(i18n.English); got != "660 BC" {
		t.Errorf("LocalIndependenceYear(en) = %q, want 660 BC", got)
	}
	if got := c.LocalIndependenceYear(i18n.Portuguese); got != "660 a.C." {
		t.Errorf("LocalIndependenceYear(pt) = %q, want 660 a.C.", got)
	}
}

func TestIndependenceOverrideFallback(t *testing.T) {
	c, ok := Find("Brasil")
	if !ok {
		t.Fatal("Brasil not in catalog")
	}
	// No English override set: both languages read the same label.
	if got := c.LocalIndependenceYear(i18n.English); got != "1822" {
		t.Errorf("LocalIndependenceYear(en) = %q, want 1822", got)
	}
}

func TestPickExcludesHistory(t *testing.T) {
	rng := testRNG()
	history := []string{}
	for _, c := range All() {
		if c.Name != "Peru" {
			history = append(history, c.Name)
		}
	}

	for range 10 {
		c, ok := Pick(rng, history)
		if !ok {
			t.Fatal("expected a pick with one country remaining")
		}
		if c.Name != "Peru" {
			t.Fatalf("picked %q despite history, want Peru", c.Name)
		}
	}
}

func TestPickExhausted(t *testing.T) {
	var history []string
	for _, c := range All() {
		history = append(history, c.Name)
	}

	if _, ok := Pick(testRNG(), history); ok {
		t.Error("expected exhaustion with full history")
	}
}
