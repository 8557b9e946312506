// Package funfact fetches a one-sentence curiosity about a country after a
// correct guess. The fetch is decorative: every failure mode — missing
// credential, network error, empty model output — collapses to an empty
// string and the game never waits on it.
package funfact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/geoplay/geostats/internal/catalog"
	"github.com/geoplay/geostats/internal/i18n"
)

// Fetcher produces a fun fact for a country, or "" when unavailable.
type Fetcher interface {
	FunFact(ctx context.Context, c catalog.Country, lang i18n.Language) string
}

// Disabled is the fetcher used when no API credential is configured.
type Disabled struct{}

func (Disabled) FunFact(context.Context, catalog.Country, i18n.Language) string {
	return ""
}

const (
	model        = "gemini-2.5-flash"
	fetchTimeout = 10 * time.Second
)

// Gemini fetches facts from the Gemini API.
type Gemini struct {
	client *genai.Client
	logger *slog.Logger
}

// New builds a fetcher from the configured API key. An empty key disables
// the feature rather than failing.
func New(ctx context.Context, apiKey string, logger *slog.Logger) Fetcher {
	if apiKey == "" {
		logger.Info("no gemini api key configured, fun facts disabled")
		return Disabled{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("gemini client init failed, fun facts disabled", "error", err)
		return Disabled{}
	}
	return &Gemini{client: client, logger: logger}
}

func (g *Gemini) FunFact(ctx context.Context, c catalog.Country, lang i18n.Language) string {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(Prompt(c, lang)), nil)
	if err != nil {
		g.logger.Debug("fun fact fetch failed", "country", c.Name, "error", err)
		return ""
	}
	return resp.Text()
}

// Prompt builds the generation prompt in the player's display language.
func Prompt(c catalog.Country, lang i18n.Language) string {
	langPrompt := "em Português"
	if lang == i18n.English {
		langPrompt = "in English"
	}
	return fmt.Sprintf(
		"Tell me an ultra interesting and little known fun fact about %s in one sentence %s. Focus on surprising statistics or culture.",
		c.LocalName(lang), langPrompt,
	)
}
