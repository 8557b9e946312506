package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, d Deps) {
	broker := NewBroker()

	play := gameDeps{
		logger:  d.Logger,
		broker:  broker,
		scores:  d.Scores,
		results: d.Results,
		facts:   d.Facts,
	}

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("GeoStats API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(d.Logger, d.DB, d.Redis))
	r.Get("/ws/feed", handleWSFeed(d.Logger, d.Sessions, broker))

	r.Post("/api/session", handleCreateSession(d.Sessions))
	r.Get("/api/leaderboard", handleLeaderboard(d.Logger, d.Results, d.Scores))
	r.Post("/api/admin/reset-score", handleAdminResetScore(d.Logger, d.AdminPasswordHash, d.Scores))

	// Game routes — session resolved by sessionMiddleware.
	r.Route("/api/game", func(r chi.Router) {
		r.Use(sessionMiddleware(d.Sessions))
		r.Get("/state", handleGameState())
		r.Post("/start", handleStart(play))
		r.Post("/guess", handleGuess(play))
		r.Post("/hint", handleHint())
		r.Post("/advance", handleAdvance(play))
		r.Post("/language", handleToggleLanguage())
		r.Post("/leaderboard", handleGoToLeaderboard())
		r.Post("/menu", handleReturnToMenu())
		r.Get("/suggestions", handleSuggestions())
		r.Get("/events", handleEvents(broker))
	})
}
