package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/geoplay/geostats/internal/game"
	"github.com/geoplay/geostats/internal/i18n"
)

type LeaderboardResponse struct {
	Entries []game.HighScore `json:"entries"`
}

// handleLeaderboard merges the seeded reference entries with the persisted
// personal best. Storage trouble degrades to a shorter list instead of an
// error: the leaderboard is decoration, not gameplay.
func handleLeaderboard(logger *slog.Logger, results *ResultStore, scores ScoreStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Language(r.URL.Query().Get("lang"))
		if !lang.Valid() {
			lang = i18n.Portuguese
		}

		refs, err := results.ReferenceScores(r.Context())
		if err != nil {
			logger.Warn("loading reference scores failed", "error", err)
		}

		var personal *game.HighScore
		best, ok, err := scores.Best(r.Context())
		if err != nil {
			logger.Warn("loading best score failed", "error", err)
		} else if ok {
			personal = &game.HighScore{
				Name:   i18n.T(lang).You,
				Score:  best,
				Date:   time.Now().UTC().Format("2006-01-02"),
				IsUser: true,
			}
		}

		entries := game.MergeLeaderboard(refs, personal)
		if entries == nil {
			entries = []game.HighScore{}
		}
		writeJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
