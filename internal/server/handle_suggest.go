package server

import (
	"net/http"

	"github.com/geoplay/geostats/internal/catalog"
	"github.com/geoplay/geostats/internal/game"
	"github.com/geoplay/geostats/internal/i18n"
)

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// handleSuggestions serves the live dropdown under the guess input:
// catalog names containing the normalized input, in the session's display
// language.
func handleSuggestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := sessionFrom(r)

		var lang i18n.Language
		ps.With(func(s *game.Session) {
			lang = s.Language
		})

		names := catalog.Suggestions(r.URL.Query().Get("q"), lang)
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: names})
	}
}
