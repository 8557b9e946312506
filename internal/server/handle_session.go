package server

import (
	"net/http"

	"github.com/geoplay/geostats/internal/i18n"
)

type SessionRequest struct {
	// Language is the initial display language, "pt" (default) or "en".
	Language string `json:"language,omitempty"`
}

type SessionResponse struct {
	Token    string `json:"token"`
	Status   string `json:"status"`
	Language string `json:"language"`
}

func handleCreateSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SessionRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		lang := i18n.Language(req.Language)
		if req.Language != "" && !lang.Valid() {
			writeError(w, http.StatusBadRequest, "unsupported language")
			return
		}
		if req.Language == "" {
			lang = i18n.Portuguese
		}

		ps := sessions.Create(lang)
		writeJSON(w, http.StatusCreated, SessionResponse{
			Token:    ps.Token,
			Status:   string(ps.Game.Status),
			Language: string(ps.Game.Language),
		})
	}
}
