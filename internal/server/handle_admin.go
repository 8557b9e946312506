package server

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type AdminResetRequest struct {
	Password string `json:"password"`
}

// handleAdminResetScore clears the persisted best score. Guarded by a
// bcrypt password hash from the environment; an empty hash disables the
// endpoint entirely.
func handleAdminResetScore(logger *slog.Logger, passwordHash string, scores ScoreStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if passwordHash == "" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		var req AdminResetRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid password")
			return
		}

		if err := scores.Reset(r.Context()); err != nil {
			logger.Error("resetting best score failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
