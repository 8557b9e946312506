package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/geoplay/geostats/internal/catalog"
	"github.com/geoplay/geostats/internal/funfact"
	"github.com/geoplay/geostats/internal/game"
)

// gameDeps bundles the collaborators the transition handlers need to run
// the side effects the state machine hands back.
type gameDeps struct {
	logger  *slog.Logger
	broker  *Broker
	scores  ScoreStore
	results *ResultStore
	facts   funfact.Fetcher
}

// snapshot captures the observable session fields at transition time, so
// effects run after the lock is released against consistent values.
type snapshot struct {
	Status   game.Status
	Score    int
	Lives    int
	MaxLives int
	Rounds   int
}

func snapshotOf(s *game.Session) snapshot {
	return snapshot{
		Status:   s.Status,
		Score:    s.Score,
		Lives:    s.Lives,
		MaxLives: s.MaxLives,
		Rounds:   s.RoundsPlayed(),
	}
}

// apply runs the effects of one transition. Persistence is best-effort and
// silent toward the player; the fact fetch is fire-and-forget and its
// result is dropped by DeliverFact if the round has moved on.
func (d gameDeps) apply(ctx context.Context, ps *playerSession, eff game.Effects, snap snapshot) {
	if eff.PersistScore {
		if err := d.scores.SaveBest(ctx, snap.Score); err != nil {
			d.logger.Warn("saving best score failed", "score", snap.Score, "error", err)
		}
		if err := d.results.RecordResult(ctx, snap.Score, snap.MaxLives, snap.Rounds); err != nil {
			d.logger.Warn("recording result failed", "error", err)
		}
	}

	if req := eff.FetchFact; req != nil {
		go func() {
			text := d.facts.FunFact(context.Background(), req.Country, req.Language)
			var applied bool
			ps.With(func(s *game.Session) {
				applied = s.DeliverFact(req.Key, text)
			})
			if applied {
				d.broker.Publish(ps.Token, Event{Type: "fact_ready", FunFact: text})
			}
		}()
	}

	d.broker.Publish(ps.Token, Event{
		Type:   "status",
		Status: string(snap.Status),
		Score:  snap.Score,
		Lives:  snap.Lives,
	})
}

type StartRequest struct {
	// Lives is the life budget for the session; the menu offers 10, 5, and 3.
	Lives int `json:"lives"`
}

func handleStart(d gameDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Lives < 1 {
			writeError(w, http.StatusBadRequest, "lives must be at least 1")
			return
		}

		ps := sessionFrom(r)
		var (
			eff  game.Effects
			snap snapshot
			resp GameStateResponse
		)
		ps.With(func(s *game.Session) {
			eff = s.Start(req.Lives)
			snap = snapshotOf(s)
			resp = stateView(s, time.Now())
		})
		d.apply(r.Context(), ps, eff, snap)

		writeJSON(w, http.StatusOK, resp)
	}
}

type GuessRequest struct {
	Guess string `json:"guess"`
}

type GuessResponse struct {
	Correct bool   `json:"correct"`
	Status  string `json:"status"`
	Score   int    `json:"score"`
	Lives   int    `json:"lives"`
}

func handleGuess(d gameDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Guess = strings.TrimSpace(req.Guess)
		if req.Guess == "" {
			writeError(w, http.StatusBadRequest, "guess is required")
			return
		}

		ps := sessionFrom(r)
		var (
			correct bool
			eff     game.Effects
			snap    snapshot
		)
		ps.With(func(s *game.Session) {
			// A confirm on a uniquely narrowing input counts as selecting
			// that candidate, mirroring the suggestion dropdown.
			resolved, _ := catalog.Resolve(req.Guess, s.Language)
			correct, eff = s.Guess(resolved, time.Now())
			snap = snapshotOf(s)
		})
		d.apply(r.Context(), ps, eff, snap)

		writeJSON(w, http.StatusOK, GuessResponse{
			Correct: correct,
			Status:  string(snap.Status),
			Score:   snap.Score,
			Lives:   snap.Lives,
		})
	}
}

type HintResponse struct {
	Hints []string `json:"hints"`
	Lives int      `json:"lives"`
}

func handleHint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := sessionFrom(r)

		var resp HintResponse
		ps.With(func(s *game.Session) {
			s.RequestHint()
			resp = HintResponse{
				Hints: append([]string{}, s.Hints...),
				Lives: s.Lives,
			}
		})

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleAdvance(d gameDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := sessionFrom(r)

		var (
			eff  game.Effects
			snap snapshot
			resp GameStateResponse
		)
		ps.With(func(s *game.Session) {
			eff = s.Advance()
			snap = snapshotOf(s)
			resp = stateView(s, time.Now())
		})
		d.apply(r.Context(), ps, eff, snap)

		writeJSON(w, http.StatusOK, resp)
	}
}

type StatusResponse struct {
	Status   string `json:"status"`
	Language string `json:"language"`
}

func handleToggleLanguage() http.HandlerFunc {
	return statusTransition(func(s *game.Session) { s.ToggleLanguage() })
}

func handleGoToLeaderboard() http.HandlerFunc {
	return statusTransition(func(s *game.Session) { s.GoToLeaderboard() })
}

func handleReturnToMenu() http.HandlerFunc {
	return statusTransition(func(s *game.Session) { s.ReturnToMenu() })
}

// statusTransition wraps the effect-free transitions that only move status
// or language.
func statusTransition(fn func(s *game.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := sessionFrom(r)

		var resp StatusResponse
		ps.With(func(s *game.Session) {
			fn(s)
			resp = StatusResponse{
				Status:   string(s.Status),
				Language: string(s.Language),
			}
		})

		writeJSON(w, http.StatusOK, resp)
	}
}
