package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/geoplay/geostats/internal/game"
	"github.com/geoplay/geostats/internal/i18n"
)

// StatsView carries the four statistics of the active country, already
// formatted for the session's display language.
type StatsView struct {
	Population       string `json:"population"`
	HDI              string `json:"hdi"`
	HomicideRate     string `json:"homicideRate"`
	IndependenceYear string `json:"independenceYear"`
}

// CountryView is the active country as the player may see it. Name and
// flag stay hidden while the round is open and are revealed on success and
// gameover.
type CountryView struct {
	Name      string    `json:"name,omitempty"`
	FlagEmoji string    `json:"flagEmoji,omitempty"`
	Stats     StatsView `json:"stats"`
}

type GameStateResponse struct {
	Status       string       `json:"status"`
	Score        int          `json:"score"`
	Lives        int          `json:"lives"`
	MaxLives     int          `json:"maxLives"`
	Language     string       `json:"language"`
	RoundErrors  int          `json:"roundErrors"`
	RoundsPlayed int          `json:"roundsPlayed"`
	Hints        []string     `json:"hints"`
	Feedback     string       `json:"feedback"`
	FunFact      string       `json:"funFact,omitempty"`
	FactPending  bool         `json:"factPending"`
	Country      *CountryView `json:"country"`
}

func handleGameState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := sessionFrom(r)

		var resp GameStateResponse
		ps.With(func(s *game.Session) {
			resp = stateView(s, time.Now())
		})

		writeJSON(w, http.StatusOK, resp)
	}
}

func stateView(s *game.Session, now time.Time) GameStateResponse {
	resp := GameStateResponse{
		Status:       string(s.Status),
		Score:        s.Score,
		Lives:        s.Lives,
		MaxLives:     s.MaxLives,
		Language:     string(s.Language),
		RoundErrors:  s.RoundErrors,
		RoundsPlayed: s.RoundsPlayed(),
		Hints:        append([]string{}, s.Hints...),
		Feedback:     string(s.Feedback(now)),
		FunFact:      s.FunFact,
		FactPending:  s.FactPending,
	}

	if s.Current != nil {
		c := *s.Current
		view := &CountryView{
			Stats: StatsView{
				Population:       i18n.FormatPopulation(s.Language, c.Population),
				HDI:              strconv.FormatFloat(c.HDI, 'f', 3, 64),
				HomicideRate:     strconv.FormatFloat(c.HomicideRate, 'f', -1, 64),
				IndependenceYear: c.LocalIndependenceYear(s.Language),
			},
		}
		// The answer is only revealed once the round is decided.
		if s.Status == game.StatusSuccess || s.Status == game.StatusGameOver {
			view.Name = c.LocalName(s.Language)
			view.FlagEmoji = c.FlagEmoji
		}
		resp.Country = view
	}

	return resp
}
