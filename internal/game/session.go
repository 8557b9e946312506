// Package game implements the round/session state machine for GeoStats:
// score, lives, round history, hint economy, and the status transitions
// between menu, playing, success, gameover, and leaderboard.
//
// The machine does no I/O. Transitions mutate the session and return an
// Effects value describing side effects the caller must run (persist the
// final score, launch a fun-fact fetch), which keeps every rule testable
// without a transport or storage harness. Invalid transitions are no-ops.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/geoplay/geostats/internal/catalog"
	"github.com/geoplay/geostats/internal/i18n"
)

// Status is the current view of the session.
type Status string

const (
	StatusMenu        Status = "menu"
	StatusPlaying     Status = "playing"
	StatusSuccess     Status = "success"
	StatusGameOver    Status = "gameover"
	StatusLeaderboard Status = "leaderboard"
)

// Feedback is the transient presentational state of the guess input.
type Feedback string

const (
	FeedbackIdle    Feedback = "idle"
	FeedbackSuccess Feedback = "success"
	FeedbackError   Feedback = "error"
)

const (
	// GuessReward is the fixed score for a correct guess, independent of
	// lives remaining or hints used.
	GuessReward = 100

	// MaxHints is the number of hint categories per round.
	MaxHints = 3

	// ErrorFeedbackWindow is how long the error shake/flash lasts. It is
	// purely presentational: guesses submitted inside the window are still
	// accepted.
	ErrorFeedbackWindow = 800 * time.Millisecond
)

// FactRequest asks the caller to fetch a fun fact in the background. The
// country and language are snapshotted at launch; Key identifies the round
// so a late result can be dropped after the session moves on.
type FactRequest struct {
	Country  catalog.Country
	Language i18n.Language
	Key      string
}

// Effects lists the side effects a transition produced.
type Effects struct {
	// PersistScore is set exactly once per session, when lives reach zero
	// or the catalog runs out.
	PersistScore bool
	// FetchFact is non-nil after a correct guess.
	FetchFact *FactRequest
}

// Session is the single mutable game state, owned by one player.
type Session struct {
	Status      Status
	Score       int
	Lives       int
	MaxLives    int
	Current     *catalog.Country
	History     []string // canonical names presented this session
	RoundErrors int
	Hints       []string // hint texts revealed this round, ≤ MaxHints, distinct
	Language    i18n.Language

	FunFact     string
	FactPending bool
	factKey     string // canonical name the in-flight fetch was launched for

	feedback      Feedback
	feedbackUntil time.Time // when error feedback decays back to idle

	rng *rand.Rand
}

// New returns a session sitting in the menu. The random source drives both
// country selection and hint-category selection and is injected so tests
// can control it.
func New(lang i18n.Language, rng *rand.Rand) *Session {
	if !lang.Valid() {
		lang = i18n.Portuguese
	}
	return &Session{
		Status:   StatusMenu,
		Lives:    5,
		MaxLives: 5,
		Language: lang,
		rng:      rng,
	}
}

// Start begins a fresh game with the given life budget. Valid from the menu
// or as a restart from gameover; a no-op anywhere else or for a non-positive
// budget.
func (s *Session) Start(maxLives int) Effects {
	if s.Status != StatusMenu && s.Status != StatusGameOver {
		return Effects{}
	}
	if maxLives < 1 {
		return Effects{}
	}

	s.Score = 0
	s.Lives = maxLives
	s.MaxLives = maxLives
	s.RoundErrors = 0
	s.Hints = nil
	s.History = nil
	s.Current = nil
	s.clearFact()
	s.feedback = FeedbackIdle
	s.feedbackUntil = time.Time{}
	s.Status = StatusPlaying

	if c, ok := catalog.Pick(s.rng, nil); ok {
		s.Current = &c
		s.History = []string{c.Name}
	}
	return Effects{}
}

// Guess compares free text against the current country's name in the active
// display language. now anchors the error-feedback window.
func (s *Session) Guess(text string, now time.Time) (bool, Effects) {
	if s.Status != StatusPlaying || s.Current == nil {
		return false, Effects{}
	}

	if catalog.Matches(text, s.Current.LocalName(s.Language)) {
		s.Status = StatusSuccess
		s.Score += GuessReward
		s.feedback = FeedbackSuccess
		s.feedbackUntil = time.Time{}
		s.factKey = s.Current.Name
		s.FactPending = true
		s.FunFact = ""
		return true, Effects{FetchFact: &FactRequest{
			Country:  *s.Current,
			Language: s.Language,
			Key:      s.factKey,
		}}
	}

	s.RoundErrors++
	s.Lives--
	s.feedback = FeedbackError
	if s.Lives <= 0 {
		s.Lives = 0
		s.Status = StatusGameOver
		s.feedbackUntil = time.Time{}
		return false, Effects{PersistScore: true}
	}
	s.feedbackUntil = now.Add(ErrorFeedbackWindow)
	return false, Effects{}
}

// NextRound advances past a solved country. When the catalog is exhausted
// the session ends instead, leaving the just-solved country in place so the
// gameover view can still show it.
func (s *Session) NextRound() Effects {
	if s.Status != StatusSuccess {
		return Effects{}
	}

	c, ok := catalog.Pick(s.rng, s.History)
	if !ok {
		s.Status = StatusGameOver
		return Effects{PersistScore: true}
	}

	s.Current = &c
	s.History = append(s.History, c.Name)
	s.RoundErrors = 0
	s.Hints = nil
	s.clearFact()
	s.feedback = FeedbackIdle
	s.feedbackUntil = time.Time{}
	s.Status = StatusPlaying
	return Effects{}
}

// RequestHint reveals one unrevealed hint category at the cost of a life.
// Disallowed at a single life: a help action must not end the game.
func (s *Session) RequestHint() {
	if s.Status != StatusPlaying || s.Current == nil {
		return
	}
	if s.Lives <= 1 || len(s.Hints) >= MaxHints {
		return
	}

	available := s.availableHints()
	if len(available) == 0 {
		return
	}

	s.Lives--
	s.Hints = append(s.Hints, available[s.rng.IntN(len(available))])
}

// availableHints renders the three category texts for the current country
// and filters out the ones already revealed this round.
func (s *Session) availableHints() []string {
	t := i18n.T(s.Language)
	candidates := []string{
		t.HintContinent + ": " + s.Current.LocalContinent(s.Language),
		t.HintLanguage + ": " + s.Current.LocalLanguage(s.Language),
		t.HintCelebrity + ": " + s.Current.FamousPlayer,
	}

	var available []string
	for _, h := range candidates {
		revealed := false
		for _, seen := range s.Hints {
			if seen == h {
				revealed = true
				break
			}
		}
		if !revealed {
			available = append(available, h)
		}
	}
	return available
}

// Advance is the status-overloaded confirm action: next round after a
// success, restart with the same life budget after a gameover, back to the
// menu from the leaderboard. No bound effect while playing.
func (s *Session) Advance() Effects {
	switch s.Status {
	case StatusSuccess:
		return s.NextRound()
	case StatusGameOver:
		return s.Start(s.MaxLives)
	case StatusLeaderboard:
		s.Status = StatusMenu
	}
	return Effects{}
}

// ToggleLanguage flips the display language. Legal in any status; score,
// lives, history, and status are untouched.
func (s *Session) ToggleLanguage() {
	s.Language = s.Language.Toggle()
}

// GoToLeaderboard shows the leaderboard. Legal from any status.
func (s *Session) GoToLeaderboard() {
	s.Status = StatusLeaderboard
}

// ReturnToMenu leaves a terminal view for the menu.
func (s *Session) ReturnToMenu() {
	if s.Status == StatusLeaderboard || s.Status == StatusGameOver {
		s.Status = StatusMenu
	}
}

// DeliverFact applies an asynchronously fetched fun fact. The result is
// dropped when the round it was launched for is no longer current, so a
// rapid advance never shows a stale fact.
func (s *Session) DeliverFact(key, text string) bool {
	if !s.FactPending || s.factKey != key {
		return false
	}
	s.FactPending = false
	s.FunFact = text
	return true
}

func (s *Session) clearFact() {
	s.FunFact = ""
	s.FactPending = false
	s.factKey = ""
}

// Feedback reports the presentational input state at the given instant:
// error feedback decays to idle once its window has passed.
func (s *Session) Feedback(now time.Time) Feedback {
	if s.feedback == FeedbackError && !s.feedbackUntil.IsZero() && now.After(s.feedbackUntil) {
		return FeedbackIdle
	}
	if s.feedback == "" {
		return FeedbackIdle
	}
	return s.feedback
}

// RoundsPlayed is the number of countries presented this session.
func (s *Session) RoundsPlayed() int {
	return len(s.History)
}
