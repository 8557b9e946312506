package game

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/geoplay/geostats/internal/catalog"
	"github.com/geoplay/geostats/internal/i18n"
)

func testSession(lang i18n.Language) *Session {
	return New(lang, rand.New(rand.NewPCG(1, 2)))
}

// answer returns the current country's name in the session's language.
func answer(t *testing.T, s *Session) string {
	t.Helper()
	if s.Current == nil {
		t.Fatal("no current country")
	}
	return s.Current.LocalName(s.Language)
}

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	if s.Lives < 0 || s.Lives > s.MaxLives {
		t.Errorf("lives %d outside [0, %d]", s.Lives, s.MaxLives)
	}
	if s.Score < 0 || s.Score%GuessReward != 0 {
		t.Errorf("score %d not a non-negative multiple of %d", s.Score, GuessReward)
	}
	if len(s.Hints) > MaxHints {
		t.Errorf("hints %d exceed %d", len(s.Hints), MaxHints)
	}
	if len(s.History) > len(catalog.All()) {
		t.Errorf("history %d exceeds catalog size", len(s.History))
	}
	seen := make(map[string]bool)
	for _, name := range s.History {
		if seen[name] {
			t.Errorf("duplicate history entry %q", name)
		}
		seen[name] = true
	}
	if s.Current != nil {
		found := false
		for _, name := range s.History {
			if name == s.Current.Name {
				found = true
			}
		}
		if !found {
			t.Errorf("current country %q missing from history", s.Current.Name)
		}
	}
}

func TestStartFromMenu(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(3)

	if s.Status != StatusPlaying {
		t.Fatalf("status = %q, want playing", s.Status)
	}
	if s.Lives != 3 || s.MaxLives != 3 || s.Score != 0 {
		t.Errorf("got lives=%d maxLives=%d score=%d", s.Lives, s.MaxLives, s.Score)
	}
	if s.Current == nil || len(s.History) != 1 {
		t.Fatalf("expected one presented country, history=%v", s.History)
	}
	checkInvariants(t, s)
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(3)
	first := s.Current.Name

	s.Start(10)
	if s.MaxLives != 3 || s.Current.Name != first {
		t.Error("start must be a no-op while playing")
	}
}

func TestStartRejectsZeroLives(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(0)
	if s.Status != StatusMenu {
		t.Errorf("status = %q, want menu", s.Status)
	}
}

func TestCorrectGuessAnyCaseAndAccent(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(3)

	// Scramble case and strip accents; the match must still land.
	variant := strings.ToUpper(catalog.Normalize(answer(t, s)))
	correct, eff := s.Guess(variant, time.Now())

	if !correct {
		t.Fatalf("guess %q not accepted for %q", variant, answer(t, s))
	}
	if s.Status != StatusSuccess {
		t.Errorf("status = %q, want success", s.Status)
	}
	if s.Score != GuessReward {
		t.Errorf("score = %d, want %d", s.Score, GuessReward)
	}
	if eff.FetchFact == nil {
		t.Fatal("expected a fact fetch effect")
	}
	if eff.FetchFact.Key != s.Current.Name {
		t.Errorf("fact key = %q, want %q", eff.FetchFact.Key, s.Current.Name)
	}
	if !s.FactPending {
		t.Error("expected a pending fact")
	}
	checkInvariants(t, s)
}

func TestWrongGuessCostsLife(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(3)
	now := time.Now()

	correct, eff := s.Guess("not a country", now)
	if correct || eff.PersistScore {
		t.Fatal("wrong guess must not succeed or persist")
	}
	if s.Lives != 2 || s.Status != StatusPlaying || s.RoundErrors != 1 {
		t.Errorf("got lives=%d status=%q errors=%d", s.Lives, s.Status, s.RoundErrors)
	}

	// Error feedback is time-boxed; input validity is not.
	if got := s.Feedback(now); got != FeedbackError {
		t.Errorf("feedback = %q, want error", got)
	}
	if got := s.Feedback(now.Add(ErrorFeedbackWindow + 100*time.Millisecond)); got != FeedbackIdle {
		t.Errorf("feedback after window = %q, want idle", got)
	}

	// A correct guess inside the window is still accepted.
	correct, _ = s.Guess(answer(t, s), now.Add(100*time.Millisecond))
	if !correct {
		t.Error("guess during the feedback window must be accepted")
	}
	checkInvariants(t, s)
}

func TestLastLifeLostEndsGame(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(1)

	_, eff := s.Guess("wrong", time.Now())
	if s.Status != StatusGameOver || s.Lives != 0 {
		t.Fatalf("got status=%q lives=%d", s.Status, s.Lives)
	}
	if !eff.PersistScore {
		t.Error("expected persist effect on gameover")
	}

	// Guessing after gameover is ignored.
	before := *s
	if correct, _ := s.Guess(answer(t, s), time.Now()); correct {
		t.Error("guess accepted after gameover")
	}
	if s.Status != before.Status || s.Lives != before.Lives || s.Score != before.Score {
		t.Error("gameover guess changed state")
	}
	checkInvariants(t, s)
}

func TestHintEconomy(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(5)

	for i := 1; i <= 3; i++ {
		s.RequestHint()
		if len(s.Hints) != i {
			t.Fatalf("after hint %d: %d hints", i, len(s.Hints))
		}
	}
	if s.Lives != 2 {
		t.Errorf("lives = %d, want 2", s.Lives)
	}

	// All three revealed: a fourth request is a no-op.
	s.RequestHint()
	if len(s.Hints) != 3 || s.Lives != 2 {
		t.Errorf("fourth hint changed state: hints=%d lives=%d", len(s.Hints), s.Lives)
	}

	seen := make(map[string]bool)
	for _, h := range s.Hints {
		if seen[h] {
			t.Errorf("duplicate hint %q", h)
		}
		seen[h] = true
	}
	checkInvariants(t, s)
}

func TestHintBlockedAtOneLife(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(1)

	s.RequestHint()
	if len(s.Hints) != 0 || s.Lives != 1 {
		t.Error("hint at one life must never change state")
	}
}

func TestHintsResetEachRound(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(5)
	s.RequestHint()

	s.Guess(answer(t, s), time.Now())
	s.NextRound()

	if len(s.Hints) != 0 {
		t.Errorf("hints = %v, want empty after advancing", s.Hints)
	}
	if s.RoundErrors != 0 {
		t.Errorf("roundErrors = %d, want 0", s.RoundErrors)
	}
}

func TestNextRoundAvoidsRepeats(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(5)

	for range 5 {
		s.Guess(answer(t, s), time.Now())
		if eff := s.NextRound(); eff.PersistScore {
			t.Fatal("unexpected exhaustion")
		}
		checkInvariants(t, s)
	}
	if len(s.History) != 6 {
		t.Errorf("history = %d entries, want 6", len(s.History))
	}
}

func TestCatalogExhaustionEndsGame(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(5)

	total := len(catalog.All())
	for i := 0; i < total-1; i++ {
		if correct, _ := s.Guess(answer(t, s), time.Now()); !correct {
			t.Fatalf("round %d: guess rejected", i)
		}
		if eff := s.NextRound(); eff.PersistScore {
			t.Fatalf("round %d: exhausted early", i)
		}
	}

	// Solve the last country; advancing must end the session.
	last := answer(t, s)
	s.Guess(last, time.Now())
	eff := s.NextRound()

	if s.Status != StatusGameOver {
		t.Fatalf("status = %q, want gameover", s.Status)
	}
	if !eff.PersistScore {
		t.Error("expected persist effect on exhaustion")
	}
	if s.Score != total*GuessReward {
		t.Errorf("score = %d, want %d", s.Score, total*GuessReward)
	}
	// The just-solved country stays visible on the gameover view.
	if s.Current == nil || s.Current.LocalName(s.Language) != last {
		t.Errorf("current = %v, want the last solved country %q", s.Current, last)
	}
}

func TestAdvanceOverloading(t *testing.T) {
	s := testSession(i18n.Portuguese)

	// No bound effect outside success/gameover/leaderboard.
	s.Advance()
	if s.Status != StatusMenu {
		t.Errorf("advance from menu moved to %q", s.Status)
	}

	s.Start(2)
	first := s.Current.Name
	s.Advance()
	if s.Status != StatusPlaying || s.Current.Name != first {
		t.Error("advance while playing must be a no-op")
	}

	s.Guess(answer(t, s), time.Now())
	s.Advance()
	if s.Status != StatusPlaying || len(s.History) != 2 {
		t.Errorf("advance from success: status=%q history=%d", s.Status, len(s.History))
	}

	s.Guess("wrong", time.Now())
	s.Guess("wrong", time.Now())
	if s.Status != StatusGameOver {
		t.Fatalf("status = %q, want gameover", s.Status)
	}
	s.Advance()
	if s.Status != StatusPlaying || s.Lives != 2 || s.Score != 0 || len(s.History) != 1 {
		t.Error("advance from gameover must restart with the same life budget")
	}

	s.GoToLeaderboard()
	s.Advance()
	if s.Status != StatusMenu {
		t.Errorf("advance from leaderboard = %q, want menu", s.Status)
	}
}

func TestToggleLanguageKeepsProgress(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(3)
	s.Guess("wrong", time.Now())

	s.ToggleLanguage()
	if s.Language != i18n.English {
		t.Fatalf("language = %q, want en", s.Language)
	}
	if s.Status != StatusPlaying || s.Lives != 2 {
		t.Error("language toggle must not touch progress")
	}

	// Matching targets the active display language only.
	en := s.Current.LocalName(i18n.English)
	pt := s.Current.LocalName(i18n.Portuguese)
	if en != pt {
		if correct, _ := s.Guess(pt, time.Now()); correct {
			t.Error("Portuguese name matched while display language is English")
		}
	}
	if correct, _ := s.Guess(en, time.Now()); !correct {
		t.Error("English name rejected while display language is English")
	}
}

func TestDeliverFactStaleAfterAdvance(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(5)

	_, eff := s.Guess(answer(t, s), time.Now())
	req := eff.FetchFact
	if req == nil {
		t.Fatal("expected fact fetch effect")
	}

	// Round advances before the fetch resolves; the result must be dropped.
	s.NextRound()
	if s.DeliverFact(req.Key, "stale fact about the old country") {
		t.Error("stale fact applied after advancing")
	}
	if s.FunFact != "" {
		t.Errorf("funFact = %q, want empty", s.FunFact)
	}
}

func TestDeliverFactCurrentRound(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(5)

	_, eff := s.Guess(answer(t, s), time.Now())
	if !s.DeliverFact(eff.FetchFact.Key, "one neat fact") {
		t.Fatal("fact for the current round rejected")
	}
	if s.FunFact != "one neat fact" || s.FactPending {
		t.Errorf("got funFact=%q pending=%v", s.FunFact, s.FactPending)
	}

	// Second delivery with the same key is ignored.
	if s.DeliverFact(eff.FetchFact.Key, "another") {
		t.Error("duplicate delivery applied")
	}
}

func TestReturnToMenu(t *testing.T) {
	s := testSession(i18n.Portuguese)
	s.Start(1)
	s.Guess("wrong", time.Now())

	s.ReturnToMenu()
	if s.Status != StatusMenu {
		t.Errorf("status = %q, want menu", s.Status)
	}

	// Not available mid-round.
	s.Start(3)
	s.ReturnToMenu()
	if s.Status != StatusPlaying {
		t.Errorf("status = %q, want playing", s.Status)
	}
}
