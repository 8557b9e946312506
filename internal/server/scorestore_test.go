package server

import (
	"context"
	"testing"
)

func TestMemScoreStoreMonotonic(t *testing.T) {
	ctx := context.Background()
	s := &MemScoreStore{}

	if _, ok, _ := s.Best(ctx); ok {
		t.Fatal("fresh store should report no best score")
	}

	s.SaveBest(ctx, 300)
	s.SaveBest(ctx, 100) // lower, must not win
	s.SaveBest(ctx, 500)

	best, ok, _ := s.Best(ctx)
	if !ok || best != 500 {
		t.Errorf("best = %d (ok=%v), want 500", best, ok)
	}
	if s.Saves != 3 {
		t.Errorf("Saves = %d, want 3", s.Saves)
	}
}

func TestMemScoreStoreZeroIsAScore(t *testing.T) {
	ctx := context.Background()
	s := &MemScoreStore{}

	// A game over with zero points still records a best of zero.
	s.SaveBest(ctx, 0)
	best, ok, _ := s.Best(ctx)
	if !ok || best != 0 {
		t.Errorf("best = %d (ok=%v), want 0 recorded", best, ok)
	}
}

func TestMemScoreStoreReset(t *testing.T) {
	ctx := context.Background()
	s := &MemScoreStore{}

	s.SaveBest(ctx, 700)
	s.Reset(ctx)

	if _, ok, _ := s.Best(ctx); ok {
		t.Error("reset store should report no best score")
	}
}
