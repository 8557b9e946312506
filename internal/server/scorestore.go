package server

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ScoreStore persists the player's single best score. Writes are
// monotonic: SaveBest never lowers the stored value, so repeated calls
// with the same or a lower score are harmless.
type ScoreStore interface {
	// Best returns the stored best score; the bool is false when nothing
	// has been saved yet.
	Best(ctx context.Context) (int, bool, error)
	// SaveBest stores score if it beats the current best.
	SaveBest(ctx context.Context, score int) error
	// Reset discards the stored best.
	Reset(ctx context.Context) error
}

const bestScoreKey = "geostats:best_score"

// RedisScoreStore keeps the best score under a single Redis key, the
// server-side analog of the original client's local storage slot.
type RedisScoreStore struct {
	rdb *redis.Client
}

func NewRedisScoreStore(rdb *redis.Client) *RedisScoreStore {
	return &RedisScoreStore{rdb: rdb}
}

func (s *RedisScoreStore) Best(ctx context.Context) (int, bool, error) {
	val, err := s.rdb.Get(ctx, bestScoreKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	best, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, err
	}
	return best, true, nil
}

func (s *RedisScoreStore) SaveBest(ctx context.Context, score int) error {
	best, ok, err := s.Best(ctx)
	if err != nil {
		return err
	}
	if ok && score <= best {
		return nil
	}
	return s.rdb.Set(ctx, bestScoreKey, strconv.Itoa(score), 0).Err()
}

func (s *RedisScoreStore) Reset(ctx context.Context) error {
	return s.rdb.Del(ctx, bestScoreKey).Err()
}

// MemScoreStore is the in-memory ScoreStore used by tests.
type MemScoreStore struct {
	mu    sync.Mutex
	best  int
	saved bool
	// Saves counts SaveBest calls so tests can assert persistence fired.
	Saves int
}

func (s *MemScoreStore) Best(context.Context) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, s.saved, nil
}

func (s *MemScoreStore) SaveBest(_ context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if !s.saved || score > s.best {
		s.best = score
		s.saved = true
	}
	return nil
}

func (s *MemScoreStore) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = 0
	s.saved = false
	return nil
}
