package server

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	mathrand "math/rand/v2"
	"sync"

	"github.com/geoplay/geostats/internal/game"
	"github.com/geoplay/geostats/internal/i18n"
)

var ErrNotFound = errors.New("not found")

// playerSession pairs one game session with its bearer token. The game
// engine is single-threaded by contract; mu serializes the HTTP handlers
// and the background fact delivery that share it.
type playerSession struct {
	Token string

	mu   sync.Mutex
	Game *game.Session
}

// With runs fn with the session locked.
func (p *playerSession) With(fn func(s *game.Session)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.Game)
}

// Registry holds the live player sessions in memory, keyed by token.
// Sessions are ephemeral; only the best score outlives the process.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*playerSession

	// newRNG builds the per-session random source. Overridden in tests for
	// deterministic country and hint selection.
	newRNG func() *mathrand.Rand
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*playerSession),
		newRNG:   seededRNG,
	}
}

// Create starts a new menu-state session and returns it with a fresh token.
func (r *Registry) Create(lang i18n.Language) *playerSession {
	ps := &playerSession{
		Token: newToken(),
		Game:  game.New(lang, r.newRNG()),
	}
	r.mu.Lock()
	r.sessions[ps.Token] = ps
	r.mu.Unlock()
	return ps
}

// Get resolves a bearer token to its session.
func (r *Registry) Get(token string) (*playerSession, error) {
	r.mu.RLock()
	ps, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return ps, nil
}

// newToken returns a compact 32-hex-char bearer token.
func newToken() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// seededRNG builds a PCG source seeded from crypto/rand.
func seededRNG() *mathrand.Rand {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return mathrand.New(mathrand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))
}
