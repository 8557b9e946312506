package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload pushed to a session's event stream subscribers.
type Event struct {
	Type    string `json:"type"` // "status" or "fact_ready"
	Status  string `json:"status,omitempty"`
	Score   int    `json:"score,omitempty"`
	Lives   int    `json:"lives,omitempty"`
	FunFact string `json:"funFact,omitempty"`
}

// Broker is an in-process pub/sub for session events, keyed by session
// token. It carries status changes and fun-fact arrivals to the SSE and
// websocket feeds.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel receiving JSON-encoded events for the session.
func (b *Broker) Subscribe(token string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[token] == nil {
		b.subs[token] = make(map[chan []byte]struct{})
	}
	b.subs[token][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(token string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[token], ch)
	if len(b.subs[token]) == 0 {
		delete(b.subs, token)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the session.
func (b *Broker) Publish(token string, event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[token] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
