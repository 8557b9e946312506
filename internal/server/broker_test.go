package server

import (
	"encoding/json"
	"testing"
)

func TestBrokerDeliversToSessionSubscribers(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("tok-1")
	other := b.Subscribe("tok-2")
	defer b.Unsubscribe("tok-1", ch)
	defer b.Unsubscribe("tok-2", other)

	b.Publish("tok-1", Event{Type: "status", Status: "playing", Lives: 5})

	select {
	case data := <-ch:
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decoding event: %v", err)
		}
		if ev.Type != "status" || ev.Status != "playing" || ev.Lives != 5 {
			t.Errorf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("subscriber did not receive the event")
	}

	select {
	case <-other:
		t.Error("event leaked to another session's subscriber")
	default:
	}
}

func TestBrokerDropsWhenSubscriberIsSlow(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("tok")
	defer b.Unsubscribe("tok", ch)

	// Overfill the buffer; Publish must not block.
	for i := 0; i < 40; i++ {
		b.Publish("tok", Event{Type: "status", Score: i})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("buffered events = %d, want full buffer of %d", got, cap(ch))
	}
}

func TestBrokerUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("tok")
	b.Unsubscribe("tok", ch)

	b.Publish("tok", Event{Type: "status"})
	if len(ch) != 0 {
		t.Error("unsubscribed channel still received an event")
	}
}
