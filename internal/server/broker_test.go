package server

import (
	"encoding/json"
	"testing"
)

func TestBrokerPublish(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: "question_advance", QuestionIndex: 2})

	select {
	case data := <-ch:
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decoding event: %v", err)
		}
		if ev.Type != "question_advance" || ev.QuestionIndex != 2 {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestBrokerDropsSlowSubscriber(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Overflow the buffer; Publish must never block.
	for i := 0; i < 100; i++ {
		b.Publish(Event{Type: "answer_result", QuestionIndex: i})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("buffered = %d, want full buffer %d", got, cap(ch))
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	b.Publish(Event{Type: "game_started"})

	if len(ch) != 0 {
		t.Error("unsubscribed channel received an event")
	}
}
