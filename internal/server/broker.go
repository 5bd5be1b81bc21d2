package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload published to SSE subscribers.
type Event struct {
	Type          string `json:"type"`
	PackID        string `json:"packId,omitempty"`
	QuestionIndex int    `json:"questionIndex,omitempty"`
	Correct       bool   `json:"correct,omitempty"`
	PackComplete  bool   `json:"packComplete,omitempty"`
}

// Broker is an in-process pub/sub for SSE events. The host serves one
// profile, so all subscribers see the same stream.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends an event to all subscribers.
func (b *Broker) Publish(event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
