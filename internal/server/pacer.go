package server

import (
	"sync"
	"time"
)

// feedbackDelay is how long answer feedback stays visible before the next
// question is announced over the event stream.
const feedbackDelay = 1500 * time.Millisecond

// pacer schedules the delayed question_advance announcement after an
// answer. Scheduling again, or Cancel, invalidates any pending callback.
// Stopping the timer alone is not enough: the callback may already be
// running when a reschedule lands, so each Schedule bumps a generation
// counter and the callback re-checks it at fire time.
type pacer struct {
	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

func (p *pacer) Schedule(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	gen := p.gen
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(feedbackDelay, func() { p.fire(gen, fn) })
}

func (p *pacer) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// fire runs fn only when gen is still the latest scheduled generation.
func (p *pacer) fire(gen uint64, fn func()) {
	p.mu.Lock()
	live := gen == p.gen
	p.mu.Unlock()
	if live {
		fn()
	}
}
