package mind

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Backend call limits. The breaker is process-wide and sticky: once the
// daily quota is gone there is no point probing until a restart.

const (
	// maxConcurrentGenerations bounds in-flight backend calls.
	maxConcurrentGenerations = 4

	// generatePace spaces calls out so bursts of chatter don't slam the
	// backend all at once.
	generatePace  = time.Second
	generateBurst = 3
)

func newPacer() *rate.Limiter {
	return rate.NewLimiter(rate.Every(generatePace), generateBurst)
}

// breaker latches when the backend reports its quota is exhausted.
// The first trip arms a one-time user-facing notice.
type breaker struct {
	mu            sync.Mutex
	tripped       bool
	noticePending bool
}

func (b *breaker) Trip() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.tripped {
		b.tripped = true
		b.noticePending = true
	}
}

func (b *breaker) Tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tripped
}

// ConsumeNotice returns true exactly once after the first trip. The
// caller that gets true owes the user the heads-up message.
func (b *breaker) ConsumeNotice() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.noticePending {
		b.noticePending = false
		return true
	}
	return false
}
