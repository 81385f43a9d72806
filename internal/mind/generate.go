package mind

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/keshon/abg-tutor/internal/ai"
)

// GenerateFailure tells the caller which fallback to use. The reply
// string is only meaningful when the failure is FailNone.
type GenerateFailure int

const (
	FailNone GenerateFailure = iota
	FailRateLimited
	FailTimeout
	FailEmpty
	FailOther
)

// Responder wraps the generative backend with a concurrency bound,
// call pacing, a hard per-call timeout, and the sticky quota breaker.
type Responder struct {
	provider ai.Provider
	sem      *semaphore.Weighted
	pace     *limiterPace
	brk      breaker
}

// limiterPace is a thin alias so tests can swap pacing off.
type limiterPace struct {
	wait func(ctx context.Context) error
}

func NewResponder(p ai.Provider) *Responder {
	pacer := newPacer()
	return &Responder{
		provider: p,
		sem:      semaphore.NewWeighted(maxConcurrentGenerations),
		pace:     &limiterPace{wait: pacer.Wait},
	}
}

// ConsumeLimitNotice returns true exactly once after the breaker first
// trips; that caller sends the one-time heads-up to the user.
func (r *Responder) ConsumeLimitNotice() bool { return r.brk.ConsumeNotice() }

// Generate runs one backend call under all the limits. It never
// returns an error; failures come back as a GenerateFailure so the
// router can pick the matching fallback.
func (r *Responder) Generate(ctx context.Context, req ai.Request) (string, GenerateFailure) {
	if r.brk.Tripped() {
		return "", FailRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, GenerateTimeout)
	defer cancel()

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return "", FailTimeout
	}
	defer r.sem.Release(1)

	if err := r.pace.wait(ctx); err != nil {
		return "", FailTimeout
	}

	reply, err := r.provider.Generate(ctx, req)
	switch {
	case err == nil:
	case errors.Is(err, ai.ErrRateLimited):
		log.Printf("[AI] quota exhausted, latching breaker")
		r.brk.Trip()
		return "", FailRateLimited
	case errors.Is(err, ai.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		log.Printf("[AI] generation timed out")
		return "", FailTimeout
	case errors.Is(err, ai.ErrEmpty):
		return "", FailEmpty
	default:
		log.Printf("[ERR] generation failed: %v", err)
		return "", FailOther
	}

	if strings.TrimSpace(reply) == "" {
		return "", FailEmpty
	}
	return reply, FailNone
}
