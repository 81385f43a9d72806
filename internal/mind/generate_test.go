package mind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keshon/abg-tutor/internal/ai"
)

func testResponder(p ai.Provider) *Responder {
	r := NewResponder(p)
	r.pace.wait = func(context.Context) error { return nil }
	return r
}

func TestGenerateSuccess(t *testing.T) {
	r := testResponder(&fakeProvider{reply: "heyy bestie"})
	reply, fail := r.Generate(context.Background(), ai.Request{})
	assert.Equal(t, FailNone, fail)
	assert.Equal(t, "heyy bestie", reply)
}

func TestGenerateFailureTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		want GenerateFailure
	}{
		{ai.ErrTimeout, FailTimeout},
		{ai.ErrEmpty, FailEmpty},
		{assert.AnError, FailOther},
	}
	for _, tc := range cases {
		r := testResponder(&fakeProvider{err: tc.err})
		_, fail := r.Generate(context.Background(), ai.Request{})
		assert.Equal(t, tc.want, fail, "error %v", tc.err)
	}
}

func TestGenerateBlankReplyIsEmptyFailure(t *testing.T) {
	r := testResponder(&fakeProvider{reply: "   "})
	_, fail := r.Generate(context.Background(), ai.Request{})
	assert.Equal(t, FailEmpty, fail)
}

func TestBreakerIsStickyAndNoticeFiresOnce(t *testing.T) {
	p := &fakeProvider{err: ai.ErrRateLimited}
	r := testResponder(p)

	_, fail := r.Generate(context.Background(), ai.Request{})
	assert.Equal(t, FailRateLimited, fail)
	assert.True(t, r.brk.Tripped())
	assert.True(t, r.ConsumeLimitNotice())
	assert.False(t, r.ConsumeLimitNotice(), "notice is one-time")

	_, fail = r.Generate(context.Background(), ai.Request{})
	assert.Equal(t, FailRateLimited, fail)
	assert.Equal(t, 1, p.calls, "no backend probing after the trip")
}

func TestTimeoutDoesNotTripBreaker(t *testing.T) {
	r := testResponder(&fakeProvider{err: ai.ErrTimeout})
	_, _ = r.Generate(context.Background(), ai.Request{})
	assert.False(t, r.brk.Tripped())
	assert.False(t, r.ConsumeLimitNotice())
}
