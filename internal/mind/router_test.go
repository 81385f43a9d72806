package mind

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/abg-tutor/internal/ai"
)

type fakeProvider struct {
	reply string
	err   error
	calls int
	last  ai.Request
}

func (p *fakeProvider) Generate(_ context.Context, req ai.Request) (string, error) {
	p.calls++
	p.last = req
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type fakeSentiment struct{ score float64 }

func (f fakeSentiment) Score(string) float64 { return f.score }

type fakeSolver struct{ hint string }

func (f fakeSolver) Solve(string) (string, bool) { return f.hint, f.hint != "" }

func newTestRouter(p *fakeProvider) (*Router, *Store) {
	store, _ := newTestStore()

	resp := NewResponder(p)
	resp.pace.wait = func(context.Context) error { return nil }

	r := NewRouter(store, resp, fakeSentiment{}, fakeSolver{})
	r.now = store.now
	r.randFloat = func() float64 { return 0.99 } // probabilistic branches stay off
	r.randInt = func(n int) int { return 0 }
	r.dec = &Decorator{
		randFloat: func() float64 { return 0.99 }, // no injection by default
		randInt:   func(n int) int { return 0 },
	}
	return r, store
}

func dm(userID, text string) Inbound {
	return Inbound{SenderID: userID, Text: text, IsDM: true}
}

func TestNewUserWelcome(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)

	out := r.Handle(context.Background(), dm("new-user", "hi"))
	require.NotNil(t, out)
	assert.Equal(t, welcomeReply, out.Text)
	assert.False(t, store.HasActiveSession("new-user"), "welcome does not start a session")
	assert.Zero(t, p.calls)

	// second message is past the welcome gate
	out = r.Handle(context.Background(), dm("new-user", "hi"))
	require.NotNil(t, out)
	assert.NotEqual(t, welcomeReply, out.Text)
}

func TestGibberishDeflectionSkipsBackendAndHistory(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")

	out := r.Handle(context.Background(), dm("u1", "!chat"))
	require.NotNil(t, out)
	assert.Equal(t, chatStartReply, out.Text)
	require.True(t, store.HasActiveSession("u1"))

	out = r.Handle(context.Background(), dm("u1", "asdfgh"))
	require.NotNil(t, out)
	assert.Contains(t, gibberishReplies, out.Text)
	assert.Empty(t, store.History("u1"), "keyboard noise never enters history")
	assert.Zero(t, p.calls)
}

func TestCommandStartedSessionSkipsWelcomeGate(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)

	// brand-new user, no prior contact at all
	out := r.Handle(context.Background(), dm("fresh", "!chat"))
	require.NotNil(t, out)
	assert.Equal(t, chatStartReply, out.Text)
	require.True(t, store.HasActiveSession("fresh"))

	out = r.Handle(context.Background(), dm("fresh", "asdfgh"))
	require.NotNil(t, out)
	assert.Contains(t, gibberishReplies, out.Text, "session dispatch, not onboarding")
	assert.NotEqual(t, welcomeReply, out.Text)
	assert.Empty(t, store.History("fresh"))
	assert.Zero(t, p.calls)
}

func TestBareHelpInsideSession(t *testing.T) {
	p := &fakeProvider{reply: "should not be used"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	out := r.Handle(context.Background(), dm("u1", "help"))
	require.NotNil(t, out)
	assert.Equal(t, helpText, out.Text)
	assert.Zero(t, p.calls)
}

func TestGibberishDeflectionMatchesTone(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)
	store.MarkWelcomed(PrivilegedUserID)
	store.StartSession(PrivilegedUserID)

	out := r.Handle(context.Background(), dm(PrivilegedUserID, "asdfgh"))
	require.NotNil(t, out)
	assert.Contains(t, gibberishRepliesFlirty, out.Text)
	assert.Zero(t, p.calls)
}

func TestAggressionForcesAnnoyedTone(t *testing.T) {
	p := &fakeProvider{reply: "ok chill"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	// decorator would inject on every reply if the tone allowed it
	r.dec = alwaysDecorator()

	out := r.Handle(context.Background(), dm("u1", "stfu"))
	require.NotNil(t, out)
	assert.Equal(t, "ok chill", out.Text, "annoyed replies skip nickname and emoji injection")

	last, ok := store.LastTone("u1")
	require.True(t, ok)
	assert.Equal(t, ToneAnnoyed, last)
}

func TestAggressionBeatsPrivilegedTone(t *testing.T) {
	p := &fakeProvider{reply: "wow rude"}
	r, store := newTestRouter(p)
	store.MarkWelcomed(PrivilegedUserID)
	store.StartSession(PrivilegedUserID)

	out := r.Handle(context.Background(), dm(PrivilegedUserID, "stfu"))
	require.NotNil(t, out)

	last, ok := store.LastTone(PrivilegedUserID)
	require.True(t, ok)
	assert.Equal(t, ToneAnnoyed, last)
}

func TestRateLimitBreakerAndOneTimeNotice(t *testing.T) {
	p := &fakeProvider{err: ai.ErrRateLimited}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.MarkWelcomed("u2")
	store.StartSession("u1")
	store.StartSession("u2")

	out := r.Handle(context.Background(), dm("u1", "random question about life"))
	require.NotNil(t, out)
	assert.Equal(t, limitNoticeReply, out.Text, "first trip carries the notice")
	assert.Equal(t, 1, p.calls)

	out = r.Handle(context.Background(), dm("u2", "another question entirely"))
	require.NotNil(t, out)
	assert.Contains(t, fallbackReplies, out.Text, "later failures fall back silently")
	assert.Equal(t, 1, p.calls, "breaker skips the backend for the rest of the process")

	assert.Empty(t, store.History("u1"), "failed calls never mutate history")
	assert.Empty(t, store.History("u2"))
}

func TestTimeoutFallback(t *testing.T) {
	p := &fakeProvider{err: ai.ErrTimeout}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	out := r.Handle(context.Background(), dm("u1", "tell me a story about rocks"))
	require.NotNil(t, out)
	assert.Equal(t, timeoutFallbackReply, out.Text)
	assert.Empty(t, store.History("u1"))
}

func TestConversationStartAppendsHintOnce(t *testing.T) {
	p := &fakeProvider{reply: "heyy what's up"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")

	out := r.Handle(context.Background(), Inbound{SenderID: "u1", Text: "hey abg tutor"})
	require.NotNil(t, out)
	assert.True(t, strings.HasSuffix(out.Text, sessionStartHint), "starting turn carries the hint")
	assert.True(t, store.HasActiveSession("u1"))

	out = r.Handle(context.Background(), Inbound{SenderID: "u1", Text: "ok tell me something cool"})
	require.NotNil(t, out)
	assert.False(t, strings.Contains(out.Text, sessionStartHint), "hint only on the turn that created the session")
}

func TestGoodbyeEndsSession(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	out := r.Handle(context.Background(), dm("u1", "goodbye"))
	require.NotNil(t, out)
	assert.Contains(t, goodbyeReplies, out.Text)
	assert.False(t, store.HasActiveSession("u1"))
}

func TestOneOffMentionWithoutSession(t *testing.T) {
	p := &fakeProvider{reply: "one-off answer"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")

	out := r.Handle(context.Background(), Inbound{SenderID: "u1", Text: "abg tutor do u think pineapple belongs on pizza"})
	require.NotNil(t, out)
	assert.True(t, strings.HasSuffix(out.Text, oneOffHint))
	assert.False(t, store.HasActiveSession("u1"), "one-off replies never create a session")
	assert.Empty(t, store.History("u1"))
	_, ok := store.LastTone("u1")
	assert.False(t, ok, "no last-tone record without a session and history")
}

func TestComplimentGetsReaction(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")

	out := r.Handle(context.Background(), Inbound{SenderID: "u1", Text: "abg tutor is goated"})
	require.NotNil(t, out)
	assert.Contains(t, friendlyReactions, out.Reaction)
	assert.Contains(t, friendlyComplimentReplies, out.Text)
	assert.Zero(t, p.calls)
}

func TestSubjectRoundTrip(t *testing.T) {
	p := &fakeProvider{reply: "bio is fun"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	r.Handle(context.Background(), dm("u1", "ap bio is rough today"))
	r.Handle(context.Background(), dm("u1", "yeah ap bio again"))

	assert.Equal(t, []string{"AP Biology"}, store.Memory("u1").Subjects, "recorded exactly once across repeats")
}

func TestTeachingRequestIsOneDirectional(t *testing.T) {
	p := &fakeProvider{reply: "so basically limits work like this"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	r.Handle(context.Background(), dm("u1", "can you explain limits step by step"))
	assert.True(t, store.Session("u1").TeachingMode)
	assert.Equal(t, TeachingMaxTokens, p.last.MaxTokens)

	r.Handle(context.Background(), dm("u1", "lmaoo that was funny"))
	assert.True(t, store.Session("u1").TeachingMode, "casual chatter never exits teaching mode")

	out := r.Handle(context.Background(), dm("u1", "!casual"))
	require.NotNil(t, out)
	assert.Equal(t, casualReply, out.Text)
	assert.False(t, store.Session("u1").TeachingMode)
}

func TestCannedBeatsGenerative(t *testing.T) {
	p := &fakeProvider{reply: "should not be used"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	out := r.Handle(context.Background(), dm("u1", "are you a bot"))
	require.NotNil(t, out)
	assert.Contains(t, botAccusationReplies, out.Text)
	assert.Zero(t, p.calls)
}

func TestPersonalityChangeRefusal(t *testing.T) {
	p := &fakeProvider{reply: "should not be used"}
	r, store := newTestRouter(p)
	store.MarkWelcomed("u1")
	store.StartSession("u1")
	store.SetMode("u1", ModeBestie)

	out := r.Handle(context.Background(), dm("u1", "please be flirty with me"))
	require.NotNil(t, out)
	assert.Contains(t, personalityChangeReplies, out.Text)
	assert.Zero(t, p.calls, "never forwarded to the backend as an instruction")
	assert.Equal(t, ModeBestie, store.Session("u1").Mode)
}

func TestEvictionRunsBeforeToneDecisions(t *testing.T) {
	p := &fakeProvider{reply: "heyy"}
	r, store := newTestRouter(p)
	clock := &fakeClock{t: time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)}
	store.now = clock.now
	r.now = clock.now

	store.MarkWelcomed("u1")
	store.StartSession("u1")
	store.SetMode("u1", ModeFlirty)
	store.SetTeaching("u1", true)
	store.AppendExchange("u1", "hi", "heyy", CasualHistoryCap)

	clock.advance(SessionIdleTimeout + time.Minute)

	r.Handle(context.Background(), dm("u1", "back again"))
	sess := store.Session("u1")
	assert.Equal(t, ModeBestie, sess.Mode)
	assert.False(t, sess.TeachingMode)
}

func TestMathHintReachesPrompt(t *testing.T) {
	p := &fakeProvider{reply: "it's 4"}
	r, store := newTestRouter(p)
	r.solver = fakeSolver{hint: "2+2 = 4"}
	store.MarkWelcomed("u1")
	store.StartSession("u1")

	r.Handle(context.Background(), dm("u1", "what is 2+2 anyway"))
	require.NotEmpty(t, p.last.Messages)
	assert.Contains(t, p.last.Messages[0].Content, "2+2 = 4")
}
