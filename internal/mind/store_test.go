package mind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)}
	s := NewStore()
	s.now = clock.now
	return s, clock
}

func TestSessionDefaults(t *testing.T) {
	s, _ := newTestStore()
	sess := s.Session("u1")
	assert.Equal(t, ModeBestie, sess.Mode)
	assert.False(t, sess.TeachingMode)
	assert.False(t, sess.Active)
}

func TestEvictIfExpiredResetsAtomically(t *testing.T) {
	s, clock := newTestStore()

	s.StartSession("u1")
	s.SetMode("u1", ModeFlirty)
	s.SetTeaching("u1", true)
	s.AppendExchange("u1", "hi", "heyy", CasualHistoryCap)
	s.SetLastTone("u1", ToneFlirty)

	clock.advance(SessionIdleTimeout - time.Second)
	assert.False(t, s.EvictIfExpired("u1"), "not expired yet")

	clock.advance(2 * time.Second)
	require.True(t, s.EvictIfExpired("u1"))

	sess := s.Session("u1")
	assert.Equal(t, ModeBestie, sess.Mode, "mode back to default")
	assert.False(t, sess.TeachingMode)
	assert.False(t, sess.Active)
	assert.Empty(t, s.History("u1"))
	_, ok := s.LastTone("u1")
	assert.False(t, ok, "last tone cleared with the session")
}

func TestMemorySurvivesEviction(t *testing.T) {
	s, clock := newTestStore()

	s.StartSession("u1")
	s.AddSubjects("u1", []string{"AP Biology"})
	s.SetStress("u1", StressHigh)

	clock.advance(SessionIdleTimeout + time.Minute)
	require.True(t, s.EvictIfExpired("u1"))

	mem := s.Memory("u1")
	assert.Equal(t, []string{"AP Biology"}, mem.Subjects)
	assert.Equal(t, StressHigh, mem.Stress)
}

func TestEndSessionTearsDownGroup(t *testing.T) {
	s, _ := newTestStore()

	s.StartSession("u1")
	s.AppendExchange("u1", "hi", "heyy", CasualHistoryCap)
	s.SetLastTone("u1", ToneBestie)

	s.EndSession("u1")

	assert.False(t, s.HasActiveSession("u1"))
	assert.Empty(t, s.History("u1"))
	_, ok := s.LastTone("u1")
	assert.False(t, ok)
}

func TestAppendExchangeWindow(t *testing.T) {
	s, _ := newTestStore()

	for i := 0; i < 10; i++ {
		s.AppendExchange("u1", "q", "a", CasualHistoryCap)
	}
	h := s.History("u1")
	assert.Len(t, h, CasualHistoryCap, "window slides, oldest turns dropped")
}

func TestAddSubjectsDedupInsertionOrder(t *testing.T) {
	s, _ := newTestStore()

	s.AddSubjects("u1", []string{"AP Biology", "Calculus"})
	s.AddSubjects("u1", []string{"Calculus", "AP Chemistry", "AP Biology"})

	assert.Equal(t, []string{"AP Biology", "Calculus", "AP Chemistry"}, s.Memory("u1").Subjects)
}

func TestMemoryDefaultStress(t *testing.T) {
	s, _ := newTestStore()
	assert.Equal(t, StressMedium, s.Memory("new").Stress)
}

func TestHistoryReturnsCopy(t *testing.T) {
	s, _ := newTestStore()
	s.AppendExchange("u1", "hi", "heyy", CasualHistoryCap)

	h := s.History("u1")
	h[0].Content = "mutated"

	assert.Equal(t, "hi", s.History("u1")[0].Content)
}
