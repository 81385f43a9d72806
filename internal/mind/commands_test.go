package mind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandRouter() (*Router, *Store) {
	return newTestRouter(&fakeProvider{reply: "unused"})
}

func TestHelpCommand(t *testing.T) {
	r, _ := newCommandRouter()
	reply, ok := r.handleCommand("u1", "!help")
	require.True(t, ok)
	assert.Equal(t, helpText, reply)
}

func TestModeCommands(t *testing.T) {
	r, store := newCommandRouter()

	reply, ok := r.handleCommand("u1", "!mode flirty")
	require.True(t, ok)
	assert.Equal(t, modeFlirtyReply, reply)
	assert.Equal(t, ModeFlirty, store.Session("u1").Mode)

	reply, ok = r.handleCommand("u1", "!mode bestie")
	require.True(t, ok)
	assert.Equal(t, modeBestieReply, reply)
	assert.Equal(t, ModeBestie, store.Session("u1").Mode)

	reply, ok = r.handleCommand("u1", "!mode chaotic")
	require.True(t, ok)
	assert.Equal(t, modeUsageReply, reply)
}

func TestChatAndByeCommands(t *testing.T) {
	r, store := newCommandRouter()

	_, ok := r.handleCommand("u1", "!chat")
	require.True(t, ok)
	assert.True(t, store.HasActiveSession("u1"))

	reply, ok := r.handleCommand("u1", "!bye")
	require.True(t, ok)
	assert.Contains(t, goodbyeReplies, reply)
	assert.False(t, store.HasActiveSession("u1"))
}

func TestResourceCommands(t *testing.T) {
	r, _ := newCommandRouter()

	reply, ok := r.handleCommand("u1", "!ap biology")
	require.True(t, ok)
	assert.Contains(t, reply, "AP Biology Resources")

	reply, ok = r.handleCommand("u1", "!sat")
	require.True(t, ok)
	assert.Contains(t, reply, "SAT Resources")

	reply, ok = r.handleCommand("u1", "!act")
	require.True(t, ok)
	assert.Contains(t, reply, "ACT Resources")
}

func TestUnknownCommandNeverSilent(t *testing.T) {
	r, _ := newCommandRouter()
	reply, ok := r.handleCommand("u1", "!frobnicate")
	require.True(t, ok)
	assert.Equal(t, unknownCommandReply, reply)
}

func TestNonCommandPassesThrough(t *testing.T) {
	r, _ := newCommandRouter()
	_, ok := r.handleCommand("u1", "hello there")
	assert.False(t, ok)
}

func TestLookupResourceAliasPrecedence(t *testing.T) {
	reply, ok := LookupResource("ap calc bc please")
	require.True(t, ok)
	assert.Contains(t, reply, "AP Calculus BC")

	reply, ok = LookupResource("ap physics c mech")
	require.True(t, ok)
	assert.Contains(t, reply, "AP Physics C: Mechanics")

	_, ok = LookupResource("underwater basket weaving")
	assert.False(t, ok)
}
