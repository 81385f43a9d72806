package mind

import "strings"

// Command handling. Anything starting with "!" is intercepted before
// session and tone logic, so commands work identically with or without
// an active conversation.

const (
	chatStartReply = "heyyy let's talk! 💕 i'm all yours, what's on your mind?"

	modeUsageReply = "pick one bestie: `!mode bestie` or `!mode flirty` 😌"

	modeBestieReply = "bet, back to bestie mode 😌"
	modeFlirtyReply = "ok flirty mode unlocked 😳💕 don't make it weird"

	casualReply = "bet, keeping it casual from here 😌"
)

// handleCommand intercepts "!" commands. Returns the reply and true
// when the message was a command, even an unrecognized one.
func (r *Router) handleCommand(userID, text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "!") {
		return "", false
	}
	lowered := strings.ToLower(trimmed)

	switch {
	case lowered == "!help":
		return helpText, true

	case lowered == "!chat":
		r.store.StartSession(userID)
		return chatStartReply, true

	case lowered == "!bye":
		r.store.EndSession(userID)
		return r.pick(goodbyeReplies), true

	case lowered == "!casual":
		r.store.SetTeaching(userID, false)
		return casualReply, true

	case strings.HasPrefix(lowered, "!mode"):
		switch strings.TrimSpace(strings.TrimPrefix(lowered, "!mode")) {
		case "bestie":
			r.store.SetMode(userID, ModeBestie)
			return modeBestieReply, true
		case "flirty":
			r.store.SetMode(userID, ModeFlirty)
			return modeFlirtyReply, true
		default:
			return modeUsageReply, true
		}

	case strings.HasPrefix(lowered, "!ap ") || lowered == "!sat" || lowered == "!act":
		if reply, ok := LookupResource(strings.TrimPrefix(lowered, "!")); ok {
			return reply, true
		}
		return unknownCommandReply, true

	default:
		return unknownCommandReply, true
	}
}
