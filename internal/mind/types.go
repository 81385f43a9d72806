package mind

import "time"

// BotName is the plain-text name users address the bot by.
const BotName = "abg tutor"

// PrivilegedUserID always gets the flirty tone (unless annoyance is
// forced). Every call site must go through IsPrivileged.
const PrivilegedUserID = "561352123548172288"

// Tone is the active persona variant for one reply.
type Tone int

const (
	ToneBestie Tone = iota
	ToneFlirty
	ToneAnnoyed
)

func (t Tone) String() string {
	switch t {
	case ToneFlirty:
		return "flirty"
	case ToneAnnoyed:
		return "annoyed"
	default:
		return "bestie"
	}
}

// Mode is the session's base persona, set only via the mode command.
type Mode int

const (
	ModeBestie Mode = iota
	ModeFlirty
)

// StressLevel is remembered across sessions. Default is medium.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// UserSession tracks one user's ongoing conversation state.
type UserSession struct {
	Mode         Mode
	TeachingMode bool
	Active       bool
	LastActivity time.Time
}

// Turn is one entry in the rolling conversation history.
type Turn struct {
	Role    string // "user" | "assistant"
	Content string
}

// UserMemory holds facts that outlive a single session.
type UserMemory struct {
	Subjects       []string // insertion order, de-duplicated
	Stress         StressLevel
	Procrastinates bool
	Crams          bool
}

const (
	// SessionIdleTimeout is how long a session may sit idle before the
	// next access resets it.
	SessionIdleTimeout = 30 * time.Minute

	// History window caps in turns (user and assistant each count).
	CasualHistoryCap   = 8
	TeachingHistoryCap = 16

	// FlirtyToneChance gates the rare tone per message for users who
	// opted into flirty mode. Single source of truth; do not re-derive.
	FlirtyToneChance = 0.04

	// Post-processing probabilities.
	NicknameChance = 0.25
	EmojiChance    = 0.4

	// GenerateTimeout is the hard wall-clock limit for one backend call.
	GenerateTimeout = 20 * time.Second

	// Output length bounds per session mode.
	CasualMaxTokens   = 150
	TeachingMaxTokens = 400

	// InsultSentimentThreshold: insult keywords only force the annoyed
	// tone when sentiment is at least this negative.
	InsultSentimentThreshold = -0.5
)
