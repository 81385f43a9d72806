package mind

import (
	"math/rand"
	"strings"
)

// Reply decoration: occasional nickname and emoji injection so backend
// replies match the persona's texture. Decoration is idempotent; a
// decorated reply passed in again comes back unchanged.

var bestieNicknames = []string{"bestie", "bro", "dude"}

var flirtyNicknames = []string{"cutie", "babe", "smartie"}

var bestieEmojis = []string{"😭", "💀", "😌", "💪", "🔥", "✨"}

var flirtyEmojis = []string{"💕", "💖", "💞", "🩷", "🥺", "😳"}

// Decorator injects persona texture into generated replies.
type Decorator struct {
	randFloat func() float64
	randInt   func(n int) int
}

func NewDecorator() *Decorator {
	return &Decorator{randFloat: rand.Float64, randInt: rand.Intn}
}

// Decorate applies nickname and emoji injection for the tone. Annoyed
// replies pass through untouched.
func (d *Decorator) Decorate(reply string, tone Tone) string {
	if tone == ToneAnnoyed || strings.TrimSpace(reply) == "" {
		return reply
	}

	nicknames := bestieNicknames
	emojis := bestieEmojis
	if tone == ToneFlirty {
		nicknames = flirtyNicknames
		emojis = flirtyEmojis
	}

	if !startsWithNickname(reply) && d.randFloat() < NicknameChance {
		reply = nicknames[d.randInt(len(nicknames))] + ", " + reply
	}
	if !containsEmoji(reply) && d.randFloat() < EmojiChance {
		reply = reply + " " + emojis[d.randInt(len(emojis))]
	}
	return reply
}

func startsWithNickname(reply string) bool {
	lowered := strings.ToLower(reply)
	for _, n := range append(append([]string{}, bestieNicknames...), flirtyNicknames...) {
		if strings.HasPrefix(lowered, n+",") || strings.HasPrefix(lowered, n+" ") {
			return true
		}
	}
	return false
}

// containsEmoji covers the pictograph, symbol, and dingbat ranges the
// reply pools draw from.
func containsEmoji(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF:
			return true
		case r >= 0x2600 && r <= 0x27BF:
			return true
		case r >= 0x1F000 && r <= 0x1F2FF:
			return true
		case r == 0x2764: // ❤
			return true
		}
	}
	return false
}
