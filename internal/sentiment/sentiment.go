// Package sentiment scores message polarity. The router only needs the
// Scorer contract; the default implementation is a small word lexicon.
package sentiment

import "strings"

// Scorer maps text to a polarity score in [-1, 1]. Implementations must
// treat unscorable input as neutral (0), never fail.
type Scorer interface {
	Score(text string) float64
}

var positiveWords = map[string]bool{
	"good": true, "great": true, "awesome": true, "amazing": true,
	"nice": true, "cool": true, "love": true, "like": true, "thanks": true,
	"thank": true, "happy": true, "fun": true, "best": true, "proud": true,
	"excited": true, "confident": true, "ready": true, "helpful": true,
	"sweet": true, "glad": true, "fine": true, "okay": true, "w": true,
	"goated": true, "fire": true, "clutch": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "hate": true,
	"stupid": true, "dumb": true, "useless": true, "trash": true,
	"garbage": true, "suck": true, "sucks": true, "worst": true,
	"annoying": true, "angry": true, "mad": true, "stressed": true,
	"overwhelmed": true, "failed": true, "fail": true, "ugly": true,
	"boring": true, "lame": true, "pathetic": true, "worthless": true,
}

// LexiconScorer counts polar words and normalizes by how many were
// found, so a short insult scores as strongly as a long rant.
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer { return &LexiconScorer{} }

func (s *LexiconScorer) Score(text string) float64 {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return 0
	}

	var pos, neg int
	for _, f := range fields {
		w := strings.Trim(f, ".,!?;:'\"()")
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}
