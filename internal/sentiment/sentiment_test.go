package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePolarity(t *testing.T) {
	s := NewLexiconScorer()

	assert.Equal(t, 1.0, s.Score("this is great, thanks!"))
	assert.Equal(t, -1.0, s.Score("you are stupid and useless"))
	assert.Equal(t, 0.0, s.Score("i have a test tomorrow"))
	assert.Equal(t, 0.0, s.Score(""))
}

func TestScoreMixed(t *testing.T) {
	s := NewLexiconScorer()
	// one positive, one negative word
	assert.Equal(t, 0.0, s.Score("the class is good but the homework sucks"))
}

func TestScoreStripsPunctuation(t *testing.T) {
	s := NewLexiconScorer()
	assert.Equal(t, -1.0, s.Score("that was terrible!!!"))
}

func TestScoreRange(t *testing.T) {
	s := NewLexiconScorer()
	for _, text := range []string{
		"awesome amazing great love it",
		"hate hate hate trash garbage",
		"completely neutral sentence here",
	} {
		v := s.Score(text)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
