package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap_Score(t *testing.T) {
	scorer := NewOverlap()

	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, scorer.Score("joes diner", "joes diner"))
	})

	t.Run("empty strings score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, scorer.Score("", ""))
		assert.Equal(t, 0.0, scorer.Score("joes diner", ""))
	})

	t.Run("shared prefix scores high", func(t *testing.T) {
		score := scorer.Score("cotton patch cafe", "cotton patch cafe - wylie")
		assert.Greater(t, score, 0.5)
		assert.Less(t, score, 1.0)
	})

	t.Run("unrelated strings score low", func(t *testing.T) {
		score := scorer.Score("joes diner", "elm street grill")
		assert.Less(t, score, 0.2)
	})

	t.Run("below minimum length scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, scorer.Score("ab", "abcdef"))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t,
			scorer.Score("joes diner", "joes diner grill"),
			scorer.Score("joes diner grill", "joes diner"))
	})
}

func TestLevenshtein_Score(t *testing.T) {
	scorer := Levenshtein{}

	assert.Equal(t, 1.0, scorer.Score("joes diner", "joes diner"))
	assert.Equal(t, 0.0, scorer.Score("", ""))

	score := scorer.Score("joes diner", "joes dinner")
	assert.Greater(t, score, 0.8)

	// Bounded to [0, 1] even for wildly different lengths.
	assert.GreaterOrEqual(t, scorer.Score("a", "completely different"), 0.0)
}

func TestNew_SelectsScorer(t *testing.T) {
	assert.IsType(t, &Overlap{}, New(""))
	assert.IsType(t, &Overlap{}, New("overlap"))
	assert.IsType(t, Levenshtein{}, New("levenshtein"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 82, Percent(0.824))
	assert.Equal(t, 100, Percent(1))
	assert.Equal(t, 0, Percent(0))
}
