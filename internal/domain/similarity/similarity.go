// Package similarity provides advisory text-similarity scorers.
//
// Scores are display hints for the user ("82% similar") when no
// authoritative match signal exists. They never decide a match on their
// own. The scoring formula is a product policy, kept behind the Scorer
// interface so it can change without touching the comparators.
package similarity

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a 0-1 similarity between two canonicalized strings.
type Scorer interface {
	Score(a, b string) float64
}

// New returns the scorer for the given config name. Unknown names fall
// back to the default overlap scorer.
func New(kind string) Scorer {
	if kind == "levenshtein" {
		return Levenshtein{}
	}
	return NewOverlap()
}

// Percent renders a score as a rounded whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// Overlap scores by contiguous substring overlap: the count of distinct
// substrings of MinLength shared by both strings, relative to the number
// of such substrings in the longer string.
type Overlap struct {
	MinLength int
}

// NewOverlap returns the default overlap scorer (substrings of length 3).
func NewOverlap() *Overlap {
	return &Overlap{MinLength: 3}
}

// Score implements Scorer.
func (o *Overlap) Score(a, b string) float64 {
	n := o.MinLength
	if n <= 0 {
		n = 3
	}
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) < n {
		return 0
	}
	grams := make(map[string]bool, len(shorter))
	for i := 0; i+n <= len(shorter); i++ {
		grams[string(shorter[i:i+n])] = true
	}
	shared := 0
	seen := make(map[string]bool)
	for i := 0; i+n <= len(longer); i++ {
		g := string(longer[i : i+n])
		if grams[g] && !seen[g] {
			seen[g] = true
			shared++
		}
	}
	return float64(shared) / float64(len(longer)-n+1)
}

// Levenshtein scores by edit-distance ratio: 1 - distance/len(longer).
type Levenshtein struct{}

// Score implements Scorer.
func (Levenshtein) Score(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	s := 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
	if s < 0 {
		return 0
	}
	return s
}
