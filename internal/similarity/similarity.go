// Package similarity provides the edit-distance text comparison used for
// pronunciation scoring.
package similarity

import "strings"

// Normalize lowercases text and strips punctuation, keeping spaces and
// apostrophes so phrases like "thank you" and "don't" compare cleanly.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\'':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Levenshtein returns the edit distance between two strings, counting
// insertions, deletions and substitutions as one edit each.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(br); i++ {
		curr[0] = i
		for j := 1; j <= len(ar); j++ {
			if br[i-1] == ar[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1]+1, curr[j-1]+1, prev[j]+1)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(ar)]
}

// Score returns a 0..1 similarity between target and input after
// normalization: (longer - distance) / longer. Two empty strings score 1.
func Score(target, input string) float64 {
	a := Normalize(target)
	b := Normalize(input)

	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1.0
	}

	distance := Levenshtein(a, b)
	return float64(longer-distance) / float64(longer)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
