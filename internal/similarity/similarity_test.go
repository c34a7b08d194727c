package similarity

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"cat", "cat", 0},
		{"cat", "dog", 3},
		{"kitten", "sitting", 3},
		{"hello", "hell", 1},
		{"", "abc", 3},
	}

	for _, c := range cases {
		if got := Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestScoreIdenticalAfterNormalization(t *testing.T) {
	if got := Score("Thank you!", "thank you"); got != 1.0 {
		t.Errorf("expected 1.0 for identical normalized strings, got %v", got)
	}
	if got := Score("Don't", "don't"); got != 1.0 {
		t.Errorf("expected 1.0 for apostrophe word, got %v", got)
	}
}

func TestScoreDisjointEqualLength(t *testing.T) {
	// Equal-length strings with no shared characters need one substitution
	// per position, so the score bottoms out at zero.
	if got := Score("cat", "dog"); got != 0.0 {
		t.Errorf("expected 0.0 for disjoint equal-length strings, got %v", got)
	}
}

func TestScoreBothEmpty(t *testing.T) {
	if got := Score("", ""); got != 1.0 {
		t.Errorf("expected 1.0 for two empty strings, got %v", got)
	}
}

func TestScorePartialMatch(t *testing.T) {
	got := Score("hello", "hell")
	want := 0.8 // 1 deletion over 5 characters
	if got != want {
		t.Errorf("Score(hello, hell) = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello, World!", "hello world"},
		{"  Thank   you  ", "thank you"},
		{"don't", "don't"},
		{"(good)", "good"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
