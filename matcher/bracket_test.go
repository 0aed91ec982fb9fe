package matcher_test

import (
	"testing"

	"github.com/globkit/fastglob/matcher"
)

func TestBracketRanges(t *testing.T) {
	cases := []struct {
		pattern, candidate string
		want               bool
	}{
		{"[a-c]", "b", true},
		{"[a-c]", "d", false},
		{"[0-9a-f]", "7", true},
		{"[0-9a-f]", "g", false},
	}

	for _, c := range cases {
		if got := matcher.Match(c.pattern, c.candidate, matcher.Flags{}); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.candidate, got, c.want)
		}
	}
}

func TestBracketPosixClass(t *testing.T) {
	cases := []struct {
		pattern, candidate string
		want               bool
	}{
		{"[[:digit:]]", "5", true},
		{"[[:digit:]]", "x", false},
		{"[[:alpha:]]", "x", true},
		{"[[:upper:]]", "X", true},
		{"[[:upper:]]", "x", false},
	}

	for _, c := range cases {
		if got := matcher.Match(c.pattern, c.candidate, matcher.Flags{}); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.candidate, got, c.want)
		}
	}
}

func TestBracketUnknownClassDegradesToLiteral(t *testing.T) {
	if matcher.Match("[[:bogus:]]", "x", matcher.Flags{}) {
		t.Fatal("expected an unknown POSIX class to fail to match (malformed, degraded to literal)")
	}
}

func TestBracketEscapedMember(t *testing.T) {
	if !matcher.Match(`[\]]`, "]", matcher.Flags{}) {
		t.Fatal("expected an escaped ']' inside a bracket expression to match a literal ']'")
	}
}

func TestBracketUnterminatedDegradesToLiteral(t *testing.T) {
	if !matcher.Match("[abc", "[abc", matcher.Flags{}) {
		t.Fatal("expected an unterminated bracket to degrade to a literal '['")
	}
}

func TestMatchBracketProbeAndAt(t *testing.T) {
	pattern := []byte("[0-9]")

	npi, _, valid := matcher.MatchBracketProbe(pattern, 0, matcher.Flags{})
	if !valid {
		t.Fatal("expected a valid bracket expression")
	}

	if npi != len(pattern) {
		t.Fatalf("expected npi %d, got %d", len(pattern), npi)
	}

	if !matcher.MatchBracketAt(pattern, []byte("7"), 0, 0, matcher.Flags{}) {
		t.Fatal("expected '7' to satisfy [0-9]")
	}

	if matcher.MatchBracketAt(pattern, []byte("x"), 0, 0, matcher.Flags{}) {
		t.Fatal("expected 'x' not to satisfy [0-9]")
	}
}

func TestBracketCaseFoldRange(t *testing.T) {
	if !matcher.Match("[a-z]", "M", matcher.Flags{CaseFold: true}) {
		t.Fatal("expected case-folded range to include the uppercase counterpart")
	}
}
