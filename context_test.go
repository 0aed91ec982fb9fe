package glob_test

import (
	"testing"

	glob "github.com/globkit/fastglob"
)

func TestMatchLiteral(t *testing.T) {
	if !glob.Match("foo.txt", "foo.txt", glob.Flags{}) {
		t.Fatal("expected literal match")
	}

	if glob.Match("foo.txt", "foo.txx", glob.Flags{}) {
		t.Fatal("expected literal mismatch")
	}
}

func TestMatchCaseFold(t *testing.T) {
	if !glob.Match("Foo.TXT", "foo.txt", glob.Flags{CaseFold: true}) {
		t.Fatal("expected case-folded match")
	}

	if glob.Match("Foo.TXT", "foo.txt", glob.Flags{}) {
		t.Fatal("expected case-sensitive mismatch")
	}
}

func TestMatchWildcardSuffix(t *testing.T) {
	if !glob.Match("*.go", "main.go", glob.Flags{}) {
		t.Fatal("expected suffix match")
	}

	if glob.Match("*.go", "main.py", glob.Flags{}) {
		t.Fatal("expected suffix mismatch")
	}
}

func TestMatchBracketTemplate(t *testing.T) {
	cases := []struct {
		pattern, candidate string
		want               bool
	}{
		{"file[0-9].txt", "file5.txt", true},
		{"file[0-9].txt", "fileA.txt", false},
		{"file[!0-9].txt", "fileA.txt", true},
	}

	for _, c := range cases {
		if got := glob.Match(c.pattern, c.candidate, glob.Flags{}); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.candidate, got, c.want)
		}
	}
}

func TestMatchBraceAlternatives(t *testing.T) {
	cases := []struct {
		candidate string
		want      bool
	}{
		{"app.js", true},
		{"app.ts", true},
		{"app.go", false},
	}

	for _, c := range cases {
		if got := glob.Match("app.{js,ts}", c.candidate, glob.Flags{Brace: true}); got != c.want {
			t.Errorf("Match(app.{js,ts}, %q) = %v, want %v", c.candidate, got, c.want)
		}
	}
}

func TestMatchBraceSuffixBank(t *testing.T) {
	for _, candidate := range []string{"a.js", "a.ts", "a.jsx"} {
		if !glob.Match("*.{js,ts,jsx}", candidate, glob.Flags{Brace: true}) {
			t.Errorf("expected %q to match *.{js,ts,jsx}", candidate)
		}
	}

	if glob.Match("*.{js,ts,jsx}", "a.go", glob.Flags{Brace: true}) {
		t.Fatal("expected a.go not to match")
	}
}

func TestMatchBraceWithoutFlagLeavesLiteral(t *testing.T) {
	if glob.Match("app.{js,ts}", "app.js", glob.Flags{}) {
		t.Fatal("expected braces to be treated literally without Brace flag")
	}

	if !glob.Match("app.{js,ts}", "app.{js,ts}", glob.Flags{}) {
		t.Fatal("expected literal brace text to match itself")
	}
}

func TestMatchDanglingTrailingBackslash(t *testing.T) {
	// A trailing unescaped backslash is a dangling escape: matcher.Match
	// treats it as a zero-width token, so compile/match must agree with
	// the uncompiled matcher rather than imposing a required-last-byte
	// check the general matcher never enforces.
	if !glob.Match(`a\`, "a", glob.Flags{}) {
		t.Fatal("expected a dangling trailing backslash to match with the backslash consuming nothing")
	}

	if glob.Compile(`a\`, glob.Flags{}).Match("a") != glob.Match(`a\`, "a", glob.Flags{}) {
		t.Fatal("expected Compile(...).Match to agree with the uncompiled Match for a dangling trailing backslash")
	}
}

func TestCompileReusableAcrossCandidates(t *testing.T) {
	ctx := glob.Compile("*.log", glob.Flags{})

	if !ctx.Match("debug.log") {
		t.Fatal("expected debug.log to match")
	}

	if ctx.Match("debug.txt") {
		t.Fatal("expected debug.txt not to match")
	}

	if string(ctx.Pattern()) != "*.log" {
		t.Fatalf("unexpected Pattern(): %q", ctx.Pattern())
	}
}

func TestMatchGlobSimpleDoublestar(t *testing.T) {
	if !glob.MatchGlobSimple("**/foo.go", "a/b/foo.go", true) {
		t.Fatal("expected ** to span directories")
	}

	if glob.MatchGlobSimple("**/foo.go", "a/b/foo.go", false) {
		t.Fatal("expected ** not to cross directories when doublestar is off")
	}
}

func TestMatchExtglob(t *testing.T) {
	if !glob.Match("file.+(txt|log)", "file.txt", glob.Flags{ExtGlob: true}) {
		t.Fatal("expected extglob alternation to match")
	}

	if glob.Match("file.+(txt|log)", "file.go", glob.Flags{ExtGlob: true}) {
		t.Fatal("expected extglob alternation mismatch")
	}
}
