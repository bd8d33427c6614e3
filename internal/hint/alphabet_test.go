package hint

import (
	"reflect"
	"testing"
)

func abcd() Alphabet { return Alphabet{name: "abcd", letters: splitLetters("abcd")} }

func TestMakeHintsKnownSequences(t *testing.T) {
	cases := []struct {
		letters string
		n       int
		want    []string
	}{
		{"abcd", 3, []string{"a", "b", "c"}},
		{"abcd", 6, []string{"a", "b", "c", "da", "db", "dc"}},
		{"abcd", 8, []string{"a", "b", "ca", "cb", "da", "db", "dc", "dd"}},
		{"abcd", 13, []string{"a", "ba", "bb", "bc", "bd", "ca", "cb", "cc", "cd", "da", "db", "dc", "dd"}},
		{"ab", 4, []string{"aa", "ab", "ba", "bb"}},
	}

	for _, c := range cases {
		a := Alphabet{name: "t", letters: splitLetters(c.letters)}
		got := MakeHints(a, c.n)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("MakeHints(%q, %d) = %v, want %v", c.letters, c.n, got, c.want)
		}
	}
}

func TestMakeHintsNoHintIsPrefixOfAnother(t *testing.T) {
	a := abcd()
	for n := 1; n <= 20; n++ {
		hints := MakeHints(a, n)
		if len(hints) != n {
			t.Fatalf("n=%d: got %d hints, want %d", n, len(hints), n)
		}
		for i, h := range hints {
			if h == "" {
				continue
			}
			for j, other := range hints {
				if i == j || other == "" || len(other) <= len(h) {
					continue
				}
				if other[:len(h)] == h {
					t.Errorf("n=%d: hint %q is a prefix of %q", n, h, other)
				}
			}
		}
	}
}

func TestMakeHintsSingleLetterFallsBackToLongest(t *testing.T) {
	a := Alphabet{name: "solo", letters: splitLetters("a")}
	hints := MakeHints(a, 2)
	if len(hints) != 2 {
		t.Fatalf("got %d hints, want 2", len(hints))
	}
	for _, h := range hints {
		for _, r := range h {
			if r == 'n' || r == 'N' || r == 'y' || r == 'Y' {
				t.Errorf("hint %q uses a reserved navigation letter", h)
			}
		}
	}
}

func TestMakeHintsPadsWhenExhausted(t *testing.T) {
	longest, err := ParseAlphabet("longest")
	if err != nil {
		t.Fatal(err)
	}
	n := len(longest.letters)*len(longest.letters) + 5
	hints := MakeHints(longest, n)
	if len(hints) != n {
		t.Fatalf("got %d hints, want %d", len(hints), n)
	}
	empties := 0
	for _, h := range hints {
		if h == "" {
			empties++
		}
	}
	if empties == 0 {
		t.Error("expected at least one padded empty hint")
	}
}

func TestParseAlphabetUnknown(t *testing.T) {
	_, err := ParseAlphabet("not-a-real-layout")
	if err != ErrUnknownAlphabet {
		t.Fatalf("got %v, want ErrUnknownAlphabet", err)
	}
}

func TestCatalogNeverReservesNavigationLetters(t *testing.T) {
	for _, e := range catalog {
		for _, r := range e.letters {
			if r == 'n' || r == 'N' || r == 'y' || r == 'Y' {
				t.Errorf("alphabet %q contains reserved letter %q", e.name, r)
			}
		}
	}
}
