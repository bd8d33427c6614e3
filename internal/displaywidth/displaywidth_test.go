package displaywidth

import "testing"

func TestRuneTabExpansion(t *testing.T) {
	if got := Rune('\t', 7); got != 1 {
		t.Errorf("tab at col 7 width = %d, want 1", got)
	}
	if got := Rune('\t', 0); got != 8 {
		t.Errorf("tab at col 0 width = %d, want 8", got)
	}
}

func TestRuneWideCJK(t *testing.T) {
	if got := Rune('世', 0); got != 2 {
		t.Errorf("CJK rune width = %d, want 2", got)
	}
}

func TestStringExpandsTabsSequentially(t *testing.T) {
	// "a" (1) + tab (7, to reach col 8) + "b" (1) = 9
	if got := String("a\tb"); got != 9 {
		t.Errorf("String(\"a\\tb\") = %d, want 9", got)
	}
}

func TestRows(t *testing.T) {
	cases := []struct {
		w, termWidth, want int
	}{
		{0, 80, 1},
		{1, 80, 1},
		{80, 80, 1},
		{81, 80, 2},
		{160, 80, 2},
		{161, 80, 3},
	}
	for _, c := range cases {
		if got := Rows(c.w, c.termWidth); got != c.want {
			t.Errorf("Rows(%d, %d) = %d, want %d", c.w, c.termWidth, got, c.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	s := "abc/var/log"
	if got := Prefix(s, 3); got != 3 {
		t.Errorf("Prefix(3) = %d, want 3", got)
	}
}
