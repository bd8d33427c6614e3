package input

import (
	"testing"

	"github.com/mirrorfall/snag/internal/hint"
)

func buildTwoURLModel(t *testing.T) *hint.Model {
	t.Helper()
	lines := []string{"see https://a.example and https://b.example today"}
	m, err := hint.BuildModel(lines, "abcd", []string{"url"}, nil, false, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(m.Spans))
	}
	return m
}

// Two URLs get the single-letter hints "a" and "b". Typing the first
// hint uppercase selects the first URL with the uppercase modifier set
// and the default destination untouched.
func TestStateSelectWithUppercase(t *testing.T) {
	m := buildTwoURLModel(t)
	if m.Spans[0].Hint != "a" {
		t.Fatalf("first hint = %q, want a", m.Spans[0].Hint)
	}
	s := New(m, false, hint.DestinationTmux)

	out := s.Handle(Key{Kind: KeyRune, Rune: 'A'})
	if out.Kind != Selected {
		t.Fatalf("Kind = %v, want Selected", out.Kind)
	}
	if out.Selection.Text != m.Spans[0].Text {
		t.Errorf("selected text = %q, want %q", out.Selection.Text, m.Spans[0].Text)
	}
	if !out.Selection.Uppercased {
		t.Error("expected Uppercased to be set after an uppercase hint letter")
	}
	if out.Selection.OutputDestination != hint.DestinationTmux {
		t.Errorf("destination = %v, want default tmux", out.Selection.OutputDestination)
	}
}

// Typing a two-letter hint one key at a time stays in AwaitingKey until
// the trie reaches a leaf.
func TestStateTwoLetterHintEntry(t *testing.T) {
	lines := []string{
		"a 1.1.1.1 b 2.2.2.2 c 3.3.3.3 d 4.4.4.4 e 5.5.5.5 f 6.6.6.6",
	}
	m, err := hint.BuildModel(lines, "abcd", []string{"ipv4"}, nil, false, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Spans) != 6 {
		t.Fatalf("got %d spans, want 6", len(m.Spans))
	}
	// abcd with n=6 yields a, b, c, da, db, dc.
	if m.Spans[3].Hint != "da" {
		t.Fatalf("fourth hint = %q, want da", m.Spans[3].Hint)
	}

	s := New(m, false, hint.DestinationTmux)
	out := s.Handle(Key{Kind: KeyRune, Rune: 'd'})
	if out.Kind != AwaitingKey {
		t.Fatalf("Kind after 'd' = %v, want AwaitingKey", out.Kind)
	}
	out = s.Handle(Key{Kind: KeyRune, Rune: 'a'})
	if out.Kind != Selected {
		t.Fatalf("Kind after 'da' = %v, want Selected", out.Kind)
	}
	if out.Selection.Text != "4.4.4.4" {
		t.Errorf("selected text = %q, want 4.4.4.4", out.Selection.Text)
	}
}

// A key outside every hint prefix exits without a selection.
func TestStateOffAlphabetKeyExits(t *testing.T) {
	m := buildTwoURLModel(t)
	s := New(m, false, hint.DestinationTmux)
	out := s.Handle(Key{Kind: KeyRune, Rune: 'z'})
	if out.Kind != Exiting {
		t.Fatalf("Kind = %v, want Exiting", out.Kind)
	}
}

func TestStateEscExits(t *testing.T) {
	m := buildTwoURLModel(t)
	s := New(m, false, hint.DestinationTmux)
	out := s.Handle(Key{Kind: KeyEsc})
	if out.Kind != Exiting {
		t.Errorf("Kind = %v, want Exiting", out.Kind)
	}
}

func TestStateSpaceTogglesDestination(t *testing.T) {
	m := buildTwoURLModel(t)
	s := New(m, false, hint.DestinationTmux)
	out := s.Handle(Key{Kind: KeySpace})
	if !out.DestinationToggled {
		t.Fatal("expected DestinationToggled")
	}
	s.ToggleDestination()
	if s.Destination() != hint.DestinationClipboard {
		t.Errorf("destination = %v, want clipboard", s.Destination())
	}
}

func TestStateFocusWrapAround(t *testing.T) {
	m := buildTwoURLModel(t)
	s := New(m, true, hint.DestinationTmux)
	if s.FocusIndex() != 0 {
		t.Fatalf("initial focus = %d, want 0", s.FocusIndex())
	}
	out := s.Handle(Key{Kind: KeyUp})
	if !out.Focus.Moved || out.Focus.NewIndex != 1 {
		t.Errorf("wrap-around prev from 0 = %+v, want move to 1", out.Focus)
	}
}

func TestStateFocusNoWrapClampsAtStart(t *testing.T) {
	m := buildTwoURLModel(t)
	s := New(m, false, hint.DestinationTmux)
	out := s.Handle(Key{Kind: KeyUp})
	if out.Focus.Moved {
		t.Errorf("expected no movement at left boundary without wrap-around, got %+v", out.Focus)
	}
}

func TestStateReverseSwapsNAndShiftN(t *testing.T) {
	lines := []string{"see https://a.example and https://b.example today"}
	m, err := hint.BuildModel(lines, "abcd", []string{"url"}, nil, false, true, false)
	if err != nil {
		t.Fatal(err)
	}
	s := New(m, false, hint.DestinationTmux)
	start := s.FocusIndex()
	out := s.Handle(Key{Kind: KeyRune, Rune: 'n'})
	// reverse=true means 'n' behaves like the "prev" direction.
	if out.Focus.NewIndex == start && len(m.Spans) > 1 {
		t.Errorf("expected 'n' to move focus under reverse mode")
	}
}

func TestStateEnterSelectsFocused(t *testing.T) {
	m := buildTwoURLModel(t)
	s := New(m, false, hint.DestinationTmux)
	out := s.Handle(Key{Kind: KeyEnter})
	if out.Kind != Selected {
		t.Fatalf("Kind = %v, want Selected", out.Kind)
	}
	if out.Selection.Text != m.Spans[0].Text {
		t.Errorf("Text = %q, want %q", out.Selection.Text, m.Spans[0].Text)
	}
	if out.Selection.Uppercased {
		t.Error("Enter should not set Uppercased")
	}
}
