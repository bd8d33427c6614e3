package input

import "github.com/mirrorfall/snag/internal/hint"

// OutcomeKind is the result of handling one keypress: stay in
// AwaitingKey, Exiting with no selection, or Selected with a final
// Selection.
type OutcomeKind int

const (
	AwaitingKey OutcomeKind = iota
	Exiting
	Selected
)

// FocusChange describes how focus moved as a result of a key, so the
// caller can decide between diff-repaint and full-repaint.
type FocusChange struct {
	Moved    bool
	OldIndex int
	NewIndex int
}

// Outcome is everything the caller needs to react to one handled key.
// DestinationToggled is set when Space was pressed, so the caller can
// notify the host multiplexer.
type Outcome struct {
	Kind                OutcomeKind
	Selection           hint.Selection
	Focus               FocusChange
	DestinationToggled  bool
	ScrollPages         int // positive = down, negative = up; 0 = none
}

// State holds the mutable state of one present() invocation: the focus
// index, the in-progress hint entry (as a trie cursor), and the current
// output destination.
type State struct {
	model       *hint.Model
	cursor      hint.TrieCursor
	uppercased  bool
	focusIndex  int
	wrapAround  bool
	destination hint.OutputDestination
	reverse     bool
}

// New initializes picker state: focus starts on the last span when
// reverse, else the first.
func New(model *hint.Model, wrapAround bool, defaultDestination hint.OutputDestination) *State {
	focus := 0
	if model.Reverse && len(model.Spans) > 0 {
		focus = len(model.Spans) - 1
	}
	return &State{
		model:       model,
		cursor:      model.Root(),
		focusIndex:  focus,
		wrapAround:  wrapAround,
		destination: defaultDestination,
		reverse:     model.Reverse,
	}
}

// FocusIndex returns the currently focused span's index.
func (s *State) FocusIndex() int { return s.focusIndex }

// Destination returns the current output destination.
func (s *State) Destination() hint.OutputDestination { return s.destination }

// Handle applies one decoded key to the state machine.
func (s *State) Handle(k Key) Outcome {
	switch k.Kind {
	case KeyEsc:
		return Outcome{Kind: Exiting}

	case KeyUp, KeyLeft:
		return s.moveFocus(s.prevIndex())
	case KeyDown, KeyRight:
		return s.moveFocus(s.nextIndex())

	case KeyEnter:
		return s.selectFocused(false)
	case KeySpace:
		return Outcome{Kind: AwaitingKey, DestinationToggled: true}

	case KeyPgUp:
		return Outcome{Kind: AwaitingKey, ScrollPages: -1}
	case KeyPgDn:
		return Outcome{Kind: AwaitingKey, ScrollPages: 1}

	case KeyRune:
		return s.handleRune(k.Rune)

	default:
		return Outcome{Kind: Exiting}
	}
}

func (s *State) handleRune(r rune) Outcome {
	switch r {
	case 'n':
		return s.navigateNN(false)
	case 'N':
		return s.navigateNN(true)
	case 'y':
		return s.selectFocused(false)
	case 'Y':
		return s.selectFocused(true)
	}

	lower := r
	upper := false
	if r >= 'A' && r <= 'Z' {
		lower = r - 'A' + 'a'
		upper = true
	}

	if upper {
		s.uppercased = true
	}

	next, step, span := s.cursor.Step(lower)
	switch step {
	case hint.TrieNoMatch:
		return Outcome{Kind: Exiting}
	case hint.TrieLeaf:
		sel := hint.Selection{Text: span.Text, Uppercased: s.uppercased, OutputDestination: s.destination}
		return Outcome{Kind: Selected, Selection: sel}
	default:
		s.cursor = next
		return Outcome{Kind: AwaitingKey}
	}
}

// navigateNN moves focus next/prev for `n`/`N`, with the two directions
// swapped when the model was built in reverse mode.
func (s *State) navigateNN(isShiftN bool) Outcome {
	forward := !isShiftN
	if s.reverse {
		forward = !forward
	}
	if forward {
		return s.moveFocus(s.nextIndex())
	}
	return s.moveFocus(s.prevIndex())
}

func (s *State) prevIndex() int {
	n := len(s.model.Spans)
	if n == 0 {
		return s.focusIndex
	}
	if s.wrapAround {
		if s.focusIndex == 0 {
			return n - 1
		}
		return s.focusIndex - 1
	}
	if s.focusIndex > 0 {
		return s.focusIndex - 1
	}
	return s.focusIndex
}

func (s *State) nextIndex() int {
	n := len(s.model.Spans)
	if n == 0 {
		return s.focusIndex
	}
	if s.wrapAround {
		if s.focusIndex == n-1 {
			return 0
		}
		return s.focusIndex + 1
	}
	if s.focusIndex < n-1 {
		return s.focusIndex + 1
	}
	return s.focusIndex
}

func (s *State) moveFocus(newIndex int) Outcome {
	old := s.focusIndex
	s.focusIndex = newIndex
	return Outcome{
		Kind:  AwaitingKey,
		Focus: FocusChange{Moved: old != newIndex, OldIndex: old, NewIndex: newIndex},
	}
}

func (s *State) selectFocused(uppercased bool) Outcome {
	span := s.model.Spans[s.focusIndex]
	sel := hint.Selection{Text: span.Text, Uppercased: uppercased, OutputDestination: s.destination}
	return Outcome{Kind: Selected, Selection: sel}
}

// ToggleDestination flips the output destination; called by present()
// when Outcome.DestinationToggled is set.
func (s *State) ToggleDestination() {
	s.destination = s.destination.Toggle()
}
