package hint

// Model owns everything the view controller needs to render and navigate
// spans: the input lines, the ordered spans with their hints, and the hint
// lookup trie. It is built once per invocation and is immutable thereafter.
type Model struct {
	Lines   []string
	Spans   []Span
	Reverse bool

	trie *trieNode
}

// BuildModel scans lines for pattern matches, assigns hints, and builds
// the lookup trie.
func BuildModel(
	lines []string,
	alphabetName string,
	namedPatternNames []string,
	customRegexes []string,
	useAllPatterns bool,
	reverse bool,
	uniqueHint bool,
) (*Model, error) {
	alphabet, err := ParseAlphabet(alphabetName)
	if err != nil {
		return nil, err
	}

	named := make([]NamedPattern, 0, len(namedPatternNames))
	for _, n := range namedPatternNames {
		p, err := ParsePatternName(n)
		if err != nil {
			return nil, err
		}
		named = append(named, p)
	}

	custom := make([]NamedPattern, 0, len(customRegexes))
	for _, src := range customRegexes {
		p, err := CompileCustomPattern(src)
		if err != nil {
			return nil, err
		}
		custom = append(custom, p)
	}

	raw := buildSpans(lines, named, custom, useAllPatterns)
	spans := assignHints(raw, alphabet, reverse, uniqueHint)

	return &Model{
		Lines:   lines,
		Spans:   spans,
		Reverse: reverse,
		trie:    buildLookupTrie(spans),
	}, nil
}

// TrieCursor is an opaque position in the model's hint lookup trie, used by
// the input state machine to accumulate a typed hint one keypress at a
// time without that package needing to know the trie's internal shape.
type TrieCursor struct {
	model *Model
	node  *trieNode
}

// Root returns a cursor positioned at the trie root.
func (m *Model) Root() TrieCursor {
	return TrieCursor{model: m, node: m.trie}
}

// Step descends the cursor by one typed character, returning the cursor to
// keep for the next keypress, the step classification, and — on TrieLeaf —
// the resolved span.
func (c TrieCursor) Step(r rune) (TrieCursor, TrieStep, *Span) {
	next, step := c.node.descend(r)
	if step == TrieNoMatch {
		return TrieCursor{}, TrieNoMatch, nil
	}
	if step == TrieLeaf {
		return TrieCursor{model: c.model, node: next}, TrieLeaf, &c.model.Spans[next.index]
	}
	return TrieCursor{model: c.model, node: next}, TrieInternal, nil
}

// Empty reports whether the model has no spans to select from.
func (m *Model) Empty() bool {
	return len(m.Spans) == 0
}
