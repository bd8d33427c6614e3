package hint

// RawSpan is a pattern match located in the buffer, before a hint has been
// assigned. Text borrows directly into the corresponding input line.
type RawSpan struct {
	X       int // byte column within the line
	Y       int // line index
	Pattern string
	Text    string
}

// Span augments a RawSpan with its assigned hint.
type Span struct {
	RawSpan
	Hint string
}

// buildSpans scans every line: repeatedly pick the earliest match across
// the effective regex list (exclude patterns, then custom patterns, then
// the catalog), advance past it, and emit a span unless the match was the
// ansi_colors exclusion. Picking the earliest match keeps spans
// non-overlapping; list order breaks ties, which is what gives custom
// patterns priority over the catalog.
func buildSpans(lines []string, named []NamedPattern, custom []NamedPattern, useAll bool) []RawSpan {
	effective := make([]NamedPattern, 0, len(excludePatterns)+len(custom)+len(named)+len(allPatterns))
	effective = append(effective, excludePatterns...)
	effective = append(effective, custom...)
	if useAll {
		effective = append(effective, allPatterns...)
	} else {
		effective = append(effective, named...)
	}

	var spans []RawSpan

	for y, line := range lines {
		chunk := line
		offset := 0

		for {
			bestIdx := -1
			var bestLoc []int

			for i, p := range effective {
				loc := p.regex.FindStringSubmatchIndex(chunk)
				if loc == nil {
					continue
				}
				if bestIdx == -1 || loc[0] < bestLoc[0] {
					bestIdx = i
					bestLoc = loc
				}
			}

			if bestIdx == -1 {
				break
			}

			p := effective[bestIdx]
			matchStart, matchEnd := bestLoc[0], bestLoc[1]

			subStart, subEnd := matchStart, matchEnd
			if len(bestLoc) >= 4 && bestLoc[2] != -1 {
				subStart, subEnd = bestLoc[2], bestLoc[3]
			}

			if p.Name != excludeAnsiColorsName {
				spans = append(spans, RawSpan{
					X:       offset + subStart,
					Y:       y,
					Pattern: p.Name,
					Text:    chunk[subStart:subEnd],
				})
			}

			chunk = chunk[matchEnd:]
			offset += matchEnd
		}
	}

	return spans
}

// assignHints gives every raw span a hint in scan order (optionally
// reversed so that the last match gets hint #0), with unique mode making
// spans that share identical text share a hint.
func assignHints(raw []RawSpan, alphabet Alphabet, reverse bool, unique bool) []Span {
	if reverse {
		raw = reversedRawSpans(raw)
	}

	hints := MakeHints(alphabet, len(raw))

	spans := make([]Span, len(raw))
	seen := make(map[string]string, len(raw))
	next := 0

	for i, r := range raw {
		var h string
		if unique {
			if existing, ok := seen[r.Text]; ok {
				h = existing
			} else {
				h = hints[next]
				next++
				seen[r.Text] = h
			}
		} else {
			h = hints[next]
			next++
		}
		spans[i] = Span{RawSpan: r, Hint: h}
	}

	if reverse {
		spans = reversedSpans(spans)
	}
	return spans
}

func reversedRawSpans(s []RawSpan) []RawSpan {
	out := make([]RawSpan, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func reversedSpans(s []Span) []Span {
	out := make([]Span, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
