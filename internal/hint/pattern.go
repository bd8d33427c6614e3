package hint

import "regexp"

// NamedPattern pairs a catalog name with its compiled regex. Every pattern
// either matches the whole span or exposes it via capture group 1; the
// extractor in span.go prefers capture group 1 when present.
type NamedPattern struct {
	Name  string
	regex *regexp.Regexp
}

// excludeAnsiColorsName names the single entry of excludePatterns, the
// exclusion table: it advances the scan past ANSI SGR sequences without
// ever emitting a Span for them.
const excludeAnsiColorsName = "ansi_colors"

var excludePatterns = []NamedPattern{
	{excludeAnsiColorsName, regexp.MustCompile("[[:cntrl:]]\\[([0-9]{1,2};)?([0-9]{1,2})?m")},
}

// catalogPatterns is the fixed, priority-ordered battery of built-in regexes.
// The email pattern is adapted from https://www.regular-expressions.info/email.html.
var catalogPatterns = []struct {
	name    string
	pattern string
}{
	{"markdown-url", `\[[^]]*\]\(([^)]+)\)`},
	{"url", `((https?://|git@|git://|ssh://|ftp://|file:///)[^ ()\[\]{}]+)`},
	{"email", `\b([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})\b`},
	{"diff-a", `--- a/([^ ]+)`},
	{"diff-b", `\+\+\+ b/([^ ]+)`},
	{"docker", `sha256:([0-9a-f]{64})`},
	{"path", `(([.\w\-@~]+)?(/[.\w\-@]+)+)`},
	{"hexcolor", `(#[0-9a-fA-F]{6})`},
	{"uuid", `([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})`},
	{"version", `(v?\d{1,4}\.\d{1,4}(\.\d{1,4})?(-(alpha|beta|rc)(\.\d)?)?)[^.0-9s]`},
	{"ipfs", `(Qm[0-9a-zA-Z]{44})`},
	{"sha", `([0-9a-fA-F]{7,40})`},
	{"ipv4", `(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})`},
	{"ipv6", `([a-fA-F0-9:]+:+[a-fA-F0-9:]+[%\w\d]+)`},
	{"pointer-address", `(0x[0-9a-fA-F]+)`},
	{"datetime", `(\d{4}-?\d{2}-?\d{2}([ T]\d{2}:\d{2}:\d{2}(\.\d{3,9})?)?)`},
	{"quoted-single", `'([^']+)'`},
	{"quoted-double", `"([^"]+)"`},
	{"quoted-tick", "`([^`]+)`"},
	{"digits", `([0-9]{4,})`},
}

var allPatterns []NamedPattern

func init() {
	allPatterns = make([]NamedPattern, len(catalogPatterns))
	for i, p := range catalogPatterns {
		allPatterns[i] = NamedPattern{Name: p.name, regex: regexp.MustCompile(p.pattern)}
	}
}

// AllPatterns returns the full built-in catalog, in priority order.
func AllPatterns() []NamedPattern {
	out := make([]NamedPattern, len(allPatterns))
	copy(out, allPatterns)
	return out
}

// ParsePatternName resolves a catalog entry by name.
func ParsePatternName(name string) (NamedPattern, error) {
	for _, p := range allPatterns {
		if p.Name == name {
			return p, nil
		}
	}
	return NamedPattern{}, ErrUnknownPatternName
}

// CompileCustomPattern compiles a user-supplied regex. The expression
// must contain a capture group naming the text to hint.
func CompileCustomPattern(src string) (NamedPattern, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return NamedPattern{}, ErrInvalidCustomRegexp
	}
	if re.NumSubexp() < 1 {
		return NamedPattern{}, ErrCustomRegexpNoCaptureGrp
	}
	return NamedPattern{Name: "custom", regex: re}, nil
}
