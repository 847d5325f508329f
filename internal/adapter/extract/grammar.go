package extract

import (
	"regexp"
	"strings"
)

// DefaultModifiers are the keywords accepted in front of a block signature.
// Annotation tokens (@Name) are always accepted.
var DefaultModifiers = []string{"public", "private", "protected", "abstract", "final", "static", "synchronized"}

// reservedNames are identifiers that the signature shape also matches but
// that never introduce a named block: control statements, catch clauses and
// anonymous class instantiation.
var reservedNames = map[string]bool{
	"if":           true,
	"for":          true,
	"while":        true,
	"switch":       true,
	"catch":        true,
	"synchronized": true,
	"return":       true,
	"new":          true,
	"else":         true,
	"throw":        true,
}

var flushPattern = regexp.MustCompile(`^\s*(?:\}\s*)?$`)

// Grammar holds the two line patterns driving segmentation.
//
// A block-open line is optional modifiers or annotations, an optional
// generic parameter segment, an optional return type, then an identifier
// immediately followed by a parameter list of simple "type name" pairs and a
// trailing opening brace. A flush line is blank or a lone closing brace.
type Grammar struct {
	blockOpen *regexp.Regexp
}

func NewGrammar(modifiers []string) *Grammar {
	if len(modifiers) == 0 {
		modifiers = DefaultModifiers
	}
	quoted := make([]string, len(modifiers))
	for i, m := range modifiers {
		quoted[i] = regexp.QuoteMeta(m)
	}

	param := `[^\s,)]+\s+[^\s,)]+`
	pattern := `^\s*` +
		`(?:(?:` + strings.Join(quoted, "|") + `|@\w+)\s+)*` +
		`(?:<.*?>\s+)?` +
		`(?:(\w+)(?:\s*<.*?>)?\s+)?` +
		`(\w+)\s*` +
		`\((?:` + param + `(?:,\s*` + param + `)*)?\)` +
		`\s*\{\s*$`

	return &Grammar{blockOpen: regexp.MustCompile(pattern)}
}

// BlockName reports the block name introduced by line, if line opens one.
// line must not carry its line terminator.
func (g *Grammar) BlockName(line string) (string, bool) {
	m := g.blockOpen.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	if reservedNames[m[1]] || reservedNames[m[2]] {
		return "", false
	}
	return m[2], true
}

// IsFlush reports whether line terminates the pending buffer.
func (g *Grammar) IsFlush(line string) bool {
	return flushPattern.MatchString(line)
}
