package extract

import (
	"regexp"
	"strings"
)

var (
	DefaultDeclarationKeywords = []string{"package", "import"}
	DefaultAnnotations         = []string{`@SuppressWarnings("unchecked")`}
)

// NoiseStripper removes declaration and suppression-annotation lines from
// a source file and trims blank edges off the result.
type NoiseStripper struct {
	declaration *regexp.Regexp
	annotations map[string]bool
}

func NewNoiseStripper(keywords, annotations []string) *NoiseStripper {
	if len(keywords) == 0 {
		keywords = DefaultDeclarationKeywords
	}
	if annotations == nil {
		annotations = DefaultAnnotations
	}

	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	// "import static a.b.C.d;" and "import a.b.*;" are declarations too.
	declaration := regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)\s+(?:static\s+)?(?:\w+\.)*(?:\w+|\*)\s*;\s*$`)

	set := make(map[string]bool, len(annotations))
	for _, a := range annotations {
		set[strings.TrimSpace(a)] = true
	}

	return &NoiseStripper{declaration: declaration, annotations: set}
}

// IsNoise reports whether a line (without terminator) is dropped.
func (n *NoiseStripper) IsNoise(line string) bool {
	if n.declaration.MatchString(line) {
		return true
	}
	return n.annotations[strings.TrimSpace(line)]
}

// Strip drops every noise line, terminator included, then trims
// surrounding whitespace.
func (n *NoiseStripper) Strip(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, line := range splitLines(raw) {
		if n.IsNoise(trimEOL(line)) {
			continue
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String())
}

// splitLines splits s after every '\n', keeping terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
