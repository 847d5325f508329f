package extract

import "strings"

// CommonIndent returns the shortest leading-whitespace run among lines that
// carry content other than a closing brace.
func CommonIndent(body string) string {
	indent := ""
	found := false
	for _, line := range splitLines(body) {
		line = trimEOL(line)
		rest := strings.TrimLeft(line, " \t")
		if rest == "" || rest[0] == '}' {
			continue
		}
		lead := line[:len(line)-len(rest)]
		if !found || len(lead) < len(indent) {
			indent = lead
			found = true
		}
	}
	return indent
}

// Normalize re-bases a fragment to column zero, drops blank lines that sit
// directly above a lone closing brace and trims blank lines off both ends.
func Normalize(body string) string {
	indent := CommonIndent(body)
	lines := splitLines(body)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimPrefix(line, indent))
	}

	collapsed := make([]string, 0, len(out))
	for i, line := range out {
		if isBlank(line) && blankRunEndsInBrace(out, i) {
			continue
		}
		collapsed = append(collapsed, line)
	}

	return trimBlankEdges(strings.Join(collapsed, ""))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// blankRunEndsInBrace reports whether the blank run containing lines[i] is
// followed by a line holding only a closing brace.
func blankRunEndsInBrace(lines []string, i int) bool {
	for j := i + 1; j < len(lines); j++ {
		if isBlank(lines[j]) {
			continue
		}
		return strings.TrimRight(lines[j], " \t\r\n") == "}"
	}
	return false
}

// trimBlankEdges removes whole blank lines at the start and end of s and
// the final line terminator. Indentation of the first content line is kept.
func trimBlankEdges(s string) string {
	lines := splitLines(s)
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return trimEOL(strings.Join(lines[start:end], ""))
}
