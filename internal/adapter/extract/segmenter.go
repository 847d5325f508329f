package extract

import (
	"strings"

	"fragdoc/internal/domain"
)

// Segmenter is a line-oriented accumulator. Lines collect in a pending
// buffer; a block-open line switches the current key and a flush line hands
// the buffer to the current key. Because the switch happens before the
// buffer is flushed, a signature line and any annotations or comments
// directly above it land in the block they introduce.
type Segmenter struct {
	grammar *Grammar
}

func NewSegmenter(grammar *Grammar) *Segmenter {
	if grammar == nil {
		grammar = NewGrammar(nil)
	}
	return &Segmenter{grammar: grammar}
}

func (s *Segmenter) Segment(path, cleaned string, emit func(key domain.FragmentKey, body string)) {
	key := domain.Start(path)
	// The start fragment always exists, even when a block opens on line one.
	emit(key, "")

	var pending strings.Builder
	for _, line := range splitLines(TrimEnclosingBrace(cleaned, s.grammar)) {
		pending.WriteString(line)

		content := trimEOL(line)
		if name, ok := s.grammar.BlockName(content); ok {
			key = domain.FragmentKey{Path: path, Name: name}
		} else if s.grammar.IsFlush(content) {
			emit(key, pending.String())
			pending.Reset()
		}
	}

	if pending.Len() > 0 {
		emit(key, pending.String())
	}
}

// TrimEnclosingBrace drops the final lone closing brace of cleaned when it
// closes an enclosing type, i.e. when it sits left of the last block-open
// line. A brace that closes a top-level block is kept. Segments concatenate
// to the returned text.
func TrimEnclosingBrace(cleaned string, grammar *Grammar) string {
	lines := splitLines(cleaned)
	if len(lines) == 0 {
		return cleaned
	}

	last := trimEOL(lines[len(lines)-1])
	if strings.TrimSpace(last) != "}" {
		return cleaned
	}
	braceIndent := len(last) - len(strings.TrimLeft(last, " \t"))

	blockIndent := -1
	for _, line := range lines[:len(lines)-1] {
		content := trimEOL(line)
		if _, ok := grammar.BlockName(content); ok {
			blockIndent = len(content) - len(strings.TrimLeft(content, " \t"))
		}
	}
	if blockIndent <= braceIndent {
		return cleaned
	}

	return strings.Join(lines[:len(lines)-1], "")
}
