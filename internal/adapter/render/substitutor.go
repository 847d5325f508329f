package render

import (
	"regexp"
	"strings"

	"fragdoc/internal/adapter/extract"
	"fragdoc/internal/domain"
	"fragdoc/internal/port"
	"go.uber.org/zap"
)

const DefaultDirective = "#include"

// Substitutor replaces include marker lines in a template with normalized
// fragments. A marker is a whole line of the form "<directive> <key>".
type Substitutor struct {
	marker   *regexp.Regexp
	tolerant bool
	logger   *zap.Logger
}

type Option func(*Substitutor)

// WithTolerant leaves unresolved markers in place instead of failing.
func WithTolerant(tolerant bool) Option {
	return func(s *Substitutor) {
		s.tolerant = tolerant
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Substitutor) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSubstitutor(directive string, opts ...Option) *Substitutor {
	if directive == "" {
		directive = DefaultDirective
	}
	s := &Substitutor{
		marker: regexp.MustCompile(`^\s*` + regexp.QuoteMeta(directive) + `(?:\s+(\S+))?\s*$`),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup resolves an include key. A key that names a whole file wins over
// reading its last '#' as a fragment separator, so paths that contain '#'
// still resolve.
func Lookup(fragments port.FragmentReader, key string) (string, bool) {
	if body, ok := fragments.Get(domain.WholeFile(key)); ok {
		return body, true
	}
	k, ok := domain.ParseKey(key)
	if !ok {
		return "", false
	}
	return fragments.Get(k)
}

// Substitute resolves every marker against fragments. Text outside markers,
// line terminators included, is copied unchanged.
func (s *Substitutor) Substitute(template string, fragments port.FragmentReader) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	lineNo := 0
	for len(template) > 0 {
		lineNo++
		line, eol := template, ""
		if i := strings.IndexByte(template, '\n'); i >= 0 {
			line, eol = template[:i], "\n"
			template = template[i+1:]
		} else {
			template = ""
		}
		if strings.HasSuffix(line, "\r") {
			line, eol = line[:len(line)-1], "\r"+eol
		}

		m := s.marker.FindStringSubmatch(line)
		if m == nil {
			out.WriteString(line)
			out.WriteString(eol)
			continue
		}

		key := m[1]
		if key == "" {
			return "", &domain.MalformedTemplateError{Line: lineNo, Text: line}
		}

		body, ok := Lookup(fragments, key)
		if !ok {
			if !s.tolerant {
				return "", &domain.UnresolvedFragmentError{Key: key, Line: lineNo}
			}
			s.logger.Warn("unresolved fragment left in place",
				zap.String("key", key),
				zap.Int("line", lineNo))
			out.WriteString(line)
			out.WriteString(eol)
			continue
		}

		out.WriteString(strings.TrimSpace(extract.Normalize(body)))
		out.WriteString(eol)
	}

	return out.String(), nil
}
