package port

import "fragdoc/internal/domain"

// FragmentReader resolves fragment keys to bodies.
type FragmentReader interface {
	Get(key domain.FragmentKey) (string, bool)
	Keys() []domain.FragmentKey
	Len() int
}

// FragmentStore is a FragmentReader that is filled during extraction.
// Append concatenates onto an existing body instead of replacing it.
type FragmentStore interface {
	FragmentReader
	Append(key domain.FragmentKey, body string)
}

// Segmenter splits the cleaned text of one file into fragments, calling
// emit once per flushed range in source order.
type Segmenter interface {
	Segment(path, cleaned string, emit func(key domain.FragmentKey, body string))
}
