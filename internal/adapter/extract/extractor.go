package extract

import (
	"fragdoc/internal/domain"
	"fragdoc/internal/port"
)

// Extractor turns one source file into its whole-file fragment followed by
// the segmented fragments, in source order.
type Extractor struct {
	stripper  *NoiseStripper
	segmenter port.Segmenter
}

func NewExtractor(stripper *NoiseStripper, segmenter port.Segmenter) *Extractor {
	if stripper == nil {
		stripper = NewNoiseStripper(nil, nil)
	}
	if segmenter == nil {
		segmenter = NewSegmenter(nil)
	}
	return &Extractor{stripper: stripper, segmenter: segmenter}
}

func (e *Extractor) Extract(file domain.SourceFile) []domain.Fragment {
	cleaned := e.stripper.Strip(file.Content)

	fragments := []domain.Fragment{{Key: domain.WholeFile(file.Path), Body: cleaned}}
	e.segmenter.Segment(file.Path, cleaned, func(key domain.FragmentKey, body string) {
		fragments = append(fragments, domain.Fragment{Key: key, Body: body})
	})
	return fragments
}
