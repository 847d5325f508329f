package cli

import (
	"fragdoc/config"
	"fragdoc/internal/adapter/extract"
	"fragdoc/internal/adapter/fs"
	"fragdoc/internal/adapter/render"
	"fragdoc/internal/port"
	"fragdoc/internal/usecase"
)

func newExtractUseCase(cfg *config.Config) *usecase.ExtractUseCase {
	walker := fs.NewWalker(cfg.Includes(), cfg.Source.Excludes)
	stripper := extract.NewNoiseStripper(cfg.Noise.DeclarationKeywords, cfg.Noise.Annotations)
	segmenter := extract.NewSegmenter(extract.NewGrammar(cfg.Segment.Modifiers))
	return usecase.NewExtractUseCase(walker, extract.NewExtractor(stripper, segmenter), logger)
}

func newSubstitutor(cfg *config.Config) *render.Substitutor {
	return render.NewSubstitutor(cfg.Template.Directive,
		render.WithTolerant(cfg.Render.Tolerant),
		render.WithLogger(logger))
}

// openFragments returns the fragments of the source tree, or of a snapshot
// when dbPath is set.
func openFragments(dbPath string) (port.FragmentReader, func(), error) {
	if dbPath != "" {
		st, err := openSnapshot(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}

	store, _, err := newExtractUseCase(cfg).Extract(GetSourceRoot(), nil)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
