package usecase

import (
	"fmt"

	"fragdoc/internal/adapter/render"
	"fragdoc/internal/domain"
	"go.uber.org/zap"
)

// RenderUseCase extracts fragments and substitutes them into a template.
type RenderUseCase struct {
	extract     *ExtractUseCase
	substitutor *render.Substitutor
	logger      *zap.Logger
}

// NewRenderUseCase creates a new render use case.
func NewRenderUseCase(extract *ExtractUseCase, substitutor *render.Substitutor, logger *zap.Logger) *RenderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenderUseCase{
		extract:     extract,
		substitutor: substitutor,
		logger:      logger,
	}
}

// RenderResult contains the rendered document and extraction counters.
type RenderResult struct {
	Document string
	Stats    *domain.ExtractStats
}

// Render runs one full generation pass. No document is returned on error.
func (u *RenderUseCase) Render(root, template string, progress ProgressFunc) (*RenderResult, error) {
	store, stats, err := u.extract.Extract(root, progress)
	if err != nil {
		return nil, err
	}

	doc, err := u.substitutor.Substitute(template, store)
	if err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	u.logger.Debug("template rendered", zap.Int("bytes", len(doc)))
	return &RenderResult{Document: doc, Stats: stats}, nil
}
