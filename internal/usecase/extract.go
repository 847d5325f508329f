package usecase

import (
	"fmt"

	"fragdoc/internal/adapter/extract"
	"fragdoc/internal/adapter/fs"
	"fragdoc/internal/adapter/memstore"
	"fragdoc/internal/domain"
	"fragdoc/internal/port"
	"go.uber.org/zap"
)

// ProgressFunc is called after each file has been extracted.
type ProgressFunc func(processed, total int, currentFile string)

// ExtractUseCase builds a fragment store from a source tree.
type ExtractUseCase struct {
	walker    port.FileWalker
	extractor *extract.Extractor
	logger    *zap.Logger
}

// NewExtractUseCase creates a new extract use case.
func NewExtractUseCase(walker port.FileWalker, extractor *extract.Extractor, logger *zap.Logger) *ExtractUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractUseCase{
		walker:    walker,
		extractor: extractor,
		logger:    logger,
	}
}

// Extract walks root and folds every file's fragments into a fresh store.
// Any unreadable file aborts the run.
func (u *ExtractUseCase) Extract(root string, progress ProgressFunc) (*memstore.FragmentStore, *domain.ExtractStats, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk source tree: %w", err)
	}

	store := memstore.NewFragmentStore()
	stats := &domain.ExtractStats{}

	for i, file := range files {
		content, err := fs.ReadFile(file.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read source: %w", err)
		}

		fragments := u.extractor.Extract(domain.SourceFile{Path: file.RelPath, Content: content})
		for _, f := range fragments {
			store.Append(f.Key, f.Body)
		}

		stats.FilesScanned++
		u.logger.Debug("extracted file",
			zap.String("path", file.RelPath),
			zap.Int("ranges", len(fragments)))

		if progress != nil {
			progress(i+1, len(files), file.RelPath)
		}
	}

	stats.Fragments = store.Len()
	u.logger.Info("source tree extracted",
		zap.String("root", root),
		zap.Int("files", stats.FilesScanned),
		zap.Int("fragments", stats.Fragments))

	return store, stats, nil
}
