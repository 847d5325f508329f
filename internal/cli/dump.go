package cli

import (
	"fmt"
	"os"

	"fragdoc/config"
	"fragdoc/internal/adapter/store"
	"fragdoc/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dumpDB       string
	dumpProgress bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write a snapshot of all fragments",
	Long: `Dump extracts the source tree and writes every fragment to a bbolt file so
it can be inspected later with list --db and show --db. Rendering never
reads a snapshot.

Examples:
  fragdoc dump
  fragdoc dump --db /tmp/fragments.db`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpDB, "db", "", "snapshot path (default is .fragdoc/fragments.db)")
	dumpCmd.Flags().BoolVar(&dumpProgress, "progress", false, "show extraction progress on stderr")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	dbPath := dumpDB
	if dbPath == "" {
		if err := config.EnsureFragdocDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create .fragdoc directory: %w", err)
		}
		dbPath = config.SnapshotPath(GetRootDir())
	}

	var progress usecase.ProgressFunc
	if dumpProgress {
		progress = newProgressCallback(cmd.ErrOrStderr())
	}

	root := GetSourceRoot()
	fragments, stats, err := newExtractUseCase(cfg).Extract(root, progress)
	if err != nil {
		return err
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer st.Close()

	if err := st.WriteSnapshot(root, fragments, store.ComputeConfigHash(cfg)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	logger.Info("snapshot written",
		zap.String("path", dbPath),
		zap.Int("files", stats.FilesScanned),
		zap.Int("fragments", stats.Fragments))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d fragments from %d files to %s\n", stats.Fragments, stats.FilesScanned, dbPath)
	return nil
}

// openSnapshot opens an existing snapshot for reading and warns when it was
// cut with different extraction settings.
func openSnapshot(path string) (*store.BoltStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no snapshot at %s: %w", path, err)
	}

	st, err := store.NewBoltStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}

	info, err := st.CheckSchema()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	if info.ConfigHash != store.ComputeConfigHash(GetConfig()) {
		logger.Warn("snapshot was written with different extraction settings",
			zap.String("path", path),
			zap.String("root", info.Root))
	}
	return st, nil
}
