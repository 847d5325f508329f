package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"fragdoc/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fragdoc",
	Short: "Fragment Doc - Render documentation templates from live source code",
	Long: `fragdoc keeps prose documentation in sync with example code. It cuts every
source file under a tree into named fragments (the whole file, its leading
material and one fragment per method-like block) and replaces include lines
in a template with those fragments.

Example usage:
  fragdoc render -t guide.wiki              # Render to stdout
  fragdoc list                              # Show every include key
  fragdoc show src/Foo.java#bar             # Print one fragment
  fragdoc dump                              # Snapshot fragments to .fragdoc/`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		logger, err = newLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fragdoc.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "project directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// GetSourceRoot resolves the configured source root against the project
// directory.
func GetSourceRoot() string {
	root := cfg.Source.Root
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(rootDir, root)
}
