package cli

import (
	"fmt"
	"io"
	"os"

	"fragdoc/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderTemplate  string
	renderOutput    string
	renderDirective string
	renderTolerant  bool
	renderProgress  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a template with source fragments",
	Long: `Render replaces every include line of a template with the named fragment.
Include lines look like "#include <path>", "#include <path>#<block>" or
"#include <path>##start". An include that names no fragment fails the run
unless --tolerant is set.

Examples:
  fragdoc render -t docs/guide.wiki
  fragdoc render -t docs/guide.wiki -o guide.out
  cat guide.wiki | fragdoc render -t -`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "template file, - for stdin (default from config)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file, - for stdout (default from config)")
	renderCmd.Flags().StringVar(&renderDirective, "directive", "", "include directive token (default #include)")
	renderCmd.Flags().BoolVar(&renderTolerant, "tolerant", false, "leave unresolved include lines in place")
	renderCmd.Flags().BoolVar(&renderProgress, "progress", false, "show extraction progress on stderr")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if renderTemplate != "" {
		cfg.Template.Path = renderTemplate
	}
	if renderOutput != "" {
		cfg.Render.Output = renderOutput
	}
	if renderDirective != "" {
		cfg.Template.Directive = renderDirective
	}
	if renderTolerant {
		cfg.Render.Tolerant = true
	}
	if cfg.Template.Path == "" {
		return fmt.Errorf("no template given; use --template or template.path")
	}

	template, err := readTemplate(cmd, cfg.Template.Path)
	if err != nil {
		return err
	}

	var progress usecase.ProgressFunc
	if renderProgress {
		progress = newProgressCallback(cmd.ErrOrStderr())
	}

	uc := usecase.NewRenderUseCase(newExtractUseCase(cfg), newSubstitutor(cfg), logger)
	result, err := uc.Render(GetSourceRoot(), template, progress)
	if err != nil {
		return err
	}

	logger.Info("render complete",
		zap.Int("files", result.Stats.FilesScanned),
		zap.Int("fragments", result.Stats.Fragments))

	if cfg.Render.Output == "" || cfg.Render.Output == "-" {
		_, err = io.WriteString(cmd.OutOrStdout(), result.Document)
		return err
	}
	if err := os.WriteFile(cfg.Render.Output, []byte(result.Document), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readTemplate(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read template from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}
