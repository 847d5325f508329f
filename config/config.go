package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for fragdoc.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Noise    NoiseConfig    `yaml:"noise"`
	Segment  SegmentConfig  `yaml:"segment"`
	Template TemplateConfig `yaml:"template"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SourceConfig selects the files that fragments are cut from.
type SourceConfig struct {
	Root      string   `yaml:"root"`
	Extension string   `yaml:"extension"` // used when includes is empty
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
}

// NoiseConfig lists the lines dropped before segmentation.
type NoiseConfig struct {
	DeclarationKeywords []string `yaml:"declaration_keywords"`
	Annotations         []string `yaml:"annotations"`
}

// SegmentConfig tunes the block-open pattern.
type SegmentConfig struct {
	Modifiers []string `yaml:"modifiers"`
}

// TemplateConfig locates the template document.
type TemplateConfig struct {
	Path      string `yaml:"path"`      // "-" reads stdin
	Directive string `yaml:"directive"` // e.g. "#include"
}

// RenderConfig controls substitution and output.
type RenderConfig struct {
	Tolerant bool   `yaml:"tolerant"` // leave unresolved markers in place
	Output   string `yaml:"output"`   // "-" writes stdout
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Root:      ".",
			Extension: ".java",
			Excludes:  []string{"**/.git/**", "**/target/**", "**/build/**", "**/node_modules/**"},
		},
		Noise: NoiseConfig{
			DeclarationKeywords: []string{"package", "import"},
			Annotations:         []string{`@SuppressWarnings("unchecked")`},
		},
		Segment: SegmentConfig{
			Modifiers: []string{"public", "private", "protected", "abstract", "final", "static", "synchronized"},
		},
		Template: TemplateConfig{
			Directive: "#include",
		},
		Render: RenderConfig{
			Tolerant: false,
			Output:   "-",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for fragdoc.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "fragdoc.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".fragdoc", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Includes returns the effective include globs.
func (c *Config) Includes() []string {
	if len(c.Source.Includes) > 0 {
		return c.Source.Includes
	}
	if c.Source.Extension != "" {
		return []string{"**/*" + c.Source.Extension}
	}
	return nil
}

// SnapshotPath returns the default location of a fragment snapshot.
func SnapshotPath(dir string) string {
	return filepath.Join(dir, ".fragdoc", "fragments.db")
}

// EnsureFragdocDir ensures the .fragdoc directory exists.
func EnsureFragdocDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".fragdoc"), 0755)
}
