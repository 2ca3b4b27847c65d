// Package config loads the optional .glslq.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/dhamidi/glslq/format"
	"github.com/dhamidi/glslq/glsl/parser"
)

// FileName is the name Find looks for.
const FileName = ".glslq.yaml"

// ErrConfigValidation is returned when a config file has invalid values.
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultExtensions are the file extensions treated as shaders.
var DefaultExtensions = []string{".glsl", ".vert", ".frag", ".comp", ".geom", ".tesc", ".tese"}

type Config struct {
	// Roots are the directories checked by default, relative to the
	// config file. ${VAR} references are expanded from the environment
	// and from a .env file next to the config file.
	Roots      []string     `yaml:"roots"`
	Extensions []string     `yaml:"extensions"`
	Exclude    []string     `yaml:"exclude"`
	Format     FormatConfig `yaml:"format"`
	Parser     ParserConfig `yaml:"parser"`
	Verbosity  int          `yaml:"verbosity"`

	// Dir is the directory the config was loaded from, or the working
	// directory for the default config.
	Dir string `yaml:"-"`
}

type FormatConfig struct {
	IndentWidth int  `yaml:"indent_width"`
	UseTabs     bool `yaml:"use_tabs"`
}

type ParserConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Roots:      []string{"."},
		Extensions: slices.Clone(DefaultExtensions),
		Format:     FormatConfig{IndentWidth: 4},
		Parser:     ParserConfig{MaxDepth: parser.DefaultMaxDepth},
	}
}

// Load reads the config file at path. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	env, err := loadEnv(cfg.Dir)
	if err != nil {
		return nil, err
	}
	for i, root := range cfg.Roots {
		cfg.Roots[i] = expandEnv(root, env)
	}
	return &cfg, nil
}

// Find returns the path of the nearest config file in dir or one of its
// parents, or "" when there is none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for d := dir; ; d = filepath.Dir(d) {
		candidate := filepath.Join(d, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		if d == filepath.Dir(d) {
			return ""
		}
	}
}

// LoadNearest loads the config file Find locates from dir, falling back
// to Default.
func LoadNearest(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		cfg := Default()
		cfg.Dir = dir
		return cfg, nil
	}
	return Load(path)
}

func validate(cfg *Config) error {
	if cfg.Format.IndentWidth < 0 || cfg.Format.IndentWidth > 16 {
		return fmt.Errorf("%w: format.indent_width must be between 0 and 16, got %d", ErrConfigValidation, cfg.Format.IndentWidth)
	}
	if cfg.Parser.MaxDepth < 0 {
		return fmt.Errorf("%w: parser.max_depth must be non-negative, got %d", ErrConfigValidation, cfg.Parser.MaxDepth)
	}
	if cfg.Verbosity < 0 {
		return fmt.Errorf("%w: verbosity must be non-negative, got %d", ErrConfigValidation, cfg.Verbosity)
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension '%s' must start with '.'", ErrConfigValidation, ext)
		}
	}
	for _, pattern := range cfg.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: exclude pattern '%s': %v", ErrConfigValidation, pattern, err)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{"."}
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = slices.Clone(DefaultExtensions)
	}
	if cfg.Format.IndentWidth == 0 && !cfg.Format.UseTabs {
		cfg.Format.IndentWidth = 4
	}
	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = parser.DefaultMaxDepth
	}
}

// loadEnv reads the .env file in dir without touching the process
// environment.
func loadEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return env, nil
}

// expandEnv replaces ${VAR} and $VAR, preferring values from env over the
// process environment.
func expandEnv(s string, env map[string]string) string {
	return os.Expand(s, func(name string) string {
		if v, ok := env[name]; ok {
			return v
		}
		return os.Getenv(name)
	})
}

// Indent is the string written per nesting level.
func (c *Config) Indent() string {
	if c.Format.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", c.Format.IndentWidth)
}

func (c *Config) PrinterOptions() []format.Option {
	return []format.Option{format.WithIndent(c.Indent())}
}

func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.Parser.MaxDepth)}
}

// IsShaderFile reports whether path has one of the configured extensions
// and matches no exclude pattern.
func (c *Config) IsShaderFile(path string) bool {
	if !slices.Contains(c.Extensions, filepath.Ext(path)) {
		return false
	}
	base := filepath.Base(path)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, base); ok {
			return false
		}
		if ok, _ := filepath.Match(pattern, filepath.ToSlash(path)); ok {
			return false
		}
	}
	return true
}

// RootPaths returns Roots resolved against Dir.
func (c *Config) RootPaths() []string {
	paths := make([]string, len(c.Roots))
	for i, root := range c.Roots {
		if filepath.IsAbs(root) {
			paths[i] = root
		} else {
			paths[i] = filepath.Join(c.Dir, root)
		}
	}
	return paths
}
