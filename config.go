package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const currentConfigVersion = "1.0"

// supportedConfigVersions is the range of config versions this build understands.
const supportedConfigVersions = "^1.0"

var configFileNames = []string{
	"dir-import.config.jsonc",
	"dir-import.config.json",
	".dir-import.yaml",
	".dir-import.yml",
}

type DirImportConfig struct {
	Schema            string   `json:"$schema,omitempty" yaml:"-"`
	ConfigVersion     string   `json:"configVersion" yaml:"configVersion"`
	Exts              []string `json:"exts,omitempty" yaml:"exts,omitempty"`
	NoStrip           bool     `json:"nostrip,omitempty" yaml:"nostrip,omitempty"`
	SnakeCase         bool     `json:"snakeCase,omitempty" yaml:"snakeCase,omitempty"`
	Exclude           []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Sort              bool     `json:"sort,omitempty" yaml:"sort,omitempty"`
	ResolveExtensions []string `json:"resolveExtensions,omitempty" yaml:"resolveExtensions,omitempty"`
}

func DefaultConfig() DirImportConfig {
	return DirImportConfig{
		ConfigVersion: currentConfigVersion,
		Exts:          append([]string{}, defaultModuleExts...),
	}
}

// FindConfigFile returns the first known config file in cwd.
func FindConfigFile(cwd string) (string, error) {
	for _, name := range configFileNames {
		candidate := filepath.Join(cwd, name)
		if isRegularFile(candidate) {
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadConfig reads a config file, or the config file found in configPath when it is
// a directory.
func LoadConfig(configPath string) (DirImportConfig, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return DirImportConfig{}, err
	}

	actualPath := configPath
	if fileInfo.IsDir() {
		actualPath, err = FindConfigFile(configPath)
		if err != nil {
			return DirImportConfig{}, fmt.Errorf("no config file in %s: %w", configPath, err)
		}
	}

	content, err := os.ReadFile(actualPath)
	if err != nil {
		return DirImportConfig{}, err
	}

	config, err := ParseConfig(content, filepath.Ext(actualPath))
	if err != nil {
		return DirImportConfig{}, fmt.Errorf("%s: %w", actualPath, err)
	}
	return config, nil
}

// ParseConfig decodes YAML when ext is .yaml or .yml and JSON with comments otherwise.
func ParseConfig(content []byte, ext string) (DirImportConfig, error) {
	var config DirImportConfig
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &config); err != nil {
			return DirImportConfig{}, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(content), &config); err != nil {
			return DirImportConfig{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := config.normalize(); err != nil {
		return DirImportConfig{}, err
	}
	return config, nil
}

func (c *DirImportConfig) normalize() error {
	if c.ConfigVersion == "" {
		c.ConfigVersion = currentConfigVersion
	}
	if err := validateConfigVersion(c.ConfigVersion); err != nil {
		return err
	}

	exts, err := normalizeExts("exts", c.Exts)
	if err != nil {
		return err
	}
	c.Exts = exts

	resolveExts, err := normalizeExts("resolveExtensions", c.ResolveExtensions)
	if err != nil {
		return err
	}
	c.ResolveExtensions = resolveExts

	for i, pattern := range c.Exclude {
		if err := validatePattern(pattern); err != nil {
			return fmt.Errorf("exclude[%d]: %w", i, err)
		}
	}
	return nil
}

func validateConfigVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("configVersion: invalid version '%s': %w", version, err)
	}
	constraint, err := semver.NewConstraint(supportedConfigVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("configVersion: version '%s' is not supported, expected %s", version, supportedConfigVersions)
	}
	return nil
}

// normalizeExts strips leading dots. A nil list stays nil so defaults apply.
func normalizeExts(field string, exts []string) ([]string, error) {
	if exts == nil {
		return nil, nil
	}
	out := make([]string, 0, len(exts))
	for i, ext := range exts {
		trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if trimmed == "" {
			return nil, fmt.Errorf("%s[%d]: empty extension", field, i)
		}
		out = append(out, trimmed)
	}
	return out, nil
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return errors.New("empty pattern")
	}
	if strings.HasPrefix(pattern, "./") || strings.HasPrefix(pattern, "../") || strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("pattern '%s' must be relative to the expanded directory and start with a file or directory name", pattern)
	}
	if _, err := compileGlob(pattern); err != nil {
		return fmt.Errorf("pattern '%s': %w", pattern, err)
	}
	return nil
}

// Options converts the config into rule options, compiling exclude and sort into
// the list transform.
func (c DirImportConfig) Options() (DirImportOptions, error) {
	var transforms []ListTransform
	if len(c.Exclude) > 0 {
		exclude, err := NewExcludeListTransform(c.Exclude)
		if err != nil {
			return DirImportOptions{}, err
		}
		transforms = append(transforms, exclude)
	}
	if c.Sort {
		transforms = append(transforms, SortListTransform)
	}

	return DirImportOptions{
		Exts:          c.Exts,
		NoStrip:       c.NoStrip,
		SnakeCase:     c.SnakeCase,
		ListTransform: ComposeListTransforms(transforms...),
	}, nil
}

// WriteConfig writes c as indented JSON to path, refusing to overwrite.
func WriteConfig(path string, c DirImportConfig) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(content, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
