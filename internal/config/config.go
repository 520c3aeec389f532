// Package config loads one mining run's YAML configuration: the filter and
// delimiter regex lists, the dataset tag, the thresholds, and the header
// log_format string.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/n0madic/logtemplate/engine"
)

// Document is the on-disk YAML shape.
type Document struct {
	Dataset       string   `yaml:"dataset"`
	Tag           bool     `yaml:"tag"`
	DownThreshold int      `yaml:"downThreshold"`
	Filters       []string `yaml:"filters"`
	Delimiters    []string `yaml:"delimiters"`
	LogFormat     string   `yaml:"logFormat"`
}

// Config is a loaded, validated run configuration: the document plus its
// compiled regexes and the engine.Config derived from it.
type Config struct {
	Document
	Engine engine.Config
}

// Load reads and parses path, compiling every filter and delimiter regex.
// A missing file, malformed YAML, or an invalid regex is a Configuration
// error (spec §7): fatal, reported at start-up, never retried.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-provided config path
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if doc.DownThreshold <= 0 {
		doc.DownThreshold = 2
	}

	filters, err := compileAll(doc.Filters)
	if err != nil {
		return Config{}, fmt.Errorf("config: filters: %w", err)
	}

	delimiters, err := compileAll(doc.Delimiters)
	if err != nil {
		return Config{}, fmt.Errorf("config: delimiters: %w", err)
	}

	return Config{
		Document: doc,
		Engine: engine.Config{
			FilterRegexes:    filters,
			DelimiterRegexes: delimiters,
			Dataset:          doc.Dataset,
			DownThreshold:    doc.DownThreshold,
			Tag:              doc.Tag,
		},
	}, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
