package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure
type Config struct {
	Agent      AgentConfig      `yaml:"agent"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Inclusions InclusionsConfig `yaml:"inclusions"`
	Exclusions ExclusionsConfig `yaml:"exclusions"`
	Limits     LimitsConfig     `yaml:"limits"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Validate checks values that would otherwise fail late in the run
func (c *Config) Validate() error {
	if len(c.Analysis.Extensions) == 0 {
		return fmt.Errorf("analysis.extensions must not be empty")
	}
	for _, ext := range c.Analysis.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("analysis.extensions: %q must start with a dot", ext)
		}
	}
	if c.Output.LargestFilesTopN < 0 {
		return fmt.Errorf("output.largest_files_top_n must not be negative")
	}
	for scope, limits := range map[string]map[string]int{"function": c.Limits.Function, "file": c.Limits.File} {
		for name, limit := range limits {
			if limit <= 0 {
				return fmt.Errorf("limits.%s.%s must be positive, got %d", scope, name, limit)
			}
		}
	}
	return nil
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig controls how sources are discovered and lexed
type AnalysisConfig struct {
	Extensions     []string `yaml:"extensions"`
	DumpTokens     bool     `yaml:"dump_tokens"`
	ValidateRanges bool     `yaml:"validate_ranges"`
}

// InclusionsConfig restricts analysis to matching entities.
// Empty lists include everything.
type InclusionsConfig struct {
	FilePatterns     []string `yaml:"file_patterns"`
	FunctionPatterns []string `yaml:"function_patterns"`
}

// ExclusionsConfig contains exclusion patterns
type ExclusionsConfig struct {
	FilePatterns     []string `yaml:"file_patterns"`
	Files            []string `yaml:"files"`
	FunctionPatterns []string `yaml:"function_patterns"`
}

// LimitsConfig sets per-metric ceilings, keyed by metric name
type LimitsConfig struct {
	Enabled     bool           `yaml:"enabled"`
	Function    map[string]int `yaml:"function"`
	File        map[string]int `yaml:"file"`
	MaxParallel int            `yaml:"max_parallel"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats          []string `yaml:"formats"`
	OutputDir        string   `yaml:"output_dir"`
	IncludeFunctions bool     `yaml:"include_functions"`
	LargestFilesTopN int      `yaml:"largest_files_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
