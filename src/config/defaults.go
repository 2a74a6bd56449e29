package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "srcmetrics",
			Version:     "1.0.0",
			Description: "Lexical metrics for C and C++ sources",
		},
		Analysis: AnalysisConfig{
			Extensions:     []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx"},
			DumpTokens:     false,
			ValidateRanges: true,
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/vendor/**", "**/third_party/**", "**/build/**",
			},
		},
		Limits: LimitsConfig{
			Enabled: true,
			Function: map[string]int{
				"keyword.if":         20,
				"identifiers.unique": 80,
			},
			File: map[string]int{
				"lines": 2000,
			},
			MaxParallel: 2,
		},
		Output: OutputConfig{
			Formats:          []string{"json"},
			OutputDir:        ".",
			IncludeFunctions: true,
			LargestFilesTopN: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
