package util

import (
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"srcmetrics/src/config"
)

// InclusionMatcher decides which files and functions are measured.
// An entity is measured when it matches the include lists (an empty list
// matches everything) and none of the exclusions.
type InclusionMatcher struct {
	includeFiles     []string
	includeFunctions []*regexp.Regexp
	excludeFiles     []string
	filePatterns     []string
	functionPatterns []*regexp.Regexp
}

// NewInclusionMatcher creates a new matcher from config
func NewInclusionMatcher(inc config.InclusionsConfig, exc config.ExclusionsConfig) *InclusionMatcher {
	return &InclusionMatcher{
		includeFiles:     inc.FilePatterns,
		includeFunctions: compilePatterns(inc.FunctionPatterns),
		excludeFiles:     exc.Files,
		filePatterns:     exc.FilePatterns,
		functionPatterns: compilePatterns(exc.FunctionPatterns),
	}
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			Warn("Ignoring invalid function pattern %q: %v", p, err)
			continue
		}
		out = append(out, re)
	}
	return out
}

// ShouldIncludeFile reports whether the file at path is measured
func (m *InclusionMatcher) ShouldIncludeFile(path string) bool {
	path = filepath.ToSlash(path)

	if len(m.includeFiles) > 0 && !matchesAnyGlob(m.includeFiles, path) {
		return false
	}

	// Check exact file matches
	for _, f := range m.excludeFiles {
		if path == filepath.ToSlash(f) {
			return false
		}
	}

	return !matchesAnyGlob(m.filePatterns, path)
}

// ShouldIncludeFunction reports whether the qualified function name is measured
func (m *InclusionMatcher) ShouldIncludeFunction(name string) bool {
	if len(m.includeFunctions) > 0 && !matchesAnyRegexp(m.includeFunctions, name) {
		return false
	}
	return !matchesAnyRegexp(m.functionPatterns, name)
}

func matchesAnyGlob(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			Warn("Ignoring invalid file pattern %q: %v", pattern, err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

func matchesAnyRegexp(patterns []*regexp.Regexp, name string) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
