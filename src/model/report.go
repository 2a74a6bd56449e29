package model

import (
	"sort"
	"time"
)

// AnalysisReport represents the complete analysis output
type AnalysisReport struct {
	Project     string        `json:"project"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     ReportSummary `json:"summary"`
	Root        UnitReport    `json:"root"`
	Findings    []Finding     `json:"findings,omitempty"`
}

// ReportSummary contains aggregated statistics
type ReportSummary struct {
	Files         int            `json:"files"`
	Functions     int            `json:"functions"`
	Lines         int            `json:"lines"`
	TokensCounted int            `json:"tokens_counted"`
	Totals        map[string]int `json:"totals"`
	LargestFiles  []FileHotspot  `json:"largest_files"`
}

// FileHotspot represents a file ranked by line count
type FileHotspot struct {
	FilePath  string `json:"file_path"`
	Lines     int    `json:"lines"`
	Functions int    `json:"functions"`
}

// UnitReport is a read-only snapshot of one Unit and its children
type UnitReport struct {
	Kind     string         `json:"kind"`
	Name     string         `json:"name"`
	Metrics  map[string]int `json:"metrics,omitempty"`
	Children []UnitReport   `json:"children,omitempty"`
}

// Snapshot copies the unit tree rooted at u. Function units are left out
// when includeFunctions is false. The project unit never counts anything
// itself, so its metrics are left empty; see ReportSummary.Totals.
func Snapshot(u *Unit, includeFunctions bool) UnitReport {
	r := UnitReport{
		Kind: u.Kind().String(),
		Name: u.Name(),
	}
	if u.Kind() != UnitProject {
		r.Metrics = u.Counts()
	}
	for _, child := range u.Children() {
		if child.Kind() == UnitFunction && !includeFunctions {
			continue
		}
		r.Children = append(r.Children, Snapshot(child, includeFunctions))
	}
	return r
}

// Summarize computes project wide totals from the tree rooted at project
func Summarize(project *Unit, topN int) ReportSummary {
	s := ReportSummary{Totals: make(map[string]int)}
	var hotspots []FileHotspot

	for _, file := range project.Children() {
		if file.Kind() != UnitFile {
			continue
		}
		s.Files++
		lines := file.Count(MetricLineCount)
		s.Lines += lines
		s.TokensCounted += tokenTotal(file)
		addTotals(s.Totals, file)

		functions := 0
		for _, fn := range file.Children() {
			if fn.Kind() != UnitFunction {
				continue
			}
			functions++
			s.TokensCounted += tokenTotal(fn)
			addTotals(s.Totals, fn)
		}
		s.Functions += functions
		hotspots = append(hotspots, FileHotspot{FilePath: file.Name(), Lines: lines, Functions: functions})
	}

	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].Lines > hotspots[j].Lines
	})
	if topN < 0 {
		topN = 0
	}
	if topN > len(hotspots) {
		topN = len(hotspots)
	}
	s.LargestFiles = hotspots[:topN]

	return s
}

// tokenTotal sums every per-token counter of u
func tokenTotal(u *Unit) int {
	total := 0
	for _, m := range AllMetrics() {
		if m.IsUnique() || m == MetricLineCount {
			continue
		}
		total += u.Count(m)
	}
	return total
}

// addTotals adds the counters of u to totals. Unique counts do not add up
// across units and are skipped.
func addTotals(totals map[string]int, u *Unit) {
	for _, m := range AllMetrics() {
		if m.IsUnique() {
			continue
		}
		if v := u.Count(m); v != 0 {
			totals[m.String()] += v
		}
	}
}
