package model

import "fmt"

// Severity represents how far a unit is past its limit
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one metric of one unit exceeding a configured limit
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Kind     string   `json:"kind"`
	FilePath string   `json:"file_path"`
	Entity   string   `json:"entity"`
	Metric   string   `json:"metric"`
	Value    int      `json:"value"`
	Limit    int      `json:"limit"`
}

// Message describes the finding in one line
func (f Finding) Message() string {
	return fmt.Sprintf("%s %s has %s = %d (limit %d)", f.Kind, f.Entity, f.Metric, f.Value, f.Limit)
}

// SeverityFor grades a value against its limit. Values beyond twice the
// limit are errors.
func SeverityFor(value, limit int) Severity {
	if value > 2*limit {
		return SeverityError
	}
	return SeverityWarning
}
