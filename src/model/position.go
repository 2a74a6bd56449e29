package model

import "fmt"

// Position is a location inside a source file
type Position struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Before reports whether p precedes other in the same file.
// Positions in different files are unordered and never precede each other.
func (p Position) Before(other Position) bool {
	return p.File == other.File && p.Offset < other.Offset
}

// Same reports whether p and other denote the same location
func (p Position) Same(other Position) bool {
	return p.File == other.File && p.Offset == other.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// FunctionRange is the body extent of one function or method
type FunctionRange struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
	Name  string   `json:"name"`
}

// Contains reports whether pos lies on or between the range boundaries
func (r FunctionRange) Contains(pos Position) bool {
	return pos.Same(r.Start) || pos.Same(r.End) || (r.Start.Before(pos) && pos.Before(r.End))
}

// Overlaps reports whether the two ranges share at least one position
func (r FunctionRange) Overlaps(other FunctionRange) bool {
	if r.Start.File != other.Start.File {
		return false
	}
	return r.Start.Offset <= other.End.Offset && other.Start.Offset <= r.End.Offset
}
