package model

// UnitKind tags the scope a Unit measures
type UnitKind int

const (
	UnitProject UnitKind = iota
	UnitFile
	UnitFunction
)

func (k UnitKind) String() string {
	switch k {
	case UnitProject:
		return "project"
	case UnitFile:
		return "file"
	case UnitFunction:
		return "function"
	default:
		return "unknown"
	}
}

type unitKey struct {
	name string
	kind UnitKind
}

// Unit is a node of the metric tree. The project unit owns file units and
// each file unit owns its function units. Counters only move through
// Increment and Set.
type Unit struct {
	kind     UnitKind
	name     string
	counts   [MetricCount]int
	children map[unitKey]*Unit
	order    []*Unit
}

// NewProjectUnit creates the root of a metric tree
func NewProjectUnit(name string) *Unit {
	return newUnit(name, UnitProject)
}

func newUnit(name string, kind UnitKind) *Unit {
	return &Unit{
		kind:     kind,
		name:     name,
		children: make(map[unitKey]*Unit),
	}
}

// Kind returns the unit kind
func (u *Unit) Kind() UnitKind {
	return u.kind
}

// Name returns the file path or qualified function name
func (u *Unit) Name() string {
	return u.name
}

// Child returns the child with the given name and kind, creating it with all
// counters at zero when it does not exist yet.
func (u *Unit) Child(name string, kind UnitKind) *Unit {
	key := unitKey{name: name, kind: kind}
	if child, ok := u.children[key]; ok {
		return child
	}
	child := newUnit(name, kind)
	u.children[key] = child
	u.order = append(u.order, child)
	return child
}

// Lookup returns an existing child without creating one
func (u *Unit) Lookup(name string, kind UnitKind) (*Unit, bool) {
	child, ok := u.children[unitKey{name: name, kind: kind}]
	return child, ok
}

// Children returns the child units in creation order
func (u *Unit) Children() []*Unit {
	out := make([]*Unit, len(u.order))
	copy(out, u.order)
	return out
}

// Increment adds one to the counter for m
func (u *Unit) Increment(m MetricType) {
	u.counts[m]++
}

// Set overwrites the counter for m
func (u *Unit) Set(m MetricType, value int) {
	u.counts[m] = value
}

// Count returns the current counter for m
func (u *Unit) Count(m MetricType) int {
	if !m.Valid() {
		return 0
	}
	return u.counts[m]
}

// IsFunctionScope reports whether the unit measures a function or method
func (u *Unit) IsFunctionScope() bool {
	return u != nil && u.kind == UnitFunction
}

// Counts returns the non-zero counters keyed by metric name
func (u *Unit) Counts() map[string]int {
	out := make(map[string]int)
	for m, v := range u.counts {
		if v != 0 {
			out[MetricType(m).String()] = v
		}
	}
	return out
}
