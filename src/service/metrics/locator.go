package metrics

import (
	"sort"

	"srcmetrics/src/model"
)

// Locate returns the name of the first range, in the order given, that
// contains pos. Both boundaries count as inside. An empty name means pos is
// at file scope.
func Locate(pos model.Position, ranges []model.FunctionRange) string {
	for _, r := range ranges {
		if r.Contains(pos) {
			return r.Name
		}
	}
	return ""
}

// RangeIndex groups ranges by file. Supplied order is kept inside each file,
// so lookups return exactly what Locate over the full list would.
type RangeIndex struct {
	byFile map[string][]model.FunctionRange
}

// NewRangeIndex builds an index over ranges
func NewRangeIndex(ranges []model.FunctionRange) *RangeIndex {
	ix := &RangeIndex{byFile: make(map[string][]model.FunctionRange)}
	for _, r := range ranges {
		ix.byFile[r.Start.File] = append(ix.byFile[r.Start.File], r)
	}
	return ix
}

// Locate resolves pos against the ranges of its own file
func (ix *RangeIndex) Locate(pos model.Position) string {
	return Locate(pos, ix.byFile[pos.File])
}

// Overlap is a pair of ranges sharing at least one position. First comes
// before Second in the supplied order, so First wins lookups in the shared
// part.
type Overlap struct {
	First  model.FunctionRange
	Second model.FunctionRange
}

// FindOverlaps reports every overlapping pair of ranges within a file
func FindOverlaps(ranges []model.FunctionRange) []Overlap {
	type indexed struct {
		pos int
		r   model.FunctionRange
	}

	byFile := make(map[string][]indexed)
	var files []string
	for i, r := range ranges {
		if _, ok := byFile[r.Start.File]; !ok {
			files = append(files, r.Start.File)
		}
		byFile[r.Start.File] = append(byFile[r.Start.File], indexed{pos: i, r: r})
	}

	var overlaps []Overlap
	for _, file := range files {
		items := byFile[file]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].r.Start.Offset < items[j].r.Start.Offset
		})
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				// Sorted by start, so the first miss ends the run.
				if !items[i].r.Overlaps(items[j].r) {
					break
				}
				a, b := items[i], items[j]
				if b.pos < a.pos {
					a, b = b, a
				}
				overlaps = append(overlaps, Overlap{First: a.r, Second: b.r})
			}
		}
	}
	return overlaps
}
