package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmetrics/src/model"
)

func at(file string, offset int) model.Position {
	return model.Position{File: file, Offset: offset}
}

func span(file, name string, start, end int) model.FunctionRange {
	return model.FunctionRange{Start: at(file, start), End: at(file, end), Name: name}
}

func TestLocateBoundariesAreInclusive(t *testing.T) {
	ranges := []model.FunctionRange{span("a.c", "f", 10, 20)}

	assert.Equal(t, "f", Locate(at("a.c", 10), ranges))
	assert.Equal(t, "f", Locate(at("a.c", 15), ranges))
	assert.Equal(t, "f", Locate(at("a.c", 20), ranges))
	assert.Equal(t, "", Locate(at("a.c", 9), ranges))
	assert.Equal(t, "", Locate(at("a.c", 21), ranges))
}

func TestLocateIgnoresOtherFiles(t *testing.T) {
	ranges := []model.FunctionRange{span("a.c", "f", 0, 100)}
	assert.Equal(t, "", Locate(at("b.c", 50), ranges))
}

func TestLocateFirstMatchWins(t *testing.T) {
	outer := span("a.c", "outer", 0, 100)
	inner := span("a.c", "inner", 40, 60)

	assert.Equal(t, "outer", Locate(at("a.c", 50), []model.FunctionRange{outer, inner}))
	assert.Equal(t, "inner", Locate(at("a.c", 50), []model.FunctionRange{inner, outer}))
}

func TestLocateEmpty(t *testing.T) {
	assert.Equal(t, "", Locate(at("a.c", 0), nil))
}

func TestRangeIndexMatchesLinearScan(t *testing.T) {
	ranges := []model.FunctionRange{
		span("b.c", "b1", 5, 9),
		span("a.c", "a2", 30, 60),
		span("a.c", "a1", 0, 10),
		span("a.c", "nested", 35, 40),
		span("b.c", "b2", 9, 12),
	}
	ix := NewRangeIndex(ranges)

	for _, file := range []string{"a.c", "b.c", "c.c"} {
		for off := 0; off <= 70; off++ {
			pos := at(file, off)
			require.Equal(t, Locate(pos, ranges), ix.Locate(pos), "%s:%d", file, off)
		}
	}
}

func TestFindOverlaps(t *testing.T) {
	ranges := []model.FunctionRange{
		span("a.c", "late", 50, 80),
		span("a.c", "early", 0, 10),
		span("a.c", "inside", 60, 70),
		span("b.c", "other", 60, 70),
		span("a.c", "touch", 10, 12),
	}

	overlaps := FindOverlaps(ranges)
	require.Len(t, overlaps, 2)

	assert.Equal(t, "early", overlaps[0].First.Name)
	assert.Equal(t, "touch", overlaps[0].Second.Name)
	assert.Equal(t, "late", overlaps[1].First.Name)
	assert.Equal(t, "inside", overlaps[1].Second.Name)
}

func TestFindOverlapsDisjoint(t *testing.T) {
	ranges := []model.FunctionRange{span("a.c", "f", 0, 1), span("a.c", "g", 2, 3)}
	assert.Empty(t, FindOverlaps(ranges))
}
