package metrics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmetrics/src/model"
)

type memSources struct {
	names []string
	bufs  map[string]string
	fail  map[string]error
}

func (m *memSources) Files() []string {
	return m.names
}

func (m *memSources) Buffer(name string) ([]byte, error) {
	if err, ok := m.fail[name]; ok {
		return nil, err
	}
	return []byte(m.bufs[name]), nil
}

func newSources(files ...string) *memSources {
	m := &memSources{bufs: make(map[string]string), fail: make(map[string]error)}
	for i := 0; i+1 < len(files); i += 2 {
		m.names = append(m.names, files[i])
		m.bufs[files[i]] = files[i+1]
	}
	return m
}

type policy struct {
	skipFiles     map[string]bool
	skipFunctions map[string]bool
}

func (p policy) ShouldIncludeFile(name string) bool {
	return !p.skipFiles[name]
}

func (p policy) ShouldIncludeFunction(name string) bool {
	return !p.skipFunctions[name]
}

// bodies returns one range per top-level brace pair, named in order
func bodies(file, src string, names ...string) []model.FunctionRange {
	var ranges []model.FunctionRange
	depth, start := 0, 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && len(ranges) < len(names) {
				ranges = append(ranges, span(file, names[len(ranges)], start, i))
			}
		}
	}
	return ranges
}

func function(t *testing.T, root *model.Unit, file, name string) *model.Unit {
	t.Helper()

	f, ok := root.Lookup(file, model.UnitFile)
	require.True(t, ok, "file %s", file)
	fn, ok := f.Lookup(name, model.UnitFunction)
	require.True(t, ok, "function %s", name)
	return fn
}

func TestRunCountsRepeatedLiteralsOnce(t *testing.T) {
	src := "void foo() { int x = 5 ; int y = 5 ; }"
	sources := newSources("a.cpp", src)

	root, err := NewDriver(policy{}).Run("p", sources, bodies("a.cpp", src, "foo"))
	require.NoError(t, err)

	foo := function(t, root, "a.cpp", "foo")
	assert.Equal(t, 2, foo.Count(model.MetricNumericConstants))
	assert.Equal(t, 1, foo.Count(model.MetricNumericConstantsUnique))
	assert.Equal(t, 2, foo.Count(model.MetricIdentifiers))
	assert.Equal(t, 2, foo.Count(model.MetricIdentifiersUnique))
	assert.Equal(t, 2, foo.Count(model.MetricKeywordInt))
	assert.Equal(t, 2, foo.Count(model.MetricOpAssign))
	assert.Equal(t, 1, foo.Count(model.MetricOpLBrace))
	assert.Equal(t, 1, foo.Count(model.MetricOpRBrace))
}

func TestRunAdjacentFunctionsCloseOnce(t *testing.T) {
	src := "{}{}"
	var trace bytes.Buffer

	_, err := NewDriver(policy{}, WithTrace(&trace)).Run("p", newSources("a.c", src), bodies("a.c", src, "f", "g"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[fn:f]", "(l_brace)", "(r_brace)",
		"[fn:g]", "(l_brace)", "(r_brace)",
	}, strings.Fields(trace.String()))
}

func TestRunFileScopeTokens(t *testing.T) {
	src := "int g = 7;\nvoid foo() { return; }\n"
	root, err := NewDriver(policy{}).Run("p", newSources("a.c", src), bodies("a.c", src, "foo"))
	require.NoError(t, err)

	file, ok := root.Lookup("a.c", model.UnitFile)
	require.True(t, ok)
	assert.Equal(t, 1, file.Count(model.MetricNumericConstants))
	assert.Equal(t, 0, file.Count(model.MetricNumericConstantsUnique))
	assert.Equal(t, 2, file.Count(model.MetricIdentifiers))
	assert.Equal(t, 0, file.Count(model.MetricIdentifiersUnique))
	assert.Equal(t, 2, file.Count(model.MetricLineCount))

	foo := function(t, root, "a.c", "foo")
	assert.Equal(t, 1, foo.Count(model.MetricKeywordReturn))
	assert.Equal(t, 0, foo.Count(model.MetricIdentifiers))
}

func TestRunExcludedFunction(t *testing.T) {
	src := "void a() { x; } void b() { y; 3; } void c() { z; z; }"
	ranges := bodies("a.c", src, "a", "b", "c")
	p := policy{skipFunctions: map[string]bool{"b": true}}

	root, err := NewDriver(p).Run("p", newSources("a.c", src), ranges)
	require.NoError(t, err)

	a := function(t, root, "a.c", "a")
	assert.Equal(t, 1, a.Count(model.MetricIdentifiersUnique))

	b := function(t, root, "a.c", "b")
	assert.Empty(t, b.Counts())
	assert.Equal(t, 0, b.Count(model.MetricIdentifiersUnique))
	assert.Equal(t, 0, b.Count(model.MetricNumericConstantsUnique))

	c := function(t, root, "a.c", "c")
	assert.Equal(t, 2, c.Count(model.MetricIdentifiers))
	assert.Equal(t, 1, c.Count(model.MetricIdentifiersUnique))
}

func TestRunExcludedFile(t *testing.T) {
	sources := newSources("keep.c", "int a;", "skip.c", "int b;")
	p := policy{skipFiles: map[string]bool{"skip.c": true}}

	root, err := NewDriver(p).Run("p", sources, nil)
	require.NoError(t, err)

	_, ok := root.Lookup("keep.c", model.UnitFile)
	assert.True(t, ok)
	_, ok = root.Lookup("skip.c", model.UnitFile)
	assert.False(t, ok)
}

func TestRunInvalidBufferAborts(t *testing.T) {
	sources := newSources("a.c", "int a;", "b.c", "int b;")
	sources.fail["b.c"] = errors.New("unreadable")

	root, err := NewDriver(policy{}).Run("p", sources, nil)
	assert.Error(t, err)
	assert.Nil(t, root)
}

func TestRunInvalidBufferAbortsEvenWhenExcluded(t *testing.T) {
	sources := newSources("a.c", "int a;")
	sources.fail["a.c"] = errors.New("unreadable")
	p := policy{skipFiles: map[string]bool{"a.c": true}}

	_, err := NewDriver(p).Run("p", sources, nil)
	assert.Error(t, err)
}

func TestRunRangesOfOtherFilesDoNotApply(t *testing.T) {
	src := "{ x; }"
	sources := newSources("a.c", src, "b.c", src)

	root, err := NewDriver(policy{}).Run("p", sources, bodies("a.c", src, "f"))
	require.NoError(t, err)

	function(t, root, "a.c", "f")
	b, ok := root.Lookup("b.c", model.UnitFile)
	require.True(t, ok)
	assert.Empty(t, b.Children())
	assert.Equal(t, 1, b.Count(model.MetricIdentifiers))
}

func TestRunTraceDoesNotChangeCounts(t *testing.T) {
	src := "int g;\nint f(int a) { if (a != 0) { return \"s\"[0]; } return a; }\n"
	ranges := bodies("a.c", src, "f")

	plain, err := NewDriver(policy{}).Run("p", newSources("a.c", src), ranges)
	require.NoError(t, err)

	var trace bytes.Buffer
	traced, err := NewDriver(policy{}, WithTrace(&trace)).Run("p", newSources("a.c", src), ranges)
	require.NoError(t, err)

	assert.Equal(t, model.Snapshot(plain, true), model.Snapshot(traced, true))
	assert.Contains(t, trace.String(), "(raw_identifier,reserved,int)")
	assert.Contains(t, trace.String(), "(raw_identifier,unreserved,g)")
	assert.Contains(t, trace.String(), "(string_literal,\"s\")")
	assert.Contains(t, trace.String(), "(semi)")
}

func TestRunResetsFunctionPerFile(t *testing.T) {
	src := "{ a; }"
	sources := newSources("one.c", src, "two.c", src)
	ranges := append(bodies("one.c", src, "f"), bodies("two.c", src, "f")...)

	root, err := NewDriver(policy{}).Run("p", sources, ranges)
	require.NoError(t, err)

	assert.Equal(t, 1, function(t, root, "one.c", "f").Count(model.MetricIdentifiersUnique))
	assert.Equal(t, 1, function(t, root, "two.c", "f").Count(model.MetricIdentifiersUnique))
}
