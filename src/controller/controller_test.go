package controller

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestCollectSources(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/b.cpp":   "",
		"src/a.H":     "",
		"README.md":   "",
		".git/x.c":    "",
		"lib/util.cc": "",
	})

	src, err := CollectSources(root, []string{".cpp", ".h", ".cc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/util.cc", "src/a.H", "src/b.cpp"}, src.Files())
}

func TestCollectSourcesSingleFile(t *testing.T) {
	root := writeTree(t, map[string]string{"one.c": "int x;\n"})

	src, err := CollectSources(filepath.Join(root, "one.c"), []string{".cpp"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one.c"}, src.Files())

	buf, err := src.Buffer("one.c")
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(buf))
}

func TestCollectSourcesMissingPath(t *testing.T) {
	_, err := CollectSources(filepath.Join(t.TempDir(), "absent"), nil)
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/calc.cpp": `namespace calc {
int add(int a, int b) {
  return a + b;
}
}
int twice(int v) { return calc::add(v, v) * 2; }
`,
		"vendor/dep.c": "int dep() { return 1; }\n",
	})

	cfg := config.DefaultConfig()
	cfg.Limits.Function = map[string]int{"identifiers": 3}

	var trace bytes.Buffer
	report, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{
		Path:    root,
		Project: "calc",
		Trace:   &trace,
	})
	require.NoError(t, err)

	assert.Equal(t, "calc", report.Project)
	assert.Equal(t, 1, report.Summary.Files, "vendor files are excluded by default")
	assert.Equal(t, 2, report.Summary.Functions)
	assert.Equal(t, 6, report.Summary.Lines)

	require.Len(t, report.Root.Children, 1)
	file := report.Root.Children[0]
	assert.Equal(t, "src/calc.cpp", file.Name)
	require.Len(t, file.Children, 2)

	add := file.Children[0]
	assert.Equal(t, "calc::add", add.Name)
	assert.Equal(t, 1, add.Metrics["keyword.return"])
	assert.Equal(t, 2, add.Metrics["identifiers"])
	assert.Equal(t, 2, add.Metrics["identifiers.unique"])

	twice := file.Children[1]
	assert.Equal(t, "twice", twice.Name)
	assert.Equal(t, 1, twice.Metrics["numeric_constants.unique"])
	assert.Equal(t, 4, twice.Metrics["identifiers"])

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "twice", report.Findings[0].Entity)

	assert.Contains(t, trace.String(), "[fn:calc::add]")
}

func TestAnalyzeExcludedFunction(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.c": "int keep() { return 1; }\nint drop() { return 2; }\n",
	})

	cfg := config.DefaultConfig()
	cfg.Exclusions.FunctionPatterns = []string{"^drop$"}

	report, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{Path: root})
	require.NoError(t, err)

	file := report.Root.Children[0]
	require.Len(t, file.Children, 2)
	assert.Equal(t, 1, file.Children[0].Metrics["numeric_constants"])
	assert.Empty(t, file.Children[1].Metrics)
}

func TestGenerateReportsWritesFiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Output.Formats = []string{"json", "markdown", "text"}

	report := &model.AnalysisReport{Project: "demo", Root: model.Snapshot(model.NewProjectUnit("demo"), true)}
	paths, err := NewReportController(cfg).GenerateReports(report)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(cfg.Output.OutputDir, "demo-metrics.json"),
		filepath.Join(cfg.Output.OutputDir, "demo-metrics.md"),
		filepath.Join(cfg.Output.OutputDir, "demo-metrics.txt"),
	}, paths)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}
