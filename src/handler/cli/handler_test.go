package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "srcmetrics.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0o644))

	h := New()
	var stdout, stderr bytes.Buffer
	h.rootCmd.SetOut(&stdout)
	h.rootCmd.SetErr(&stderr)
	h.rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	require.NoError(t, h.rootCmd.Execute())
	return stdout.String(), stderr.String()
}

func TestMetricsCommandListsEveryMetric(t *testing.T) {
	out, _ := run(t, "metrics")

	assert.Contains(t, out, "keyword.int")
	assert.Contains(t, out, "operator.lparen")
	assert.Contains(t, out, "identifiers.unique")
	assert.Contains(t, out, "- file_limits")
	assert.Contains(t, out, "- function_limits")
	assert.Contains(t, out, "keyword.if")
	assert.Contains(t, out, "<= 20")
}

func TestVersionCommand(t *testing.T) {
	out, _ := run(t, "version")
	assert.Equal(t, "srcmetrics 1.0.0", strings.TrimSpace(out))
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m.c"), []byte("int main() { return 0; }\n"), 0o644))

	out, errOut := run(t, "analyze", dir, "--format", "json", "--dump-tokens")

	assert.Contains(t, out, `"name": "main"`)
	assert.Contains(t, out, `"keyword.return": 1`)
	assert.Contains(t, errOut, "[fn:main]")
	assert.Contains(t, errOut, "Analysis complete")
}

func TestAnalyzeCommandWritesReports(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "m.c"), []byte("int x;\n"), 0o644))
	outDir := t.TempDir()

	out, _ := run(t, "analyze", src, "-o", outDir, "-f", "markdown")

	assert.Contains(t, out, "Report written to")
	matches, err := filepath.Glob(filepath.Join(outDir, "*-metrics.md"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
