package detector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
)

func buildTree() *model.Unit {
	root := model.NewProjectUnit("demo")
	file := root.Child("a.cpp", model.UnitFile)
	file.Set(model.MetricLineCount, 300)

	busy := file.Child("busy", model.UnitFunction)
	for i := 0; i < 7; i++ {
		busy.Increment(model.MetricKeywordIf)
	}
	file.Child("calm", model.UnitFunction).Increment(model.MetricKeywordIf)
	return root
}

func TestLimitDetectorFunctions(t *testing.T) {
	cfg := config.LimitsConfig{Enabled: true}
	d := NewLimitDetector(model.UnitFunction, cfg, map[string]int{"keyword.if": 3, "no.such": 1})

	findings, err := d.Detect(context.Background(), buildTree())
	require.NoError(t, err)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "busy", f.Entity)
	assert.Equal(t, "a.cpp", f.FilePath)
	assert.Equal(t, "function/keyword.if", f.Rule)
	assert.Equal(t, 7, f.Value)
	assert.Equal(t, model.SeverityError, f.Severity)
}

func TestLimitDetectorDisabledWithoutLimits(t *testing.T) {
	d := NewLimitDetector(model.UnitFile, config.LimitsConfig{Enabled: true}, nil)
	assert.False(t, d.IsEnabled())
}

func TestRunnerCombinesDetectors(t *testing.T) {
	r := NewRunner(config.LimitsConfig{
		Enabled:     true,
		Function:    map[string]int{"keyword.if": 5},
		File:        map[string]int{"lines": 200},
		MaxParallel: 2,
	})
	assert.Equal(t, []string{"file_limits", "function_limits"}, r.ListDetectors())

	findings, err := r.RunAll(context.Background(), buildTree())
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, "a.cpp", findings[0].Entity)
	assert.Equal(t, model.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "busy", findings[1].Entity)
}

func TestRunnerHonorsCancellation(t *testing.T) {
	r := NewRunner(config.LimitsConfig{Enabled: true, File: map[string]int{"lines": 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RunAll(ctx, buildTree())
	assert.ErrorIs(t, err, context.Canceled)
}
