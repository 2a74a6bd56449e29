package controller

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
	"srcmetrics/src/service/detector"
	"srcmetrics/src/service/metrics"
	"srcmetrics/src/service/structure"
	"srcmetrics/src/util"
)

// AnalysisController orchestrates the metrics pipeline
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to measure a source tree
type AnalyzeRequest struct {
	Path    string
	Project string    // Optional: defaults to the base name of Path
	Trace   io.Writer // Optional: receives the token dump
}

// Analyze runs the full analysis pipeline
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisReport, error) {
	startTime := time.Now()

	project := req.Project
	if project == "" {
		abs, err := filepath.Abs(req.Path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", req.Path, err)
		}
		project = filepath.Base(abs)
	}
	util.Info("Starting analysis for project: %s (%s)", project, req.Path)

	sources, err := CollectSources(req.Path, c.cfg.Analysis.Extensions)
	if err != nil {
		return nil, err
	}

	matcher := util.NewInclusionMatcher(c.cfg.Inclusions, c.cfg.Exclusions)

	ranges, err := c.extractRanges(ctx, sources, matcher)
	if err != nil {
		return nil, err
	}
	if c.cfg.Analysis.ValidateRanges {
		ranges = validRanges(ranges)
	}

	var opts []metrics.Option
	if req.Trace != nil {
		opts = append(opts, metrics.WithTrace(req.Trace))
	}
	root, err := metrics.NewDriver(matcher, opts...).Run(project, sources, ranges)
	if err != nil {
		util.Error("Metrics run failed: %v", err)
		return nil, err
	}

	var findings []model.Finding
	if c.cfg.Limits.Enabled {
		findings, err = detector.NewRunner(c.cfg.Limits).RunAll(ctx, root)
		if err != nil {
			return nil, err
		}
	}

	report := &model.AnalysisReport{
		Project:     project,
		GeneratedAt: time.Now().UTC(),
		Summary:     model.Summarize(root, c.cfg.Output.LargestFilesTopN),
		Root:        model.Snapshot(root, c.cfg.Output.IncludeFunctions),
		Findings:    findings,
	}

	util.Info("Analysis complete: %d files, %d functions, %d findings (took %v)",
		report.Summary.Files, report.Summary.Functions, len(findings), time.Since(startTime))

	return report, nil
}

// extractRanges runs the structural pass over every included file. An
// unreadable buffer is fatal here just as it is for the driver.
func (c *AnalysisController) extractRanges(ctx context.Context, sources *FileSources, matcher *util.InclusionMatcher) ([]model.FunctionRange, error) {
	extractor := structure.NewExtractor()
	var ranges []model.FunctionRange

	for _, name := range sources.Files() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		buf, err := sources.Buffer(name)
		if err != nil {
			util.Error("Invalid buffer for %s: %v", name, err)
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if !matcher.ShouldIncludeFile(name) {
			continue
		}

		found, err := extractor.Extract(ctx, name, buf)
		if err != nil {
			return nil, err
		}
		util.Debug("Found %d functions in %s", len(found), name)
		ranges = append(ranges, found...)
	}

	return ranges, nil
}

func validRanges(ranges []model.FunctionRange) []model.FunctionRange {
	valid := ranges[:0:0]
	for _, r := range ranges {
		if r.Start.File != r.End.File || r.End.Before(r.Start) {
			util.Warn("Dropping malformed range for %s at %s", r.Name, r.Start)
			continue
		}
		valid = append(valid, r)
	}
	return valid
}
