package controller

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
	"srcmetrics/src/service/report"
	"srcmetrics/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports generates reports in all configured formats
func (c *ReportController) GenerateReports(analysisReport *model.AnalysisReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	reportGenerator := report.NewGenerator(c.cfg)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := reportGenerator.Generate(analysisReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(analysisReport.Project, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string. Text output is styled
// when w is a terminal.
func (c *ReportController) GenerateToString(analysisReport *model.AnalysisReport, format string, w io.Writer) (string, error) {
	reportGenerator := report.NewGenerator(c.cfg)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		reportGenerator.SetStyled(true)
	}
	return reportGenerator.Generate(analysisReport, format)
}

func (c *ReportController) getOutputPath(project, format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	}

	return filepath.Join(c.cfg.Output.OutputDir, project+"-metrics."+ext)
}
