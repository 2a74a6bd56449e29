package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
	"srcmetrics/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg    *config.Config
	styles *Styles
}

// NewGenerator creates a new report generator. Text output is unstyled
// until SetStyled is called.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, styles: NewStyles(false)}
}

// SetStyled switches terminal styling of the text format on or off
func (g *Generator) SetStyled(enabled bool) {
	g.styles = NewStyles(enabled)
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, report.Summary.Files)
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "html":
		return g.generateHTML(report)
	case "text", "txt":
		return g.generateText(report), nil
	case "sarif":
		return g.generateSARIF(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	// Header
	sb.WriteString("# Source Metrics Report\n\n")
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", report.Project))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	// Summary
	s := report.Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Files:** %d\n", s.Files))
	sb.WriteString(fmt.Sprintf("- **Functions:** %d\n", s.Functions))
	sb.WriteString(fmt.Sprintf("- **Lines:** %d\n", s.Lines))
	sb.WriteString(fmt.Sprintf("- **Tokens counted:** %d\n", s.TokensCounted))
	sb.WriteString(fmt.Sprintf("- **Limit findings:** %d\n\n", len(report.Findings)))

	if len(s.Totals) > 0 {
		sb.WriteString("### Totals\n\n")
		writeMetricList(&sb, s.Totals)
	}

	if len(s.LargestFiles) > 0 {
		sb.WriteString("### Largest Files\n\n")
		sb.WriteString("| File | Lines | Functions |\n")
		sb.WriteString("|------|-------|-----------|\n")
		for _, f := range s.LargestFiles {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d |\n", f.FilePath, f.Lines, f.Functions))
		}
		sb.WriteString("\n")
	}

	if len(report.Findings) > 0 {
		sb.WriteString("## Findings\n\n")
		sb.WriteString("| Severity | File | Entity | Metric | Value | Limit |\n")
		sb.WriteString("|----------|------|--------|--------|-------|-------|\n")
		for _, f := range report.Findings {
			sb.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s | %d | %d |\n",
				severityLabel(f.Severity), f.FilePath, f.Entity, f.Metric, f.Value, f.Limit))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Units\n\n")
	for _, file := range report.Root.Children {
		sb.WriteString(fmt.Sprintf("### %s\n\n", file.Name))
		writeMetricList(&sb, file.Metrics)
		for _, fn := range file.Children {
			sb.WriteString(fmt.Sprintf("#### `%s`\n\n", fn.Name))
			writeMetricList(&sb, fn.Metrics)
		}
	}

	return sb.String(), nil
}

func writeMetricList(sb *strings.Builder, metrics map[string]int) {
	if len(metrics) == 0 {
		sb.WriteString("_no tokens counted_\n\n")
		return
	}
	for _, name := range sortedKeys(metrics) {
		sb.WriteString(fmt.Sprintf("- %s: %d\n", name, metrics[name]))
	}
	sb.WriteString("\n")
}

func (g *Generator) generateHTML(report *model.AnalysisReport) (string, error) {
	md, err := g.generateMarkdown(report)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s metrics</title>\n", report.Project))
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

func (g *Generator) generateSARIF(report *model.AnalysisReport) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    g.cfg.Agent.Name,
						"version": g.cfg.Agent.Version,
						"rules":   g.buildSARIFRules(report.Findings),
					},
				},
				"results": g.buildSARIFResults(report.Findings),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) buildSARIFRules(findings []model.Finding) []map[string]any {
	seen := make(map[string]bool)
	rules := []map[string]any{}

	for _, f := range findings {
		if seen[f.Rule] {
			continue
		}
		seen[f.Rule] = true

		description := f.Metric
		if m, ok := model.MetricByName(f.Metric); ok {
			description = m.Description()
		}
		rules = append(rules, map[string]any{
			"id":   f.Rule,
			"name": f.Metric,
			"shortDescription": map[string]any{
				"text": fmt.Sprintf("%s limit for %s units", description, f.Kind),
			},
		})
	}

	return rules
}

func (g *Generator) buildSARIFResults(findings []model.Finding) []map[string]any {
	results := []map[string]any{}

	for _, f := range findings {
		results = append(results, map[string]any{
			"ruleId":  f.Rule,
			"level":   sarifLevel(f.Severity),
			"message": map[string]any{"text": f.Message()},
			"locations": []map[string]any{
				{
					"physicalLocation": map[string]any{
						"artifactLocation": map[string]any{
							"uri": f.FilePath,
						},
					},
					"logicalLocations": []map[string]any{
						{"name": f.Entity, "kind": f.Kind},
					},
				},
			},
		})
	}

	return results
}

func severityLabel(s model.Severity) string {
	switch s {
	case model.SeverityError:
		return "[ERROR]"
	default:
		return "[WARNING]"
	}
}

func sarifLevel(s model.Severity) string {
	if s == model.SeverityError {
		return "error"
	}
	return "warning"
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
