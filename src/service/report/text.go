package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"srcmetrics/src/model"
)

// Styles holds the lipgloss styles of the text report
type Styles struct {
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{}

	if enabled {
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Border = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	} else {
		s.Header = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Border = lipgloss.NewStyle()
	}

	return s
}

// textColumns are the metrics shown per unit in the text table
var textColumns = []model.MetricType{
	model.MetricLineCount,
	model.MetricIdentifiers,
	model.MetricIdentifiersUnique,
	model.MetricNumericConstants,
	model.MetricStringLiterals,
}

func (g *Generator) generateText(report *model.AnalysisReport) string {
	st := g.styles
	var sb strings.Builder

	sb.WriteString(st.Header.Render(fmt.Sprintf("%s: %d files, %d functions, %d lines, %d tokens",
		report.Project, report.Summary.Files, report.Summary.Functions,
		report.Summary.Lines, report.Summary.TokensCounted)))
	sb.WriteString("\n\n")

	headers := []string{"kind", "unit"}
	for _, m := range textColumns {
		headers = append(headers, m.String())
	}

	var rows [][]string
	for _, file := range report.Root.Children {
		rows = append(rows, unitRow(file, file.Name))
		for _, fn := range file.Children {
			rows = append(rows, unitRow(fn, "  "+fn.Name))
		}
	}
	rows = append(rows, totalsRow(report.Summary.Totals))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers(headers...).
		Rows(rows...)
	sb.WriteString(t.String())
	sb.WriteString("\n")

	if len(report.Findings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(st.Header.Render("Findings"))
		sb.WriteString("\n")
		for _, f := range report.Findings {
			style := st.Warning
			if f.Severity == model.SeverityError {
				style = st.Error
			}
			sb.WriteString(style.Render(severityLabel(f.Severity)))
			sb.WriteString(" ")
			sb.WriteString(f.Message())
			sb.WriteString(st.Muted.Render(" (" + f.FilePath + ")"))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// totalsRow sums each column over every unit. Unique counts do not add up
// and show as a dash.
func totalsRow(totals map[string]int) []string {
	row := []string{model.UnitProject.String(), "total"}
	for _, m := range textColumns {
		if m.IsUnique() {
			row = append(row, "-")
			continue
		}
		row = append(row, strconv.Itoa(totals[m.String()]))
	}
	return row
}

func unitRow(u model.UnitReport, label string) []string {
	row := []string{u.Kind, label}
	for _, m := range textColumns {
		row = append(row, strconv.Itoa(u.Metrics[m.String()]))
	}
	return row
}
