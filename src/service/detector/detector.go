package detector

import (
	"context"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
	"srcmetrics/src/util"
)

// Detector is the interface for all limit checks
type Detector interface {
	// Name returns the detector name
	Name() string

	// IsEnabled returns whether the detector is enabled
	IsEnabled() bool

	// Detect walks the project tree and returns the units past their limits
	Detect(ctx context.Context, project *model.Unit) ([]model.Finding, error)
}

// limit is one resolved metric ceiling
type limit struct {
	metric model.MetricType
	max    int
}

// LimitDetector flags units of one kind whose metrics exceed the configured
// ceilings.
type LimitDetector struct {
	kind    model.UnitKind
	enabled bool
	limits  []limit
}

// NewLimitDetector resolves metric names for units of the given kind.
// Unknown names are skipped with a warning.
func NewLimitDetector(kind model.UnitKind, cfg config.LimitsConfig, limits map[string]int) *LimitDetector {
	d := &LimitDetector{kind: kind, enabled: cfg.Enabled}
	for _, m := range model.AllMetrics() {
		if ceiling, ok := limits[m.String()]; ok {
			d.limits = append(d.limits, limit{metric: m, max: ceiling})
		}
	}
	for name := range limits {
		if _, ok := model.MetricByName(name); !ok {
			util.Warn("Ignoring limit on unknown metric %q", name)
		}
	}
	return d
}

// Name returns the detector name
func (d *LimitDetector) Name() string {
	return d.kind.String() + "_limits"
}

// IsEnabled returns whether the detector is enabled
func (d *LimitDetector) IsEnabled() bool {
	return d.enabled && len(d.limits) > 0
}

// Detect walks the tree and checks every unit of the detector's kind
func (d *LimitDetector) Detect(ctx context.Context, project *model.Unit) ([]model.Finding, error) {
	var findings []model.Finding

	for _, file := range project.Children() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch d.kind {
		case model.UnitFile:
			findings = append(findings, d.check(file, file.Name())...)
		case model.UnitFunction:
			for _, fn := range file.Children() {
				if fn.Kind() == model.UnitFunction {
					findings = append(findings, d.check(fn, file.Name())...)
				}
			}
		}
	}

	util.Debug("%s: %d findings", d.Name(), len(findings))
	return findings, nil
}

func (d *LimitDetector) check(u *model.Unit, filePath string) []model.Finding {
	var findings []model.Finding
	for _, l := range d.limits {
		value := u.Count(l.metric)
		if value <= l.max {
			continue
		}
		findings = append(findings, model.Finding{
			Rule:     d.kind.String() + "/" + l.metric.String(),
			Severity: model.SeverityFor(value, l.max),
			Kind:     d.kind.String(),
			FilePath: filePath,
			Entity:   u.Name(),
			Metric:   l.metric.String(),
			Value:    value,
			Limit:    l.max,
		})
	}
	return findings
}
