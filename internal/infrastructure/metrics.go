package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/uniomni/survey/internal/skillgap"
)

// RunMetrics holds the instruments recorded once per ranking run
type RunMetrics struct {
	respondents      metric.Int64Gauge
	cells            metric.Int64Counter
	need             metric.Float64Gauge
	gap              metric.Float64Gauge
	unsustainability metric.Float64Gauge
	duration         metric.Float64Histogram
}

// NewRunMetrics creates the run instruments on meter
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	respondents, err := meter.Int64Gauge(
		"survey_respondents",
		metric.WithDescription("Number of respondents in the survey"),
	)
	if err != nil {
		return nil, err
	}

	cells, err := meter.Int64Counter(
		"survey_cells",
		metric.WithDescription("Coded survey cells by dimension and kind"),
	)
	if err != nil {
		return nil, err
	}

	need, err := meter.Float64Gauge(
		"skill_need",
		metric.WithDescription("Average need per skill"),
	)
	if err != nil {
		return nil, err
	}

	gap, err := meter.Float64Gauge(
		"skill_gap",
		metric.WithDescription("Average per respondent gap per skill"),
	)
	if err != nil {
		return nil, err
	}

	unsustainability, err := meter.Float64Gauge(
		"skill_unsustainability",
		metric.WithDescription("Average access minus average sustainability per skill"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"pipeline_duration",
		metric.WithDescription("Duration of the ranking pipeline"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		respondents:      respondents,
		cells:            cells,
		need:             need,
		gap:              gap,
		unsustainability: unsustainability,
		duration:         duration,
	}, nil
}

// Record stores the outcome of one run
func (m *RunMetrics) Record(ctx context.Context, result *skillgap.Result, duration time.Duration) {
	m.respondents.Record(ctx, int64(result.Respondents))

	for _, d := range skillgap.Dimensions {
		counts := result.Responses[d]
		for kind, n := range map[skillgap.ResponseKind]int{
			skillgap.Answered: counts.Answered,
			skillgap.DontKnow: counts.DontKnow,
			skillgap.Missing:  counts.Missing,
		} {
			m.cells.Add(ctx, int64(n), metric.WithAttributes(
				attribute.String("dimension", d.String()),
				attribute.String("kind", kind.String()),
			))
		}
	}

	for _, sm := range result.Skills {
		attrs := metric.WithAttributes(attribute.String("skill_code", sm.Skill.Code))
		m.need.Record(ctx, sm.Need, attrs)
		m.gap.Record(ctx, sm.Gap, attrs)
		m.unsustainability.Record(ctx, sm.Unsustainability, attrs)
	}

	m.duration.Record(ctx, duration.Seconds())
}
