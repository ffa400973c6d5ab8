package skillgap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/uniomni/survey/internal/errors"
)

const tracerName = "github.com/uniomni/survey/internal/skillgap"

// Calculator runs the locate, code, resolve and aggregate stages over a survey table
type Calculator struct {
	catalogue *Catalogue
	policy    Policy
	coder     *Coder
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewCalculator creates a calculator for the given catalogue and policy
func NewCalculator(catalogue *Catalogue, policy Policy, logger *slog.Logger) (*Calculator, error) {
	if catalogue == nil {
		return nil, fmt.Errorf("catalogue is required")
	}
	if err := ValidatePolicy(policy); err != nil {
		return nil, apperrors.NewConfigError("invalid scoring policy", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Calculator{
		catalogue: catalogue,
		policy:    policy,
		coder:     NewCoder(policy),
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}, nil
}

// Calculate computes the metrics of every catalogue skill. Either every skill
// is computed or an error is returned; there is no partial result.
func (c *Calculator) Calculate(ctx context.Context, t Table) (*Result, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "skillgap.Calculate",
		trace.WithAttributes(
			attribute.Int("survey.columns", t.NumColumns()),
			attribute.Int("survey.respondents", t.NumRows()),
			attribute.Int("catalogue.skills", c.catalogue.Len()),
		))
	defer span.End()

	result, err := c.calculate(ctx, t)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.ErrorContext(ctx, "skill ranking failed", "error", err)
		return nil, err
	}

	c.logger.InfoContext(ctx, "skill ranking completed",
		"skills", len(result.Skills),
		"respondents", result.Respondents,
		"duration", time.Since(start),
	)
	return result, nil
}

func (c *Calculator) calculate(ctx context.Context, t Table) (*Result, error) {
	respondents := t.NumRows()
	c.logger.InfoContext(ctx, "starting skill ranking",
		"respondents", respondents,
		"columns", t.NumColumns(),
		"skills", c.catalogue.Len(),
	)
	if respondents == 0 {
		return nil, apperrors.NewConsistencyError("survey has no respondents")
	}

	columns, err := c.locate(ctx, t)
	if err != nil {
		return nil, err
	}

	raw, err := c.code(ctx, t, columns, respondents)
	if err != nil {
		return nil, err
	}

	resolved, err := c.resolve(ctx, raw)
	if err != nil {
		return nil, err
	}

	skills, err := c.aggregate(ctx, resolved)
	if err != nil {
		return nil, err
	}

	return &Result{
		Respondents: respondents,
		Skills:      skills,
		Responses:   countResponses(raw),
	}, nil
}

func (c *Calculator) locate(ctx context.Context, t Table) ([]SkillColumns, error) {
	_, span := c.tracer.Start(ctx, "skillgap.locate")
	defer span.End()

	columns, err := LocateAll(t, c.catalogue)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("locate columns: %w", err)
	}
	for _, cols := range columns {
		c.logger.DebugContext(ctx, "located skill columns",
			"skill", cols.Skill.Code,
			"need", cols.Need,
			"access", cols.Access,
			"sustain", cols.Sustain,
		)
	}
	return columns, nil
}

func (c *Calculator) code(ctx context.Context, t Table, columns []SkillColumns, respondents int) ([]RawResponses, error) {
	_, span := c.tracer.Start(ctx, "skillgap.code")
	defer span.End()

	out := make([]RawResponses, 0, len(columns))
	for _, cols := range columns {
		for _, d := range Dimensions {
			if n := len(t.Cells(cols.Index(d))); n != respondents {
				err := apperrors.NewConsistencyError(fmt.Sprintf(
					"%s %s column has %d responses, expected %d", cols.Skill.Code, d, n, respondents)).
					WithContext("skill", cols.Skill.Code).
					WithContext("column", cols.Index(d))
				span.RecordError(err)
				return nil, err
			}
		}
		raw, err := c.coder.CodeSkill(t, cols)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("code responses: %w", err)
		}
		out = append(out, raw)
	}
	return out, nil
}

func (c *Calculator) resolve(ctx context.Context, raw []RawResponses) ([]SkillResponses, error) {
	_, span := c.tracer.Start(ctx, "skillgap.resolve")
	defer span.End()

	out := make([]SkillResponses, 0, len(raw))
	for _, r := range raw {
		resolved, err := Resolve(r, c.policy)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("resolve responses: %w", err)
		}
		out = append(out, resolved)
	}
	return out, nil
}

func (c *Calculator) aggregate(ctx context.Context, resolved []SkillResponses) ([]SkillMetrics, error) {
	_, span := c.tracer.Start(ctx, "skillgap.aggregate")
	defer span.End()

	out := make([]SkillMetrics, 0, len(resolved))
	for _, r := range resolved {
		m, err := Aggregate(r)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("aggregate responses: %w", err)
		}
		c.logger.DebugContext(ctx, "aggregated skill",
			"skill", m.Skill.Code,
			"need", m.Need,
			"gap", m.Gap,
			"unsustainability", m.Unsustainability,
		)
		out = append(out, m)
	}
	return out, nil
}

func countResponses(raw []RawResponses) map[Dimension]ResponseCounts {
	counts := make(map[Dimension]ResponseCounts, len(Dimensions))
	for _, r := range raw {
		for _, d := range Dimensions {
			tally := counts[d]
			for _, resp := range r.Dimension(d) {
				tally.Add(resp.Kind)
			}
			counts[d] = tally
		}
	}
	return counts
}
