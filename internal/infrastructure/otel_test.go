package infrastructure

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/uniomni/survey/internal/config"
	"github.com/uniomni/survey/internal/skillgap"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleResult() *skillgap.Result {
	return &skillgap.Result{
		Respondents: 3,
		Skills: []skillgap.SkillMetrics{
			{Skill: skillgap.Skill{Code: "PROG", Name: "Programming/software development"}, Need: 1.5, Gap: 2, Unsustainability: 0.25, Respondents: 3},
			{Skill: skillgap.Skill{Code: "TEST", Name: "Testing"}, Need: 0.5, Gap: -1, Unsustainability: 1, Respondents: 3},
		},
		Responses: map[skillgap.Dimension]skillgap.ResponseCounts{
			skillgap.DimensionNeed:    {Answered: 6},
			skillgap.DimensionAccess:  {Answered: 5, Missing: 1},
			skillgap.DimensionSustain: {Answered: 4, DontKnow: 2},
		},
	}
}

func TestInitTelemetry_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.prom")
	tel, err := InitTelemetry(config.TelemetryConfig{ServiceName: "rankskills-test", MetricsFile: path}, nil, quietLogger())
	require.NoError(t, err)
	defer tel.Shutdown(context.Background())

	assert.Nil(t, tel.TracerProvider)
	require.NotNil(t, tel.Meter)

	metrics, err := NewRunMetrics(tel.Meter)
	require.NoError(t, err)
	metrics.Record(context.Background(), sampleResult(), 1500*time.Millisecond)

	require.NoError(t, tel.WriteMetrics())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "survey_respondents")
	assert.Contains(t, out, "survey_cells_total")
	assert.Contains(t, out, `dimension="sustain"`)
	assert.Contains(t, out, `kind="dont_know"`)
	assert.Contains(t, out, "skill_need")
	assert.Contains(t, out, "skill_gap")
	assert.Contains(t, out, "skill_unsustainability")
	assert.Contains(t, out, `skill_code="PROG"`)
	assert.Contains(t, out, "pipeline_duration_seconds")
}

func TestWriteMetrics_NoFile(t *testing.T) {
	tel, err := InitTelemetry(config.TelemetryConfig{ServiceName: "rankskills-test"}, nil, quietLogger())
	require.NoError(t, err)
	defer tel.Shutdown(context.Background())

	assert.NoError(t, tel.WriteMetrics())
}

func TestInitTelemetry_Trace(t *testing.T) {
	var spans bytes.Buffer
	tel, err := InitTelemetry(config.TelemetryConfig{ServiceName: "rankskills-test", Trace: true}, &spans, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)

	_, span := otel.Tracer("test").Start(context.Background(), "skillgap.Calculate")
	span.End()

	require.NoError(t, tel.Shutdown(context.Background()))
	assert.Contains(t, spans.String(), "skillgap.Calculate")
	assert.Contains(t, spans.String(), "rankskills-test")
}
