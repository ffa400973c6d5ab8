package skillgap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// Aggregate computes the need, gap and unsustainability of one skill
//
//	need             = mean(N)
//	gap              = mean(N_i - min(A_i, S_i))
//	unsustainability = mean(A) - mean(S)
//
// The gap is averaged per respondent, which in general differs from the
// shortfall of the averages.
func Aggregate(r SkillResponses) (SkillMetrics, error) {
	if r.Len() == 0 {
		return SkillMetrics{}, apperrors.NewConsistencyError(fmt.Sprintf(
			"no responses to aggregate for %s", r.skill.Code)).
			WithContext("skill", r.skill.Code)
	}

	return SkillMetrics{
		Skill:            r.skill,
		Need:             stat.Mean(r.need, nil),
		Gap:              MeanGap(r.need, r.access, r.sustain),
		Unsustainability: stat.Mean(r.access, nil) - stat.Mean(r.sustain, nil),
		Respondents:      r.Len(),
	}, nil
}

// MeanGap returns the mean over respondents of need minus the lesser of
// access and sustainability. The slices must be respondent aligned.
func MeanGap(need, access, sustain []float64) float64 {
	shortfall := make([]float64, len(need))
	for i := range need {
		shortfall[i] = need[i] - math.Min(access[i], sustain[i])
	}
	return stat.Mean(shortfall, nil)
}
