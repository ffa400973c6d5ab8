package skillgap

import (
	"fmt"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// SkillResponses holds the fully resolved response vectors for one skill.
// It is only built through NewSkillResponses or Resolve and never modified.
type SkillResponses struct {
	skill   Skill
	need    []float64
	access  []float64
	sustain []float64
}

// NewSkillResponses validates and stores resolved vectors. The vectors are
// copied; they must have equal length and contain no NaN.
func NewSkillResponses(skill Skill, need, access, sustain []float64) (SkillResponses, error) {
	if err := validateResolved(skill, need, access, sustain); err != nil {
		return SkillResponses{}, err
	}
	return SkillResponses{
		skill:   skill,
		need:    clone(need),
		access:  clone(access),
		sustain: clone(sustain),
	}, nil
}

// Skill returns the skill the responses belong to
func (r SkillResponses) Skill() Skill { return r.skill }

// Len returns the number of respondents
func (r SkillResponses) Len() int { return len(r.need) }

// Need returns a copy of the need vector
func (r SkillResponses) Need() []float64 { return clone(r.need) }

// Access returns a copy of the access vector
func (r SkillResponses) Access() []float64 { return clone(r.access) }

// Sustain returns a copy of the sustainability vector
func (r SkillResponses) Sustain() []float64 { return clone(r.sustain) }

// Resolve replaces "Don't Know" and missing responses with the policy's
// per-dimension substitutes
func Resolve(raw RawResponses, p Policy) (SkillResponses, error) {
	n := len(raw.Need)
	if len(raw.Access) != n || len(raw.Sustain) != n {
		return SkillResponses{}, apperrors.NewConsistencyError(fmt.Sprintf(
			"number of responses differs across dimensions for %s: need=%d access=%d sustain=%d",
			raw.Skill.Code, n, len(raw.Access), len(raw.Sustain))).
			WithContext("skill", raw.Skill.Code)
	}

	return NewSkillResponses(raw.Skill,
		resolveVector(raw.Need, p.Need),
		resolveVector(raw.Access, p.Access),
		resolveVector(raw.Sustain, p.Sustain),
	)
}

func resolveVector(responses []Response, s Substitutes) []float64 {
	out := make([]float64, len(responses))
	for i, r := range responses {
		switch r.Kind {
		case DontKnow:
			out[i] = s.DontKnow
		case Missing:
			out[i] = s.Missing
		default:
			out[i] = r.Value
		}
	}
	return out
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
