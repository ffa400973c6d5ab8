package skillgap

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// ValidationError describes an invalid policy field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidatePolicy checks that the coding table is usable and that every
// substitute lies on the scale
func ValidatePolicy(p Policy) error {
	if len(p.Scale) < 2 {
		return &ValidationError{
			Field:   "Scale",
			Message: "scale needs at least two labelled values",
			Value:   len(p.Scale),
		}
	}

	for label, v := range p.Scale {
		if strings.TrimSpace(label) == "" {
			return &ValidationError{Field: "Scale", Message: "scale labels must not be blank"}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{
				Field:   "Scale",
				Message: fmt.Sprintf("value for %q must be finite", label),
				Value:   v,
			}
		}
	}

	if strings.TrimSpace(p.DontKnowLabel) == "" {
		return &ValidationError{Field: "DontKnowLabel", Message: "don't know label is required"}
	}
	if _, clash := p.Scale[p.DontKnowLabel]; clash {
		return &ValidationError{
			Field:   "DontKnowLabel",
			Message: "don't know label must not also be a scale label",
			Value:   p.DontKnowLabel,
		}
	}
	for _, m := range p.MissingMarkers {
		if _, clash := p.Scale[m]; clash || m == p.DontKnowLabel {
			return &ValidationError{
				Field:   "MissingMarkers",
				Message: "missing marker must not also be a response label",
				Value:   m,
			}
		}
	}

	lo, hi := p.Bounds()
	for _, d := range Dimensions {
		s := p.Substitutes(d)
		for name, v := range map[string]float64{"DontKnow": s.DontKnow, "Missing": s.Missing} {
			if math.IsNaN(v) || v < lo || v > hi {
				return &ValidationError{
					Field:   fmt.Sprintf("%s.%s", d, name),
					Message: fmt.Sprintf("substitute must lie on the scale [%g, %g]", lo, hi),
					Value:   v,
				}
			}
		}
	}

	return nil
}

// validateResolved checks the invariants of a resolved skill record
func validateResolved(skill Skill, need, access, sustain []float64) error {
	n := len(need)
	if len(access) != n || len(sustain) != n {
		return apperrors.NewConsistencyError(fmt.Sprintf(
			"number of responses differs across dimensions for %s: need=%d access=%d sustain=%d",
			skill.Code, n, len(access), len(sustain))).
			WithContext("skill", skill.Code)
	}
	for _, d := range Dimensions {
		v := pick(d, need, access, sustain)
		if floats.HasNaN(v) {
			return apperrors.NewConsistencyError(fmt.Sprintf(
				"unresolved value left in %s responses for %s", d, skill.Code)).
				WithContext("skill", skill.Code)
		}
	}
	return nil
}

func pick(d Dimension, need, access, sustain []float64) []float64 {
	switch d {
	case DimensionAccess:
		return access
	case DimensionSustain:
		return sustain
	default:
		return need
	}
}
