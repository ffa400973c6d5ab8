package skillgap

import (
	"errors"
	"fmt"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// Coder maps survey cell text to coded responses
type Coder struct {
	scale    map[string]float64
	dontKnow string
	missing  map[string]struct{}
}

// NewCoder builds a coder from the policy's coding table
func NewCoder(p Policy) *Coder {
	c := &Coder{
		scale:    make(map[string]float64, len(p.Scale)),
		dontKnow: p.DontKnowLabel,
		missing:  make(map[string]struct{}, len(p.MissingMarkers)),
	}
	for label, v := range p.Scale {
		c.scale[label] = v
	}
	for _, m := range p.MissingMarkers {
		c.missing[m] = struct{}{}
	}
	return c
}

// Code converts one cell. Labels match exactly; text outside the coding
// table, including a label with stray whitespace, is an error.
func (c *Coder) Code(raw string) (Response, error) {
	if _, ok := c.missing[raw]; ok {
		return unresolved(Missing), nil
	}
	if raw == c.dontKnow {
		return unresolved(DontKnow), nil
	}
	if v, ok := c.scale[raw]; ok {
		return answered(v), nil
	}
	return Response{}, apperrors.NewResponseError(fmt.Sprintf("unrecognized response %q", raw)).
		WithContext("value", raw)
}

// CodeColumn converts every cell of a column
func (c *Coder) CodeColumn(cells []string) ([]Response, error) {
	out := make([]Response, len(cells))
	for i, cell := range cells {
		r, err := c.Code(cell)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				appErr.WithContext("respondent", i+1)
			}
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// CodeSkill converts the three columns located for a skill
func (c *Coder) CodeSkill(t Table, cols SkillColumns) (RawResponses, error) {
	raw := RawResponses{Skill: cols.Skill}
	for _, d := range Dimensions {
		responses, err := c.CodeColumn(t.Cells(cols.Index(d)))
		if err != nil {
			return RawResponses{}, fmt.Errorf("%s %s column: %w", cols.Skill.Code, d, err)
		}
		switch d {
		case DimensionNeed:
			raw.Need = responses
		case DimensionAccess:
			raw.Access = responses
		case DimensionSustain:
			raw.Sustain = responses
		}
	}
	return raw, nil
}
