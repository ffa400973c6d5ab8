package skillgap

import (
	"math"
)

// Agreement scale labels as exported by the survey tool
const (
	StronglyDisagree = "Strongly Disagree"
	Disagree         = "Disagree"
	Neutral          = "Neither agree nor disagree"
	Agree            = "Agree"
	StronglyAgree    = "Strongly Agree"
	DontKnowLabel    = "Don't Know"
)

// Substitutes are the numeric values used in place of unresolved responses
// for one dimension
type Substitutes struct {
	DontKnow float64 `json:"dont_know" yaml:"dont_know" envconfig:"DONT_KNOW"`
	Missing  float64 `json:"missing" yaml:"missing" envconfig:"MISSING"`
}

// Policy is the coding and substitution policy applied to survey cells.
// The defaults use a -2..+2 scale; all constants are policy choices and can
// be overridden from configuration.
type Policy struct {
	Scale          map[string]float64 `json:"scale" yaml:"scale" ignored:"true"`
	DontKnowLabel  string             `json:"dont_know_label" yaml:"dont_know_label" envconfig:"DONT_KNOW_LABEL"`
	MissingMarkers []string           `json:"missing_markers" yaml:"missing_markers" envconfig:"MISSING_MARKERS"`
	Need           Substitutes        `json:"need" yaml:"need" envconfig:"NEED"`
	Access         Substitutes        `json:"access" yaml:"access" envconfig:"ACCESS"`
	Sustain        Substitutes        `json:"sustain" yaml:"sustain" envconfig:"SUSTAIN"`
}

// DefaultPolicy returns the -2..+2 coding with neutral substitutes, except
// that "Don't Know" for sustainability takes the most pessimistic rating.
func DefaultPolicy() Policy {
	return Policy{
		Scale: map[string]float64{
			StronglyDisagree: -2,
			Disagree:         -1,
			Neutral:          0,
			Agree:            1,
			StronglyAgree:    2,
		},
		DontKnowLabel: DontKnowLabel,
		// "nan" is what dataframe based exports write for a blank cell
		MissingMarkers: []string{"", "N/A", "nan"},
		Need:           Substitutes{DontKnow: 0, Missing: 0},
		Access:         Substitutes{DontKnow: 0, Missing: 0},
		Sustain:        Substitutes{DontKnow: -2, Missing: 0},
	}
}

// Substitutes returns the substitutes for dimension d
func (p Policy) Substitutes(d Dimension) Substitutes {
	switch d {
	case DimensionAccess:
		return p.Access
	case DimensionSustain:
		return p.Sustain
	default:
		return p.Need
	}
}

// Bounds returns the lowest and highest values on the scale
func (p Policy) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range p.Scale {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
