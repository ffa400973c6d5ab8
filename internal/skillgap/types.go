package skillgap

import (
	"math"
)

// Dimension identifies one of the three ratings collected per skill
type Dimension int

const (
	// DimensionNeed is how much the skill is needed
	DimensionNeed Dimension = iota
	// DimensionAccess is how well the skill can be accessed
	DimensionAccess
	// DimensionSustain is how sustainable that access is
	DimensionSustain
)

// Dimensions lists the dimensions in survey column order
var Dimensions = [...]Dimension{DimensionNeed, DimensionAccess, DimensionSustain}

// String returns the header keyword for the dimension
func (d Dimension) String() string {
	switch d {
	case DimensionNeed:
		return "need"
	case DimensionAccess:
		return "access"
	case DimensionSustain:
		return "sustain"
	default:
		return "unknown"
	}
}

// Skill is a catalogue entry
type Skill struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// ResponseKind classifies a coded cell
type ResponseKind int

const (
	// Answered is a rating on the agreement scale
	Answered ResponseKind = iota
	// DontKnow is an explicit "Don't Know" answer
	DontKnow
	// Missing is a blank cell
	Missing
)

// String returns the metric label for the kind
func (k ResponseKind) String() string {
	switch k {
	case Answered:
		return "answered"
	case DontKnow:
		return "dont_know"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// Response is a single coded cell. Value is NaN unless Kind is Answered.
type Response struct {
	Kind  ResponseKind
	Value float64
}

// answered returns a coded rating
func answered(v float64) Response {
	return Response{Kind: Answered, Value: v}
}

// unresolved returns a NaN placeholder of the given kind
func unresolved(kind ResponseKind) Response {
	return Response{Kind: kind, Value: math.NaN()}
}

// SkillColumns holds the table column indices located for one skill
type SkillColumns struct {
	Skill   Skill
	Need    int
	Access  int
	Sustain int
}

// Index returns the column index for dimension d
func (c SkillColumns) Index(d Dimension) int {
	switch d {
	case DimensionAccess:
		return c.Access
	case DimensionSustain:
		return c.Sustain
	default:
		return c.Need
	}
}

// RawResponses holds the coded, not yet resolved, responses for one skill
type RawResponses struct {
	Skill   Skill
	Need    []Response
	Access  []Response
	Sustain []Response
}

// Dimension returns the coded responses for dimension d
func (r RawResponses) Dimension(d Dimension) []Response {
	switch d {
	case DimensionAccess:
		return r.Access
	case DimensionSustain:
		return r.Sustain
	default:
		return r.Need
	}
}

// ResponseCounts tallies coded cells by kind
type ResponseCounts struct {
	Answered int `json:"answered"`
	DontKnow int `json:"dont_know"`
	Missing  int `json:"missing"`
}

// Add counts one response
func (c *ResponseCounts) Add(kind ResponseKind) {
	switch kind {
	case Answered:
		c.Answered++
	case DontKnow:
		c.DontKnow++
	case Missing:
		c.Missing++
	}
}

// Total returns the number of counted cells
func (c ResponseCounts) Total() int {
	return c.Answered + c.DontKnow + c.Missing
}

// Metric selects one of the derived per-skill scalars
type Metric int

const (
	// MetricNeed is the average need
	MetricNeed Metric = iota
	// MetricGap is the average per-respondent shortfall of need over min(access, sustainability)
	MetricGap
	// MetricUnsustainability is mean access minus mean sustainability
	MetricUnsustainability
)

// Metrics lists the metrics in report order
var Metrics = [...]Metric{MetricNeed, MetricGap, MetricUnsustainability}

// String returns the report label of the metric
func (m Metric) String() string {
	switch m {
	case MetricNeed:
		return "need"
	case MetricGap:
		return "gap"
	case MetricUnsustainability:
		return "unsustainability"
	default:
		return "unknown"
	}
}

// SkillMetrics contains the derived metrics for a skill
type SkillMetrics struct {
	Skill            Skill   `json:"skill"`
	Need             float64 `json:"need"`
	Gap              float64 `json:"gap"`
	Unsustainability float64 `json:"unsustainability"`
	Respondents      int     `json:"respondents"`
}

// Value returns the value of metric m
func (sm SkillMetrics) Value(m Metric) float64 {
	switch m {
	case MetricGap:
		return sm.Gap
	case MetricUnsustainability:
		return sm.Unsustainability
	default:
		return sm.Need
	}
}

// Result is the outcome of one pipeline run
type Result struct {
	Respondents int                          `json:"respondents"`
	Skills      []SkillMetrics               `json:"skills"` // catalogue order
	Responses   map[Dimension]ResponseCounts `json:"responses"`
}
