package skillgap

import (
	"fmt"
	"strings"
)

// Catalogue is an ordered, immutable set of skills
type Catalogue struct {
	skills []Skill
	index  map[string]int
}

// NewCatalogue builds a catalogue, rejecting empty and duplicate codes
func NewCatalogue(skills ...Skill) (*Catalogue, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("catalogue must contain at least one skill")
	}
	c := &Catalogue{
		skills: make([]Skill, 0, len(skills)),
		index:  make(map[string]int, len(skills)),
	}
	for _, s := range skills {
		if strings.TrimSpace(s.Code) == "" {
			return nil, fmt.Errorf("skill %q has an empty code", s.Name)
		}
		if _, dup := c.index[s.Code]; dup {
			return nil, fmt.Errorf("duplicate skill code %q", s.Code)
		}
		c.index[s.Code] = len(c.skills)
		c.skills = append(c.skills, s)
	}
	return c, nil
}

// DefaultCatalogue returns the SFIA skills covered by the digital science
// maturity and skills survey
func DefaultCatalogue() *Catalogue {
	c, err := NewCatalogue(sfiaSkills...)
	if err != nil {
		panic(err)
	}
	return c
}

var sfiaSkills = []Skill{
	{Code: "IRMG", Name: "Information governance"},
	{Code: "SCTY", Name: "Information security"},
	{Code: "INAN", Name: "Analytics"},
	{Code: "VISL", Name: "Data visualisation"},
	{Code: "BPRE", Name: "Business process improvement"},
	{Code: "ARCH", Name: "Solution architecture"},
	{Code: "DATM", Name: "Data management"},
	{Code: "BUAN", Name: "Business analysis"},
	{Code: "DLMG", Name: "Systems development management"},
	{Code: "DESN", Name: "Systems design"},
	{Code: "SWDN", Name: "Software design"},
	{Code: "PROG", Name: "Programming/software development"},
	{Code: "RESD", Name: "Real-time/embedded systems development"},
	{Code: "ADEV", Name: "Animation development"},
	{Code: "DTAN", Name: "Data modelling and design"},
	{Code: "DBDS", Name: "Database design"},
	{Code: "TEST", Name: "Testing"},
	{Code: "HCEV", Name: "User experience design"},
	{Code: "SCMD", Name: "Scientific Modelling"},
	{Code: "NUMA", Name: "Numerical Analysis"},
	{Code: "HPCC", Name: "High Performance Computing"},
	{Code: "DATS", Name: "Machine Learning and Data Science"},
}

// Skills returns the skills in catalogue order
func (c *Catalogue) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Len returns the number of skills
func (c *Catalogue) Len() int {
	return len(c.skills)
}

// Lookup returns the skill with the given code
func (c *Catalogue) Lookup(code string) (Skill, bool) {
	i, ok := c.index[code]
	if !ok {
		return Skill{}, false
	}
	return c.skills[i], true
}

// Name returns the human readable name for code, or the code itself if unknown
func (c *Catalogue) Name(code string) string {
	if s, ok := c.Lookup(code); ok {
		return s.Name
	}
	return code
}
