package skillgap

import (
	"fmt"
	"strings"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// Table is the read-only view of a loaded survey used by the pipeline.
// Question is the first header row, Label the second.
type Table interface {
	NumColumns() int
	NumRows() int
	Question(col int) string
	Label(col int) string
	Cells(col int) []string
}

// LocateColumns finds the need, access and sustainability columns for skill.
// The first column whose question contains the skill code is the need column;
// the two columns after it are taken by position and their labels checked.
func LocateColumns(t Table, skill Skill) (SkillColumns, error) {
	need := -1
	for i := 0; i < t.NumColumns(); i++ {
		if strings.Contains(t.Question(i), skill.Code) {
			need = i
			break
		}
	}
	if need < 0 {
		return SkillColumns{}, apperrors.NewLookupError(fmt.Sprintf(
			"skill %s (%s) not found in survey header", skill.Code, skill.Name)).
			WithContext("skill", skill.Code)
	}

	if need+2 >= t.NumColumns() {
		return SkillColumns{}, apperrors.NewFormatError(fmt.Sprintf(
			"need column %d for %s is not followed by access and sustainability columns",
			need, skill.Code)).
			WithContext("skill", skill.Code).
			WithContext("column", need)
	}

	cols := SkillColumns{
		Skill:   skill,
		Need:    need,
		Access:  need + 1,
		Sustain: need + 2,
	}
	for _, d := range Dimensions {
		if err := checkKeyword(t, cols.Index(d), d, skill); err != nil {
			return SkillColumns{}, err
		}
	}
	return cols, nil
}

// LocateAll locates the columns of every catalogue skill
func LocateAll(t Table, c *Catalogue) ([]SkillColumns, error) {
	out := make([]SkillColumns, 0, c.Len())
	for _, skill := range c.Skills() {
		cols, err := LocateColumns(t, skill)
		if err != nil {
			return nil, err
		}
		out = append(out, cols)
	}
	return out, nil
}

func checkKeyword(t Table, col int, d Dimension, skill Skill) error {
	label := t.Label(col)
	if strings.Contains(strings.ToLower(label), d.String()) {
		return nil
	}
	return apperrors.NewFormatError(fmt.Sprintf(
		"expected keyword %q not found in header %q (column %d, skill %s)",
		d.String(), label, col, skill.Code)).
		WithContext("skill", skill.Code).
		WithContext("column", col).
		WithContext("dimension", d.String())
}
