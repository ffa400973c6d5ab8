package skillgap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uniomni/survey/internal/survey"
)

var (
	prog = Skill{Code: "PROG", Name: "Programming/software development"}
	test = Skill{Code: "TEST", Name: "Testing"}
)

// header returns the two header rows for the given skills, preceded by a
// respondent id column
func header(skills ...Skill) (questions, labels []string) {
	questions = []string{"Respondent ID"}
	labels = []string{""}
	for _, s := range skills {
		questions = append(questions, "Rate "+s.Name+" ("+s.Code+")", "", "")
		labels = append(labels, s.Name+" - need", s.Name+" - access", s.Name+" - sustainability")
	}
	return questions, labels
}

func newTable(t *testing.T, questions, labels []string, rows ...[]string) *survey.Table {
	t.Helper()
	table, err := survey.NewTable(questions, labels, rows)
	require.NoError(t, err)
	return table
}

func mustCatalogue(t *testing.T, skills ...Skill) *Catalogue {
	t.Helper()
	c, err := NewCatalogue(skills...)
	require.NoError(t, err)
	return c
}
