package report

import (
	"sort"

	"github.com/uniomni/survey/internal/skillgap"
)

// Entry is one line of a ranking
type Entry struct {
	Skill skillgap.Skill
	Value float64
}

// Rank orders the skills by the given metric, highest first. Exact ties keep
// catalogue order.
func Rank(skills []skillgap.SkillMetrics, metric skillgap.Metric) []Entry {
	entries := make([]Entry, len(skills))
	for i, sm := range skills {
		entries[i] = Entry{Skill: sm.Skill, Value: sm.Value(metric)}
	}
	sortDescending(entries)
	return entries
}

// RankValues orders a code to value mapping, highest first. Names are taken
// from the catalogue; codes it does not know are shown as their own name.
// Ties are broken by catalogue order, unknown codes last in code order.
func RankValues(c *skillgap.Catalogue, values map[string]float64) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, s := range c.Skills() {
		if v, ok := values[s.Code]; ok {
			entries = append(entries, Entry{Skill: s, Value: v})
		}
	}

	var unknown []string
	for code := range values {
		if _, ok := c.Lookup(code); !ok {
			unknown = append(unknown, code)
		}
	}
	sort.Strings(unknown)
	for _, code := range unknown {
		entries = append(entries, Entry{Skill: skillgap.Skill{Code: code, Name: code}, Value: values[code]})
	}

	sortDescending(entries)
	return entries
}

func sortDescending(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
}
