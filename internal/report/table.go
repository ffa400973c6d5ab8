package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable prints one ranking as a bordered table
func WriteTable(w io.Writer, entries []Entry, label string) error {
	if _, err := fmt.Fprintf(w, "\nSkills sorted by average %s:\n", label); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Code", "Skill", "Average " + label})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, e := range entries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.Skill.Code,
			e.Skill.Name,
			fmt.Sprintf("%.2f", e.Value),
		})
	}
	table.Render()
	return nil
}
