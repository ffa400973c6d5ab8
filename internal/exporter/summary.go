package exporter

import (
	"fmt"

	apperrors "github.com/uniomni/survey/internal/errors"
	"github.com/uniomni/survey/internal/skillgap"
)

// SummaryHeaders are the columns of the per-skill summary
var SummaryHeaders = []string{"Code", "Skill", "Need", "Gap", "Unsustainability", "Respondents"}

// SaveToCSV writes one summary row per skill, in catalogue order. With bom
// set the file starts with a UTF-8 byte order mark so Excel reads skill names
// as UTF-8.
func SaveToCSV(result *skillgap.Result, outputPath string, bom bool) error {
	return NewCSVWriter(nil).SaveSummary(result, outputPath, bom)
}

// SaveSummary writes one summary row per skill, in catalogue order
func (w *CSVWriter) SaveSummary(result *skillgap.Result, outputPath string, bom bool) error {
	if result == nil || len(result.Skills) == 0 {
		return apperrors.NewConsistencyError("no skill metrics to save")
	}

	err := w.WriteCSV(outputPath, WriteOptions{
		Headers:   SummaryHeaders,
		Records:   summaryRecords(result),
		BOMPrefix: bom,
	})
	if err != nil {
		return apperrors.NewIOError(fmt.Sprintf("write summary %s", outputPath), err)
	}
	return nil
}

func summaryRecords(result *skillgap.Result) [][]string {
	records := make([][]string, 0, len(result.Skills))
	for _, sm := range result.Skills {
		records = append(records, []string{
			sm.Skill.Code,
			sm.Skill.Name,
			formatFloat(sm.Need),
			formatFloat(sm.Gap),
			formatFloat(sm.Unsustainability),
			formatInt(sm.Respondents),
		})
	}
	return records
}
