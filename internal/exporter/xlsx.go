package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/uniomni/survey/internal/errors"
	"github.com/uniomni/survey/internal/report"
	"github.com/uniomni/survey/internal/skillgap"
)

// SummarySheet is the name of the per-skill summary sheet
const SummarySheet = "Summary"

// RankingSheet returns the sheet name holding the ranking for metric m
func RankingSheet(m skillgap.Metric) string {
	name := m.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// SaveToXLSX writes a workbook with the summary sheet and one ranking sheet
// per metric
func SaveToXLSX(result *skillgap.Result, outputPath string) error {
	if result == nil || len(result.Skills) == 0 {
		return apperrors.NewConsistencyError("no skill metrics to save")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return apperrors.NewIOError("create summary sheet", err)
	}
	rows := make([][]interface{}, 0, len(result.Skills))
	for _, sm := range result.Skills {
		rows = append(rows, []interface{}{
			sm.Skill.Code, sm.Skill.Name, sm.Need, sm.Gap, sm.Unsustainability, sm.Respondents,
		})
	}
	if err := writeSheet(f, SummarySheet, SummaryHeaders, rows); err != nil {
		return err
	}

	for _, m := range skillgap.Metrics {
		sheet := RankingSheet(m)
		if _, err := f.NewSheet(sheet); err != nil {
			return apperrors.NewIOError(fmt.Sprintf("create %s sheet", sheet), err)
		}
		entries := report.Rank(result.Skills, m)
		rows := make([][]interface{}, 0, len(entries))
		for i, e := range entries {
			rows = append(rows, []interface{}{i + 1, e.Skill.Code, e.Skill.Name, e.Value})
		}
		headers := []string{"Rank", "Code", "Skill", "Average " + m.String()}
		if err := writeSheet(f, sheet, headers, rows); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return apperrors.NewIOError("create output directory", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("save workbook %s", outputPath), err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return apperrors.NewIOError("header cell", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return apperrors.NewIOError(fmt.Sprintf("write %s header", sheet), err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "B", 12); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("size %s columns", sheet), err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewIOError("row cell", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewIOError(fmt.Sprintf("write %s row %d", sheet, i+2), err)
		}
	}
	return nil
}
