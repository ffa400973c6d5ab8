// Package exporter writes skill ranking results to files.
//
// This package contains two exports:
//
// SaveToCSV: one row per skill in catalogue order with the need, gap and
// unsustainability averages and the respondent count. Values are written with
// four decimals so the file can be diffed between runs.
//
// SaveToXLSX: a workbook with the same summary on a "Summary" sheet and one
// sheet per metric ("Need", "Gap", "Unsustainability") holding the descending
// ranking.
//
// Example usage:
//
//	result, err := calculator.Calculate(ctx, table)
//	if err != nil {
//		return err
//	}
//	if err := exporter.SaveToCSV(result, "out/skills.csv", false); err != nil {
//		return err
//	}
//	err = exporter.SaveToXLSX(result, "out/skills.xlsx")
package exporter
