// Package report ranks skill metrics and prints them.
//
// Rank sorts one metric across skills, highest first; WriteReport prints the
// respondent count and the need, gap and unsustainability listings as plain
// text or as tables.
//
//	result, err := calculator.Calculate(ctx, table)
//	if err != nil {
//		return err
//	}
//	err = report.WriteReport(os.Stdout, result, report.DefaultOptions())
package report
