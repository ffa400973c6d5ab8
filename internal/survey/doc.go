// Package survey loads survey exports into an immutable column table.
//
// An export has two header rows followed by one row per respondent. The first
// header row carries the question text, which for a matrix question is only
// filled in above its first column; the second carries the per-column answer
// label. CSV and XLSX exports are supported:
//
//	table, err := survey.Load("DSMS_Survey_20210803.csv")
package survey
