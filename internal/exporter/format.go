package exporter

import (
	"fmt"
	"strconv"
)

// formatFloat formats a metric for CSV output with exactly 4 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatInt formats a count for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
