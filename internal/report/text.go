package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/uniomni/survey/internal/skillgap"
)

// Report layouts
const (
	FormatText  = "text"
	FormatTable = "table"
)

// Options controls which listings are printed and how
type Options struct {
	Format           string
	Unsustainability bool
}

// DefaultOptions prints all three listings as plain text
func DefaultOptions() Options {
	return Options{Format: FormatText, Unsustainability: true}
}

// WriteText prints one ranking under a banner naming the metric
func WriteText(w io.Writer, entries []Entry, label string) error {
	bw := bufio.NewWriter(w)

	header := fmt.Sprintf("Skills sorted by average %s:", label)
	line := strings.Repeat("-", len(header))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, line)
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, line)

	for _, e := range entries {
		fmt.Fprintf(bw, "%.2f: %s (%s)\n", e.Value, e.Skill.Name, e.Skill.Code)
	}
	return bw.Flush()
}

// WriteReport prints the respondent count followed by the need and gap
// rankings and, unless disabled, the unsustainability ranking
func WriteReport(w io.Writer, result *skillgap.Result, opts Options) error {
	if _, err := fmt.Fprintf(w, "Number of respondents: %d\n", result.Respondents); err != nil {
		return err
	}

	write := WriteText
	switch opts.Format {
	case "", FormatText:
	case FormatTable:
		write = WriteTable
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}

	for _, m := range skillgap.Metrics {
		if m == skillgap.MetricUnsustainability && !opts.Unsustainability {
			continue
		}
		if err := write(w, Rank(result.Skills, m), m.String()); err != nil {
			return fmt.Errorf("write %s ranking: %w", m, err)
		}
	}
	return nil
}
