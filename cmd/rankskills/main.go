package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/uniomni/survey/internal/config"
	apperrors "github.com/uniomni/survey/internal/errors"
	"github.com/uniomni/survey/internal/exporter"
	"github.com/uniomni/survey/internal/infrastructure"
	"github.com/uniomni/survey/internal/report"
	"github.com/uniomni/survey/internal/skillgap"
	"github.com/uniomni/survey/internal/survey"
)

const usage = `Usage: rankskills [flags] <survey.csv|survey.xlsx>

Ranks skills by average need, gap and unsustainability from a survey export
with two header rows (question, response label) and one row per respondent.

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// flags holds the command line overrides
type flags struct {
	configPath       string
	format           string
	unsustainability bool
	csvPath          string
	csvBOM           bool
	xlsxPath         string
	metricsFile      string
	trace            bool
	logLevel         string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var f flags
	fs.StringVar(&f.configPath, "config", "", "YAML config file (policy, logging, report, telemetry)")
	fs.StringVar(&f.format, "format", report.FormatText, "report layout: text or table")
	fs.BoolVar(&f.unsustainability, "unsustainability", true, "print the unsustainability ranking")
	fs.StringVar(&f.csvPath, "csv", "", "write the per-skill summary to this CSV file")
	fs.BoolVar(&f.csvBOM, "csv-bom", false, "start the CSV summary with a UTF-8 byte order mark for Excel")
	fs.StringVar(&f.xlsxPath, "xlsx", "", "write the summary and rankings to this XLSX workbook")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.BoolVar(&f.trace, "trace", false, "print OpenTelemetry spans to stderr")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return apperrors.ExitOK
		}
		return fail(stderr, nil, apperrors.NewUsageError(err.Error()))
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fail(stderr, nil, apperrors.NewUsageError(fmt.Sprintf(
			"expected exactly one survey file, got %d arguments", fs.NArg())))
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fail(stderr, nil, err)
	}
	applyFlags(fs, &f, cfg)
	if err := cfg.Validate(); err != nil {
		return fail(stderr, nil, err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging, stderr)
	if err != nil {
		return fail(stderr, nil, apperrors.NewConfigError("failed to initialize logger", err))
	}
	// close errors bypass the logger that owns the file
	defer func() {
		warnClose(stderr, "log file", infrastructure.CloseLogFile())
	}()

	ctx := infrastructure.EnsureTraceID(context.Background())

	tel, err := infrastructure.InitTelemetry(cfg.Telemetry, stderr, logger)
	if err != nil {
		return fail(stderr, logger, apperrors.NewConfigError("failed to initialize telemetry", err))
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			logger.Warn("Telemetry shutdown failed", "error", err)
		}
	}()

	if err := rankSkills(ctx, fs.Arg(0), cfg, tel, logger, stdout); err != nil {
		return fail(stderr, logger, err)
	}
	return apperrors.ExitOK
}

// rankSkills loads the survey, computes every metric, writes the exports
// and metrics, and prints the report last so a failure leaves stdout empty
func rankSkills(ctx context.Context, path string, cfg *config.Config, tel *infrastructure.Telemetry, logger *slog.Logger, stdout io.Writer) error {
	metrics, err := infrastructure.NewRunMetrics(tel.Meter)
	if err != nil {
		return apperrors.NewConfigError("failed to create metrics", err)
	}

	start := time.Now()
	logger.InfoContext(ctx, "Loading survey", "path", path)
	table, err := survey.Load(path)
	if err != nil {
		return err
	}

	calc, err := skillgap.NewCalculator(skillgap.DefaultCatalogue(), cfg.Policy,
		infrastructure.WithComponent(logger, "skillgap"))
	if err != nil {
		return err
	}

	result, err := calc.Calculate(ctx, table)
	if err != nil {
		return err
	}
	metrics.Record(ctx, result, time.Since(start))

	var buf bytes.Buffer
	opts := report.Options{Format: cfg.Report.Format, Unsustainability: cfg.Report.Unsustainability}
	if err := report.WriteReport(&buf, result, opts); err != nil {
		return err
	}

	if cfg.Report.CSVPath != "" {
		if err := exporter.SaveToCSV(result, cfg.Report.CSVPath, cfg.Report.CSVBOM); err != nil {
			return err
		}
		logger.InfoContext(ctx, "Summary saved", "path", cfg.Report.CSVPath)
	}
	if cfg.Report.XLSXPath != "" {
		if err := exporter.SaveToXLSX(result, cfg.Report.XLSXPath); err != nil {
			return err
		}
		logger.InfoContext(ctx, "Workbook saved", "path", cfg.Report.XLSXPath)
	}

	if err := tel.WriteMetrics(); err != nil {
		return apperrors.NewIOError("failed to write metrics", err)
	}

	if _, err := buf.WriteTo(stdout); err != nil {
		return apperrors.NewIOError("failed to write report", err)
	}
	return nil
}

// applyFlags copies the flags given on the command line over the loaded
// configuration. Flags left at their defaults do not override the file or
// environment.
func applyFlags(fs *flag.FlagSet, f *flags, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "format":
			cfg.Report.Format = f.format
		case "unsustainability":
			cfg.Report.Unsustainability = f.unsustainability
		case "csv":
			cfg.Report.CSVPath = f.csvPath
		case "csv-bom":
			cfg.Report.CSVBOM = f.csvBOM
		case "xlsx":
			cfg.Report.XLSXPath = f.xlsxPath
		case "metrics-file":
			cfg.Telemetry.MetricsFile = f.metricsFile
		case "trace":
			cfg.Telemetry.Trace = f.trace
		case "log-level":
			cfg.Logging.Level = f.logLevel
		}
	})
}

// warnClose reports a failed close of name on stderr
func warnClose(stderr io.Writer, name string, err error) {
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to close %s: %v\n", config.AppName, name, err)
	}
}

// fail reports err on stderr and returns the matching exit code
func fail(stderr io.Writer, logger *slog.Logger, err error) int {
	if logger != nil {
		logger.Error("rankskills failed", "error", err, "type", string(apperrors.TypeOf(err)))
	}
	fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
	return apperrors.ExitCode(err)
}
