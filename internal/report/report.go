package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"date-shift/pkg/config"
	"date-shift/pkg/policy"
)

const (
	defaultReportFilename = "ANONYMIZATION_REPORT.txt"
	placeholderPolicyName = "Ad hoc run"
	withheldSeed          = "(withheld; set report.reveal_seed to record it)"
)

// Summary aggregates the counters of a completed run for the report file.
type Summary struct {
	Mode          string
	Seed          int64
	SeedSource    string
	FilesTotal    int64
	FilesDone     int64
	FilesSkipped  int64
	FilesFailed   int64
	Lines         int64
	DatesExamined int64
	DatesShifted  int64
	DatesKept     int64
	BytesIn       int64
	BytesOut      int64
	Duration      time.Duration
	Completed     time.Time
}

// WriteResult captures where the report landed.
type WriteResult struct {
	Path string
}

// Enabled reports whether a run report should be written for the provided config.
func Enabled(cfg *config.Config) bool {
	if cfg == nil {
		return false
	}
	if cfg.Report {
		return true
	}
	if cfg.ActivePolicy != nil {
		return cfg.ActivePolicy.Report.Enabled
	}
	return false
}

// Write renders the run report and writes it next to the anonymized output.
// The seed only appears when the policy opts in via report.reveal_seed, so a
// report can be shared without handing out the keys to reverse the shifts.
func Write(cfg *config.Config, sum *Summary) (*WriteResult, error) {
	if !Enabled(cfg) {
		return nil, nil
	}

	spec := newConfigReport(cfg)

	folder := spec.folder()
	if folder == "" {
		folder = defaultFolder(cfg)
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	body := spec.template()
	if body == "" {
		body = defaultReportBody(cfg, sum, spec.revealSeed())
	} else {
		body = renderTemplate(body, templateValues(cfg, sum, spec.revealSeed()))
	}

	path := filepath.Join(folder, spec.filename())
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return &WriteResult{Path: path}, nil
}

type configReport struct {
	spec *policy.ReportSpec
}

func newConfigReport(cfg *config.Config) configReport {
	if cfg != nil && cfg.ActivePolicy != nil {
		return configReport{spec: &cfg.ActivePolicy.Report}
	}
	return configReport{}
}

func (c configReport) reportSpec() policy.ReportSpec {
	if c.spec != nil {
		return *c.spec
	}
	return policy.ReportSpec{}
}

func (c configReport) folder() string {
	return c.reportSpec().Folder
}

func (c configReport) filename() string {
	if name := c.reportSpec().Filename; name != "" {
		return name
	}
	return defaultReportFilename
}

func (c configReport) template() string {
	return c.reportSpec().Template
}

func (c configReport) revealSeed() bool {
	return c.reportSpec().RevealSeed
}

func defaultFolder(cfg *config.Config) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	if cfg.OutputFile != "" {
		return filepath.Dir(cfg.OutputFile)
	}
	return "."
}

func defaultReportBody(cfg *config.Config, sum *Summary, reveal bool) string {
	lines := []string{
		"Date anonymization run report.",
		fmt.Sprintf("Policy: %s", policyOrDefault(cfg)),
		fmt.Sprintf("Mode: %s", sum.Mode),
		fmt.Sprintf("Target: %s", targetLabel(cfg)),
		fmt.Sprintf("Output: %s", outputLabel(cfg)),
		fmt.Sprintf("Max shift: ±%d days", cfg.MaxShiftDays),
		fmt.Sprintf("Date format: %s", cfg.DateFormat),
		fmt.Sprintf("Encoding: %s", encodingLabel(cfg)),
		"",
		fmt.Sprintf("Files: %d processed of %d (skipped %d, failed %d)",
			sum.FilesDone, sum.FilesTotal, sum.FilesSkipped, sum.FilesFailed),
		fmt.Sprintf("Lines: %d", sum.Lines),
		fmt.Sprintf("Dates: %d examined, %d shifted, %d kept with warnings",
			sum.DatesExamined, sum.DatesShifted, sum.DatesKept),
		fmt.Sprintf("Bytes: %d read, %d written", sum.BytesIn, sum.BytesOut),
		fmt.Sprintf("Duration: %s", sum.Duration.Round(time.Millisecond)),
		"",
		fmt.Sprintf("Seed source: %s", sum.SeedSource),
		fmt.Sprintf("Seed: %s", seedLabel(sum, reveal)),
		fmt.Sprintf("Completed: %s", sum.Completed.Format("2006-01-02 15:04:05 MST")),
	}
	return strings.Join(lines, "\n") + "\n"
}

func templateValues(cfg *config.Config, sum *Summary, reveal bool) map[string]string {
	return map[string]string{
		"POLICY_NAME":    policyOrDefault(cfg),
		"MODE":           sum.Mode,
		"TARGET":         targetLabel(cfg),
		"OUTPUT":         outputLabel(cfg),
		"MAX_SHIFT_DAYS": strconv.FormatInt(cfg.MaxShiftDays, 10),
		"DATE_FORMAT":    cfg.DateFormat,
		"ENCODING":       encodingLabel(cfg),
		"FILES_TOTAL":    strconv.FormatInt(sum.FilesTotal, 10),
		"FILES_DONE":     strconv.FormatInt(sum.FilesDone, 10),
		"FILES_SKIPPED":  strconv.FormatInt(sum.FilesSkipped, 10),
		"FILES_FAILED":   strconv.FormatInt(sum.FilesFailed, 10),
		"LINES":          strconv.FormatInt(sum.Lines, 10),
		"DATES_EXAMINED": strconv.FormatInt(sum.DatesExamined, 10),
		"DATES_SHIFTED":  strconv.FormatInt(sum.DatesShifted, 10),
		"DATES_KEPT":     strconv.FormatInt(sum.DatesKept, 10),
		"BYTES_IN":       strconv.FormatInt(sum.BytesIn, 10),
		"BYTES_OUT":      strconv.FormatInt(sum.BytesOut, 10),
		"DURATION":       sum.Duration.Round(time.Millisecond).String(),
		"SEED_SOURCE":    sum.SeedSource,
		"SEED":           seedLabel(sum, reveal),
		"COMPLETED":      sum.Completed.Format("2006-01-02 15:04:05 MST"),
	}
}

func renderTemplate(input string, values map[string]string) string {
	output := input
	for key, val := range values {
		output = strings.ReplaceAll(output, "{{"+key+"}}", val)
	}
	return output
}

func policyOrDefault(cfg *config.Config) string {
	if cfg != nil && cfg.PolicyName != "" {
		return cfg.PolicyName
	}
	return placeholderPolicyName
}

func targetLabel(cfg *config.Config) string {
	if cfg.BatchMode() {
		return cfg.TargetDir
	}
	return cfg.InputFile
}

func outputLabel(cfg *config.Config) string {
	if cfg.BatchMode() {
		return cfg.OutputDir
	}
	return cfg.OutputFile
}

func encodingLabel(cfg *config.Config) string {
	if cfg.Encoding != "" {
		return cfg.Encoding
	}
	return "auto-detect"
}

func seedLabel(sum *Summary, reveal bool) string {
	if !reveal {
		return withheldSeed
	}
	return strconv.FormatInt(sum.Seed, 10)
}
