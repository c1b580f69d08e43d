package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/ncruces/go-strftime"

	"date-shift/internal/charset"
	"date-shift/internal/system"
	"date-shift/pkg/policy"
)

// String defaults are overrideable at build time via -ldflags -X
// Example: -ldflags "-X 'date-shift/pkg/config.DefaultMaxShiftDaysStr=90'"
var (
	DefaultMaxShiftDaysStr = "365"
	DefaultDateFormatStr   = "%Y-%m-%d"
	DefaultEncodingStr     = ""      // empty -> statistical auto-detection
	DefaultTargetDirStr    = ""
	DefaultOutputDirStr    = ""
	DefaultMaxWorkersStr   = ""      // empty -> runtime.NumCPU()
	DefaultBufferSizeStr   = "65536" // bytes
	DefaultSkipBinariesStr = "true"
	DefaultReportStr       = "false"
	DefaultShowHelpStr     = "false"
	DefaultVerboseStr      = "false"
	DefaultAssumeYesStr    = "false"
	DefaultQuietStr        = "false"
	DefaultDryRunStr       = "false"
	DefaultIncludeGlobsStr = ""
	DefaultExcludeGlobsStr = ""
	DefaultMinSizeBytesStr = "0"
	DefaultMaxSizeBytesStr = "0"
	DefaultPolicyPathStr   = ""
	DefaultSeedPhraseStr   = ""
)

// The maximum shift accepted on the CLI. Larger values would make the
// uniform draw over [-max, +max] overflow its 2*max+1 sized interval.
const MaxShiftDaysLimit = int64(1) << 31

type Config struct {
	InputFile     string // single mode, first positional
	OutputFile    string // single mode, second positional
	TargetDir     string // batch mode root
	OutputDir     string // batch mode mirror root
	MaxShiftDays  int64
	Seed          int64
	SeedSet       bool // -seed was given, 0 is a valid explicit seed
	SeedPhrase    string
	SeedPhraseSet bool // -seed-phrase was given on the CLI
	DateFormat    string
	Encoding      string
	MaxWorkers    int
	BufferSize    int
	SkipBinaries  bool
	Report        bool
	ShowHelp      bool
	Verbose       bool
	Quiet         bool
	AssumeYes     bool
	DryRun        bool
	IncludeGlobs  string
	ExcludeGlobs  string
	MinSizeBytes  int64
	MaxSizeBytes  int64
	PolicyPath    string
	PolicyName    string
	ActivePolicy  *policy.Policy
}

func DefaultConfig() *Config {
	maxWorkers := parseIntOr(DefaultMaxWorkersStr, runtime.NumCPU())
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	bufferSize := parseIntOr(DefaultBufferSizeStr, 64*1024)
	if bufferSize <= 0 {
		bufferSize = 64 * 1024
	}

	return &Config{
		MaxShiftDays: parseInt64Or(DefaultMaxShiftDaysStr, 365),
		DateFormat:   orString(DefaultDateFormatStr, "%Y-%m-%d"),
		Encoding:     strings.TrimSpace(DefaultEncodingStr),
		TargetDir:    strings.TrimSpace(DefaultTargetDirStr),
		OutputDir:    strings.TrimSpace(DefaultOutputDirStr),
		MaxWorkers:   maxWorkers,
		BufferSize:   bufferSize, // bytes
		SkipBinaries: parseBoolOr(DefaultSkipBinariesStr, true),
		Report:       parseBoolOr(DefaultReportStr, false),
		ShowHelp:     parseBoolOr(DefaultShowHelpStr, false),
		Verbose:      parseBoolOr(DefaultVerboseStr, false),
		AssumeYes:    parseBoolOr(DefaultAssumeYesStr, false),
		Quiet:        parseBoolOr(DefaultQuietStr, false),
		DryRun:       parseBoolOr(DefaultDryRunStr, false),
		IncludeGlobs: orString(DefaultIncludeGlobsStr, ""),
		ExcludeGlobs: orString(DefaultExcludeGlobsStr, ""),
		MinSizeBytes: parseInt64Or(DefaultMinSizeBytesStr, 0),
		MaxSizeBytes: parseInt64Or(DefaultMaxSizeBytesStr, 0),
		PolicyPath:   orString(DefaultPolicyPathStr, ""),
		SeedPhrase:   strings.TrimSpace(DefaultSeedPhraseStr),
	}
}

func ParseFlags(appName string) (*Config, error) {
	config := DefaultConfig()

	flag.Int64Var(&config.MaxShiftDays, "max_shift_days", config.MaxShiftDays, "Maximum shift in days; each date moves by a uniform draw from [-N, +N]")
	flag.Int64Var(&config.Seed, "seed", 0, "Seed for the random number generator (omit for a non-reproducible run)")
	flag.StringVar(&config.DateFormat, "date_format", config.DateFormat, "strftime format used to parse and re-render matched dates")
	flag.StringVar(&config.Encoding, "encoding", config.Encoding, "Text encoding of the input (omit for statistical auto-detection)")

	flag.StringVar(&config.TargetDir, "dir", config.TargetDir, "Batch mode: directory tree to anonymize")
	flag.StringVar(&config.OutputDir, "out", config.OutputDir, "Batch mode: output root mirroring the input tree")
	flag.IntVar(&config.MaxWorkers, "workers", config.MaxWorkers, "Maximum number of worker goroutines in batch mode")
	flag.IntVar(&config.BufferSize, "buffer-size", config.BufferSize, "I/O buffer size in bytes")
	flag.StringVar(&config.SeedPhrase, "seed-phrase", config.SeedPhrase, "Derive the seed from a memorable phrase instead of -seed")
	flag.StringVar(&config.PolicyPath, "policy", config.PolicyPath, "Path to policy YAML describing a scoped anonymization run")
	flag.BoolVar(&config.SkipBinaries, "skip-binaries", config.SkipBinaries, "Skip well-known binary file types in batch mode")
	flag.BoolVar(&config.Report, "report", config.Report, "Write a run report after a batch pass")
	flag.BoolVar(&config.Verbose, "verbose", config.Verbose, "Enable verbose output")
	flag.BoolVar(&config.Quiet, "quiet", config.Quiet, "Suppress non-error output")
	flag.BoolVar(&config.DryRun, "dry-run", config.DryRun, "Preview operations without writing files")
	flag.StringVar(&config.IncludeGlobs, "include", config.IncludeGlobs, "Comma-separated glob patterns to include")
	flag.StringVar(&config.ExcludeGlobs, "exclude", config.ExcludeGlobs, "Comma-separated glob patterns to exclude")
	flag.Int64Var(&config.MinSizeBytes, "min-size", config.MinSizeBytes, "Minimum file size to process in bytes")
	flag.Int64Var(&config.MaxSizeBytes, "max-size", config.MaxSizeBytes, "Maximum file size to process in bytes (0 for unlimited)")
	flag.BoolVar(&config.ShowHelp, "help", config.ShowHelp, "Show help message")

	// Confirmation skipping
	flag.BoolVar(&config.AssumeYes, "yes", config.AssumeYes, "Assume yes; skip confirmation prompts")
	flag.BoolVar(&config.AssumeYes, "y", config.AssumeYes, "Assume yes; skip confirmation prompts (alias)")

	var noSkipBinaries bool
	flag.BoolVar(&noSkipBinaries, "no-skip-binaries", false, "Process binary file types too in batch mode")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", appName)
		fmt.Fprintf(os.Stderr, "  %s [options] input_file output_file\n", appName)
		fmt.Fprintf(os.Stderr, "  %s [options] -dir <folder> -out <folder>\n", appName)
		fmt.Fprintf(os.Stderr, "\nReplaces hard-coded YYYY-MM-DD dates in text files with randomly shifted\n")
		fmt.Fprintf(os.Stderr, "dates while keeping every other byte intact. Same seed, same output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s visits.csv visits_anon.csv\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -seed 1234 -max_shift_days 90 notes.txt notes_anon.txt\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -encoding latin1 -date_format '%%Y-%%m-%%d' legacy.txt legacy_anon.txt\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -dir ./export -out ./export-anon -seed-phrase 'handoff 2024'\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -dir ./logs -out ./logs-anon -include '**/*.log' -dry-run\n", appName)
	}

	flag.Parse()

	if config.ShowHelp {
		flag.Usage()
		os.Exit(0)
	}

	visited := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})
	config.SeedSet = visited["seed"]
	config.SeedPhraseSet = visited["seed-phrase"]

	if noSkipBinaries {
		config.SkipBinaries = false
	}

	switch args := flag.Args(); len(args) {
	case 0:
		// Batch mode, scope comes from -dir or a policy.
	case 1:
		return nil, fmt.Errorf("missing output file: expected input_file output_file")
	case 2:
		config.InputFile = args[0]
		config.OutputFile = args[1]
		if visited["dir"] {
			return nil, fmt.Errorf("cannot combine positional files with -dir; pick one mode")
		}
	default:
		return nil, fmt.Errorf("unexpected extra arguments: %v", args[2:])
	}

	// Load policy: CLI path first, then an embedded definition, then the
	// first policy file found at a well-known location.
	var loadedPolicy *policy.Policy
	if config.PolicyPath != "" {
		loaded, err := policy.LoadFile(config.PolicyPath)
		if err != nil {
			return nil, err
		}
		loadedPolicy = loaded
	} else if policy.HasEmbedded() {
		loaded, err := policy.LoadEmbedded()
		if err != nil {
			return nil, err
		}
		loadedPolicy = loaded
	} else if path, ok := system.DefaultPolicyPath(); ok {
		loaded, err := policy.LoadFile(path)
		if err != nil {
			return nil, err
		}
		loadedPolicy = loaded
	}

	if loadedPolicy != nil {
		config.applyPolicy(loadedPolicy, visited)
		config.ActivePolicy = loadedPolicy
		config.PolicyName = loadedPolicy.Name
		if config.PolicyPath == "" {
			config.PolicyPath = loadedPolicy.Source
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// BatchMode reports whether the run operates on a directory tree instead of
// a single input/output file pair.
func (c *Config) BatchMode() bool {
	return c.InputFile == ""
}

func (c *Config) Validate() error {
	if c.MaxShiftDays <= 0 {
		return fmt.Errorf("max_shift_days must be a positive integer, got %d", c.MaxShiftDays)
	}

	if c.MaxShiftDays > MaxShiftDaysLimit {
		return fmt.Errorf("max_shift_days must be at most %d", MaxShiftDaysLimit)
	}

	if strings.TrimSpace(c.DateFormat) == "" {
		return fmt.Errorf("date_format cannot be empty")
	}

	if _, err := strftime.Layout(c.DateFormat); err != nil {
		return fmt.Errorf("unsupported date_format %q: %w", c.DateFormat, err)
	}

	if c.Encoding != "" {
		if _, _, err := charset.Resolve(c.Encoding); err != nil {
			return err
		}
	}

	if c.SeedSet && c.SeedPhraseSet {
		return fmt.Errorf("use either -seed or -seed-phrase, not both")
	}

	if c.MaxWorkers <= 0 {
		return fmt.Errorf("max workers must be greater than 0")
	}

	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be greater than 0")
	}

	if c.MinSizeBytes < 0 {
		return fmt.Errorf("min size must be >= 0")
	}

	if c.MaxSizeBytes < 0 {
		return fmt.Errorf("max size must be >= 0")
	}

	if c.MaxSizeBytes > 0 && c.MinSizeBytes > c.MaxSizeBytes {
		return fmt.Errorf("min size cannot exceed max size")
	}

	if c.BatchMode() {
		if c.TargetDir == "" {
			return fmt.Errorf("no input: provide input_file output_file, or -dir for batch mode")
		}
		info, err := os.Stat(c.TargetDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("target directory does not exist: %s", c.TargetDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("target path is not a directory: %s", c.TargetDir)
		}
		if c.OutputDir == "" {
			return fmt.Errorf("batch mode needs -out (or a policy output_dir) for the mirrored tree")
		}
	} else {
		info, err := os.Stat(c.InputFile)
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", c.InputFile)
		}
		if err == nil && info.IsDir() {
			return fmt.Errorf("input path is a directory, use -dir for batch mode: %s", c.InputFile)
		}
		if c.OutputFile == "" {
			return fmt.Errorf("output file cannot be empty")
		}
	}

	return nil
}

// applyPolicy copies policy fields into the config unless the matching flag
// was given on the command line. Flags always beat the policy.
func (c *Config) applyPolicy(pol *policy.Policy, visited map[string]bool) {
	if pol.TargetDir != "" && !visited["dir"] {
		c.TargetDir = expandPolicyPath(pol.TargetDir)
	}
	if pol.OutputDir != "" && !visited["out"] {
		c.OutputDir = expandPolicyPath(pol.OutputDir)
	}
	if len(pol.Include) > 0 && !visited["include"] {
		c.IncludeGlobs = strings.Join(pol.Include, ",")
	}
	if len(pol.Exclude) > 0 && !visited["exclude"] {
		c.ExcludeGlobs = strings.Join(pol.Exclude, ",")
	}
	if pol.MinSize > 0 && !visited["min-size"] {
		c.MinSizeBytes = pol.MinSize
	}
	if pol.MaxSize > 0 && !visited["max-size"] {
		c.MaxSizeBytes = pol.MaxSize
	}
	if pol.MaxShiftDays > 0 && !visited["max_shift_days"] {
		c.MaxShiftDays = pol.MaxShiftDays
	}
	if pol.DateFormat != "" && !visited["date_format"] {
		c.DateFormat = pol.DateFormat
	}
	if pol.Encoding != "" && !visited["encoding"] {
		c.Encoding = pol.Encoding
	}
	if pol.SeedPhrase != "" && !visited["seed-phrase"] {
		c.SeedPhrase = pol.SeedPhrase
	}
	if pol.Workers > 0 && !visited["workers"] {
		c.MaxWorkers = pol.Workers
	}
	if pol.SkipBinaries != nil && !visited["skip-binaries"] && !visited["no-skip-binaries"] {
		c.SkipBinaries = *pol.SkipBinaries
	}
	if pol.DryRun != nil && !visited["dry-run"] {
		c.DryRun = *pol.DryRun
	}
	if pol.AssumeYes != nil && !visited["yes"] && !visited["y"] {
		c.AssumeYes = *pol.AssumeYes
	}
	if pol.Report.Enabled {
		c.Report = true
	}
}

func expandPolicyPath(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return trimmed
	}
	if home, err := os.UserHomeDir(); err == nil {
		trimmed = strings.ReplaceAll(trimmed, "{{HOME}}", home)
	}
	return os.ExpandEnv(trimmed)
}

// SeedSource describes where the run's seed will come from, for banners and
// reports. The resolved value itself stays out of normal output.
func (c *Config) SeedSource() string {
	switch {
	case c.SeedSet:
		return "explicit (-seed)"
	case c.SeedPhraseSet:
		return "derived from -seed-phrase"
	case c.SeedPhrase != "":
		return "derived from policy seed_phrase"
	default:
		return "random"
	}
}

func (c *Config) PrintConfig(appName string) {
	fmt.Printf("🔧 %s Configuration\n", appName)
	fmt.Println(strings.Repeat("=", 50))
	if c.BatchMode() {
		fmt.Printf("📁 Target Directory: %s\n", c.TargetDir)
		fmt.Printf("📂 Output Directory: %s\n", c.OutputDir)
		fmt.Printf("⚡ Workers: %d\n", c.MaxWorkers)
		fmt.Printf("🚫 Binary Skip: %s\n", map[bool]string{true: "Enabled", false: "Disabled"}[c.SkipBinaries])
	} else {
		fmt.Printf("📄 Input File: %s\n", c.InputFile)
		fmt.Printf("📄 Output File: %s\n", c.OutputFile)
	}
	fmt.Printf("📆 Max Shift: ±%d days\n", c.MaxShiftDays)
	fmt.Printf("🗓️  Date Format: %s\n", c.DateFormat)
	if c.Encoding != "" {
		fmt.Printf("🔤 Encoding: %s\n", c.Encoding)
	} else {
		fmt.Printf("🔤 Encoding: auto-detect\n")
	}
	fmt.Printf("🎲 Seed: %s\n", c.SeedSource())
	fmt.Printf("📊 Buffer Size: %d KB\n", c.BufferSize/1024)
	if c.PolicyName != "" {
		fmt.Printf("📝 Policy: %s (%s)\n", c.PolicyName, c.PolicyPath)
	} else if c.PolicyPath != "" {
		fmt.Printf("📝 Policy: %s\n", c.PolicyPath)
	}
	if c.Report {
		fmt.Println("🧾 Report: enabled")
	}
	if c.DryRun {
		fmt.Println("👀 Dry run: no files will be written")
	}
	fmt.Printf("💻 Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("🧮 CPU Cores: %d\n", runtime.NumCPU())
}

// Helpers for parsing ldflag-provided strings
func parseBoolOr(val string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	case "0", "f", "false", "n", "no", "off":
		return false
	default:
		return fallback
	}
}

func parseIntOr(val string, fallback int) int {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	sign := 1
	idx := 0
	if s[0] == '-' {
		sign = -1
		idx = 1
	}
	n := 0
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int(ch-'0')
	}
	return sign * n
}

func parseInt64Or(val string, fallback int64) int64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	sign := int64(1)
	idx := 0
	if s[0] == '-' {
		sign = -1
		idx = 1
	}
	var n int64
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int64(ch-'0')
	}
	return sign * n
}

func orString(val string, fallback string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	return s
}
