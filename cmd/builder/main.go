package main

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"date-shift/pkg/policy"
)

type target struct {
	GOOS   string
	GOARCH string
	Label  string
}

var allTargets = []target{
	{GOOS: "darwin", GOARCH: "arm64", Label: "macOS arm64"},
	{GOOS: "darwin", GOARCH: "amd64", Label: "macOS amd64"},
	{GOOS: "linux", GOARCH: "amd64", Label: "Linux amd64"},
	{GOOS: "linux", GOARCH: "arm64", Label: "Linux arm64"},
	{GOOS: "windows", GOARCH: "amd64", Label: "Windows amd64"},
}

type components struct {
	anonymize bool
	verify    bool
	seedgen   bool
	testdata  bool
}

type defaults struct {
	maxShiftDays int
	dateFormat   string
	encoding     string
	dir          string
	outDir       string
	policyPath   string
	workers      int
	bufferSize   int
	skipBinaries bool
	report       bool
	verbose      bool
	quiet        bool
	assumeYes    bool
	dryRun       bool
	includeGlobs string
	excludeGlobs string
	minSize      int
	maxSize      int
}

func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Date Shift - Interactive Builder")
	fmt.Println(strings.Repeat("=", 40))

	// Choose components
	comps := components{
		anonymize: askYesNo(reader, "Build anonymize binary?", true),
		verify:    askYesNo(reader, "Build verify binary?", true),
		seedgen:   askYesNo(reader, "Build seedgen helper?", false),
		testdata:  askYesNo(reader, "Build testdata generator?", false),
	}
	if !comps.anonymize && !comps.verify && !comps.seedgen && !comps.testdata {
		fmt.Println("Nothing to build. Exiting.")
		return
	}

	// Targets
	selected := askTargets(reader)
	if len(selected) == 0 {
		fmt.Println("No targets selected. Exiting.")
		return
	}

	// Output dir
	outDir := askString(reader, "Output directory", "build")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatalf("failed to create output dir: %v", err)
	}

	// Embeds (ask before defaults to avoid confusion)
	var (
		policyB64  string
		seedPhrase string
	)
	if comps.anonymize {
		if askYesNo(reader, "Embed a policy file into anonymize?", false) {
			policyB64 = askPolicy(reader)
			fmt.Println("ℹ️  Note: command-line flags still override embedded policy settings.")
		}
		if askYesNo(reader, "Embed a seed phrase (reproducible runs without -seed)?", false) {
			seedPhrase = askSeedPhrase(reader)
			fmt.Println("ℹ️  Note: anyone holding the binary can reproduce the shifts. Treat it like a key.")
		}
	}

	// Defaults
	def := gatherDefaults(reader)

	// Build
	fmt.Println()
	fmt.Println("Starting builds...")

	ldflags := buildLdflags(def, policyB64, seedPhrase)

	var built []string
	for _, t := range selected {
		if comps.anonymize {
			out := outputName(outDir, "anonymize", t)
			if err := runBuild(t, ldflags, "./cmd/anonymize", out); err != nil {
				fatalf("anonymize build failed for %s/%s: %v", t.GOOS, t.GOARCH, err)
			}
			built = append(built, out)
		}
		if comps.verify {
			out := outputName(outDir, "verify", t)
			if err := runBuild(t, ldflags, "./cmd/verify", out); err != nil {
				fatalf("verify build failed for %s/%s: %v", t.GOOS, t.GOARCH, err)
			}
			built = append(built, out)
		}
		if comps.seedgen {
			out := outputName(outDir, "seedgen", t)
			if err := runBuild(t, ldflags, "./cmd/seedgen", out); err != nil {
				fatalf("seedgen build failed for %s/%s: %v", t.GOOS, t.GOARCH, err)
			}
			built = append(built, out)
		}
		if comps.testdata {
			out := outputName(outDir, "testdata", t)
			if err := runBuild(t, ldflags, "./cmd/testdata", out); err != nil {
				fatalf("testdata build failed for %s/%s: %v", t.GOOS, t.GOARCH, err)
			}
			built = append(built, out)
		}
	}

	sort.Strings(built)
	fmt.Println("\n✅ Build complete. Artifacts:")
	for _, b := range built {
		fmt.Printf("  • %s\n", b)
	}
}

func askTargets(reader *bufio.Reader) []target {
	fmt.Println("Select targets (comma-separated numbers):")
	for i, t := range allTargets {
		cur := ""
		if t.GOOS == runtime.GOOS && t.GOARCH == runtime.GOARCH {
			cur = " (current)"
		}
		fmt.Printf("  %d) %s/%s%s\n", i+1, t.GOOS, t.GOARCH, cur)
	}
	fmt.Println("  a) All")
	ans := askString(reader, "Choice", "1")
	ans = strings.TrimSpace(strings.ToLower(ans))
	if ans == "a" || ans == "all" {
		return append([]target(nil), allTargets...)
	}
	parts := strings.Split(ans, ",")
	var sel []target
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		idx := parseInt(p)
		if idx <= 0 || idx > len(allTargets) {
			fmt.Printf("Skipping invalid choice: %q\n", p)
			continue
		}
		sel = append(sel, allTargets[idx-1])
	}
	return sel
}

func gatherDefaults(reader *bufio.Reader) defaults {
	def := defaults{}
	def.maxShiftDays = askInt(reader, "Default maximum shift in days (-max_shift_days)", "365")
	def.dateFormat = askString(reader, "Default date format (-date_format)", "%Y-%m-%d")
	def.encoding = askString(reader, "Default encoding (-encoding, empty=auto-detect)", "")
	def.dir = askString(reader, "Default target directory (-dir, empty=positional mode)", "")
	def.outDir = askString(reader, "Default output directory (-out)", "")
	def.policyPath = askString(reader, "Default policy path (-policy)", "")
	def.workers = askInt(reader, "Default max workers (-workers)", fmt.Sprintf("%d", runtime.NumCPU()))
	def.bufferSize = askInt(reader, "Default buffer size (bytes, -buffer-size)", "65536")
	def.skipBinaries = askYesNo(reader, "Skip binary files by default?", true)
	def.report = askYesNo(reader, "Write a run report by default?", false)
	def.verbose = askYesNo(reader, "Enable verbose output by default?", false)
	def.quiet = askYesNo(reader, "Enable quiet mode by default?", false)
	def.assumeYes = askYesNo(reader, "Default assume-yes (-y/--yes)?", false)
	def.dryRun = askYesNo(reader, "Default dry-run mode?", false)
	def.includeGlobs = askString(reader, "Include globs (comma-separated, empty=all)", "")
	def.excludeGlobs = askString(reader, "Exclude globs (comma-separated)", "")
	def.minSize = askInt(reader, "Minimum size in bytes (0=none)", "0")
	def.maxSize = askInt(reader, "Maximum size in bytes (0=unlimited)", "0")
	return def
}

func askPolicy(reader *bufio.Reader) string {
	fmt.Println("Provide a YAML policy file to embed:")
	for {
		in := strings.TrimSpace(askString(reader, "Policy file path", "policy.yaml"))
		if in == "" {
			fmt.Println("A policy file is required when embedding. Try again.")
			continue
		}
		data, err := os.ReadFile(in)
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", in, err)
			continue
		}
		if _, err := policy.FromYAML(string(data)); err != nil {
			fmt.Printf("Invalid policy in %s: %v\n", in, err)
			continue
		}
		return base64.StdEncoding.EncodeToString(data)
	}
}

func askSeedPhrase(reader *bufio.Reader) string {
	for {
		phrase := strings.TrimSpace(askString(reader, "Seed phrase", ""))
		if phrase == "" {
			fmt.Println("A seed phrase is required when embedding. Try again.")
			continue
		}
		if strings.ContainsAny(phrase, `"'`) {
			fmt.Println("Quotes do not survive the linker flags. Pick a phrase without quotes.")
			continue
		}
		return phrase
	}
}

func buildLdflags(def defaults, policyB64, seedPhrase string) string {
	var parts []string
	appendX := func(sym, val string) {
		parts = append(parts, quoteX(sym, val))
	}
	appendX("main.version", "custom")
	// Config defaults (string-encoded)
	appendX("date-shift/pkg/config.DefaultMaxShiftDaysStr", fmt.Sprintf("%d", def.maxShiftDays))
	appendX("date-shift/pkg/config.DefaultDateFormatStr", def.dateFormat)
	appendX("date-shift/pkg/config.DefaultEncodingStr", def.encoding)
	appendX("date-shift/pkg/config.DefaultTargetDirStr", def.dir)
	appendX("date-shift/pkg/config.DefaultOutputDirStr", def.outDir)
	appendX("date-shift/pkg/config.DefaultPolicyPathStr", def.policyPath)
	appendX("date-shift/pkg/config.DefaultMaxWorkersStr", fmt.Sprintf("%d", def.workers))
	appendX("date-shift/pkg/config.DefaultBufferSizeStr", fmt.Sprintf("%d", def.bufferSize))
	appendX("date-shift/pkg/config.DefaultSkipBinariesStr", boolStr(def.skipBinaries))
	appendX("date-shift/pkg/config.DefaultReportStr", boolStr(def.report))
	appendX("date-shift/pkg/config.DefaultShowHelpStr", boolStr(false))
	appendX("date-shift/pkg/config.DefaultVerboseStr", boolStr(def.verbose))
	appendX("date-shift/pkg/config.DefaultQuietStr", boolStr(def.quiet))
	appendX("date-shift/pkg/config.DefaultAssumeYesStr", boolStr(def.assumeYes))
	appendX("date-shift/pkg/config.DefaultDryRunStr", boolStr(def.dryRun))
	appendX("date-shift/pkg/config.DefaultIncludeGlobsStr", def.includeGlobs)
	appendX("date-shift/pkg/config.DefaultExcludeGlobsStr", def.excludeGlobs)
	appendX("date-shift/pkg/config.DefaultMinSizeBytesStr", fmt.Sprintf("%d", def.minSize))
	appendX("date-shift/pkg/config.DefaultMaxSizeBytesStr", fmt.Sprintf("%d", def.maxSize))

	// Embedded policy for anonymize (optional)
	if strings.TrimSpace(policyB64) != "" {
		appendX("date-shift/pkg/policy.EmbeddedPolicyYAML", policyB64)
	}
	// Embedded seed phrase for anonymize (optional)
	if strings.TrimSpace(seedPhrase) != "" {
		appendX("date-shift/internal/seed.EmbeddedSeedPhrase", seedPhrase)
	}

	return strings.Join(parts, " ")
}

// quoteX renders one -X flag. The go tool splits the -ldflags value on
// spaces unless the flag is wrapped in quotes, so values with spaces get
// single-quoted.
func quoteX(sym, val string) string {
	if strings.ContainsAny(val, " \t") {
		return fmt.Sprintf("-X '%s=%s'", sym, val)
	}
	return fmt.Sprintf("-X %s=%s", sym, val)
}

func runBuild(t target, ldflags, pkg, out string) error {
	args := []string{"build", "-ldflags", ldflags, "-o", out, pkg}
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(), "GOOS="+t.GOOS, "GOARCH="+t.GOARCH)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func outputName(outDir, name string, t target) string {
	file := fmt.Sprintf("%s-%s-%s", name, t.GOOS, t.GOARCH)
	if t.GOOS == "windows" {
		file += ".exe"
	}
	return filepath.Join(outDir, file)
}

func askString(r *bufio.Reader, prompt, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", prompt, def)
	} else {
		fmt.Printf("%s: ", prompt)
	}
	text, _ := r.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	return text
}

func askYesNo(r *bufio.Reader, prompt string, def bool) bool {
	defStr := "y/N"
	if def {
		defStr = "Y/n"
	}
	for {
		fmt.Printf("%s (%s): ", prompt, defStr)
		text, _ := r.ReadString('\n')
		text = strings.TrimSpace(strings.ToLower(text))
		if text == "" {
			return def
		}
		switch text {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Println("Please answer 'y' or 'n'.")
		}
	}
}

func askInt(r *bufio.Reader, prompt, def string) int {
	for {
		ans := askString(r, prompt, def)
		if n := parseInt(ans); n != 0 || ans == "0" {
			return n
		}
		fmt.Println("Enter a valid integer.")
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
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
			return 0
		}
		n = n*10 + int(ch-'0')
	}
	return sign * n
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", a...)
	os.Exit(1)
}
