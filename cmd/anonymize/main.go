package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"date-shift/internal/dateshift"
	"date-shift/internal/fs"
	"date-shift/internal/report"
	"date-shift/internal/seed"
	"date-shift/internal/system"
	"date-shift/internal/textio"
	"date-shift/pkg/config"
)

var version = "dev"

type AnonymizationStats struct {
	totalFiles      int64
	processedFiles  int64
	successfulFiles int64
	failedFiles     int64
	skippedFiles    int64
	totalLines      int64
	datesExamined   int64
	datesShifted    int64
	datesKept       int64
	bytesRead       int64
	bytesWritten    int64
}

func (s *AnonymizationStats) incrementTotal() {
	atomic.AddInt64(&s.totalFiles, 1)
}

func (s *AnonymizationStats) incrementProcessed() {
	atomic.AddInt64(&s.processedFiles, 1)
}

func (s *AnonymizationStats) incrementSuccessful() {
	atomic.AddInt64(&s.successfulFiles, 1)
}

func (s *AnonymizationStats) incrementFailed() {
	atomic.AddInt64(&s.failedFiles, 1)
}

func (s *AnonymizationStats) addSkipped(n int64) {
	atomic.AddInt64(&s.skippedFiles, n)
}

func (s *AnonymizationStats) addResult(res *textio.Result) {
	atomic.AddInt64(&s.totalLines, res.Lines)
	atomic.AddInt64(&s.datesExamined, res.Examined)
	atomic.AddInt64(&s.datesShifted, res.Shifted)
	atomic.AddInt64(&s.datesKept, res.Kept)
	atomic.AddInt64(&s.bytesRead, res.BytesIn)
	atomic.AddInt64(&s.bytesWritten, res.BytesOut)
}

type statsTotals struct {
	total, processed, successful, failed, skipped int64
	lines, examined, shifted, kept                int64
	bytesRead, bytesWritten                       int64
}

func (s *AnonymizationStats) totals() statsTotals {
	return statsTotals{
		total:        atomic.LoadInt64(&s.totalFiles),
		processed:    atomic.LoadInt64(&s.processedFiles),
		successful:   atomic.LoadInt64(&s.successfulFiles),
		failed:       atomic.LoadInt64(&s.failedFiles),
		skipped:      atomic.LoadInt64(&s.skippedFiles),
		lines:        atomic.LoadInt64(&s.totalLines),
		examined:     atomic.LoadInt64(&s.datesExamined),
		shifted:      atomic.LoadInt64(&s.datesShifted),
		kept:         atomic.LoadInt64(&s.datesKept),
		bytesRead:    atomic.LoadInt64(&s.bytesRead),
		bytesWritten: atomic.LoadInt64(&s.bytesWritten),
	}
}

func main() {
	cfg, err := config.ParseFlags("Date Anonymizer")
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	runSeed, err := resolveSeed(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to resolve seed: %v", err)
	}

	if !cfg.Quiet {
		cfg.PrintConfig("Date Anonymizer")
		if cfg.Verbose {
			fmt.Printf("🎲 Resolved seed: %d\n", runSeed)
		}
	}

	if cfg.BatchMode() {
		runBatch(cfg, runSeed)
		return
	}
	runSingle(cfg, runSeed)
}

// resolveSeed picks the run seed: explicit -seed first, then a phrase from
// the CLI or policy, then a build-time embedded phrase, then crypto/rand.
func resolveSeed(cfg *config.Config) (int64, error) {
	switch {
	case cfg.SeedSet:
		return cfg.Seed, nil
	case cfg.SeedPhrase != "":
		return seed.FromPhrase(cfg.SeedPhrase)
	case seed.HasEmbeddedPhrase():
		return seed.FromEmbeddedPhrase()
	default:
		return seed.Random()
	}
}

func runSingle(cfg *config.Config, runSeed int64) {
	if cfg.DryRun {
		fmt.Printf("[DRY-RUN] Would anonymize %s -> %s\n", cfg.InputFile, cfg.OutputFile)
		return
	}

	if !cfg.AssumeYes && fs.FileExists(cfg.OutputFile) {
		prompt := fmt.Sprintf("Output file %s exists and will be overwritten. Continue? [Y/n]: ", cfg.OutputFile)
		if !confirmProceed(prompt) {
			fmt.Println("Aborted.")
			return
		}
	}

	shifter, err := dateshift.NewShifter(cfg.DateFormat, cfg.MaxShiftDays, rand.New(rand.NewSource(runSeed)))
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	startTime := time.Now()
	proc := textio.NewProcessor(shifter, cfg.Encoding, cfg.BufferSize)
	result, err := proc.ProcessFile(cfg.InputFile, cfg.OutputFile)
	if err != nil {
		log.Fatalf("❌ Anonymization failed: %v", err)
	}
	duration := time.Since(startTime)

	if !cfg.Quiet {
		fmt.Printf("\n✅ Anonymization complete: %s\n", cfg.OutputFile)
		fmt.Printf("   🔤 Encoding: %s\n", describeEncoding(result))
		fmt.Printf("   📄 Lines: %d\n", result.Lines)
		fmt.Printf("   📆 Dates: %d examined, %d shifted, %d kept\n",
			result.Examined, result.Shifted, result.Kept)
	}

	writeReport(cfg, &report.Summary{
		Mode:          "single",
		Seed:          runSeed,
		SeedSource:    cfg.SeedSource(),
		FilesTotal:    1,
		FilesDone:     1,
		Lines:         result.Lines,
		DatesExamined: result.Examined,
		DatesShifted:  result.Shifted,
		DatesKept:     result.Kept,
		BytesIn:       result.BytesIn,
		BytesOut:      result.BytesOut,
		Duration:      duration,
		Completed:     time.Now(),
	})
}

func runBatch(cfg *config.Config, runSeed int64) {
	if err := ensureSeparateRoots(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}

	exclusions := system.NewExclusions(cfg.SkipBinaries)

	if !cfg.Quiet {
		fmt.Println("\n🔍 Scanning for files to anonymize...")
	}
	files, skipped, err := findFilesToProcess(cfg, exclusions)
	if err != nil {
		log.Fatalf("❌ Failed to find files: %v", err)
	}

	if len(files) == 0 {
		fmt.Println("ℹ️  No files found to anonymize.")
		return
	}

	if !cfg.Quiet {
		fmt.Printf("📁 Found %d files to anonymize (%d skipped)\n", len(files), skipped)
	}

	if cfg.DryRun {
		var totalBytes int64
		for _, f := range files {
			if sz, err := fs.GetFileSize(f); err == nil {
				totalBytes += sz
			}
			if cfg.Verbose {
				if rel, rerr := fs.RelSlash(cfg.TargetDir, f); rerr == nil {
					fmt.Printf("   • %s\n", rel)
				}
			}
		}
		fmt.Printf("\n[DRY-RUN] Would process %d files (%.2f MB) into %s\n",
			len(files), float64(totalBytes)/(1024*1024), cfg.OutputDir)
		return
	}

	if !cfg.AssumeYes {
		prompt := fmt.Sprintf("Proceed with anonymization of %d files into %s? [Y/n]: ", len(files), cfg.OutputDir)
		if !confirmProceed(prompt) {
			fmt.Println("Aborted.")
			return
		}
	}

	stats := &AnonymizationStats{}
	for range files {
		stats.incrementTotal()
	}
	stats.addSkipped(skipped)

	startTime := time.Now()
	if !cfg.Quiet {
		fmt.Printf("\n🚀 Starting anonymization with %d workers...\n", cfg.MaxWorkers)
	}
	processFiles(files, stats, cfg, runSeed)
	duration := time.Since(startTime)

	if !cfg.Quiet {
		printFinalStats(stats, duration)
	}

	t := stats.totals()
	writeReport(cfg, &report.Summary{
		Mode:          "batch",
		Seed:          runSeed,
		SeedSource:    cfg.SeedSource(),
		FilesTotal:    t.total,
		FilesDone:     t.successful,
		FilesSkipped:  t.skipped,
		FilesFailed:   t.failed,
		Lines:         t.lines,
		DatesExamined: t.examined,
		DatesShifted:  t.shifted,
		DatesKept:     t.kept,
		BytesIn:       t.bytesRead,
		BytesOut:      t.bytesWritten,
		Duration:      duration,
		Completed:     time.Now(),
	})
}

// ensureSeparateRoots refuses runs where the mirror would overwrite the
// input tree it is reading from.
func ensureSeparateRoots(cfg *config.Config) error {
	absTarget, err := filepath.Abs(cfg.TargetDir)
	if err != nil {
		return fmt.Errorf("resolve target directory: %w", err)
	}
	absOut, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	if absTarget == absOut {
		return fmt.Errorf("output directory must differ from the target directory: %s", absOut)
	}
	return nil
}

func findFilesToProcess(cfg *config.Config, exclusions *system.Exclusions) ([]string, int64, error) {
	includeGlobs := parseGlobList(cfg.IncludeGlobs)
	excludeGlobs := parseGlobList(cfg.ExcludeGlobs)
	minSize := cfg.MinSizeBytes
	maxSize := cfg.MaxSizeBytes

	absOut, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve output directory: %w", err)
	}
	outPrefix := absOut + string(filepath.Separator)

	var skipped int64
	files, err := fs.FindFiles(cfg.TargetDir, func(path string, info os.FileInfo) bool {
		// Never re-process our own output when it nests inside the target.
		if abs, aerr := filepath.Abs(path); aerr == nil && strings.HasPrefix(abs, outPrefix) {
			skipped++
			return false
		}

		if exclusions.ShouldSkip(path) {
			skipped++
			return false
		}

		// Size filters
		if minSize > 0 && info.Size() < minSize {
			skipped++
			return false
		}
		if maxSize > 0 && info.Size() > maxSize {
			skipped++
			return false
		}

		// Glob filters
		if len(includeGlobs) > 0 && !matchAnyGlob(path, includeGlobs) {
			skipped++
			return false
		}
		if len(excludeGlobs) > 0 && matchAnyGlob(path, excludeGlobs) {
			skipped++
			return false
		}

		return true
	})
	return files, skipped, err
}

func processFiles(files []string, stats *AnonymizationStats, cfg *config.Config, runSeed int64) {
	var wg sync.WaitGroup
	fileChan := make(chan string, len(files))

	// Start worker goroutines
	for i := 0; i < cfg.MaxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for filePath := range fileChan {
				processFile(filePath, stats, cfg, runSeed)
			}
		}()
	}

	// Send files to workers
	for _, filePath := range files {
		fileChan <- filePath
	}
	close(fileChan)

	// Wait for all workers to complete
	wg.Wait()
}

func processFile(filePath string, stats *AnonymizationStats, cfg *config.Config, runSeed int64) {
	stats.incrementProcessed()

	rel, err := fs.RelSlash(cfg.TargetDir, filePath)
	if err != nil {
		failFile(stats, cfg, filepath.Base(filePath), err)
		return
	}

	outPath, err := fs.MirrorPath(cfg.TargetDir, filePath, cfg.OutputDir)
	if err != nil {
		failFile(stats, cfg, rel, err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		failFile(stats, cfg, rel, err)
		return
	}

	// Each file gets its own generator stream derived from the run seed and
	// its slash-relative path, so results do not depend on worker scheduling.
	fileSeed := seed.Derive(runSeed, rel)
	shifter, err := dateshift.NewShifter(cfg.DateFormat, cfg.MaxShiftDays, rand.New(rand.NewSource(fileSeed)))
	if err != nil {
		failFile(stats, cfg, rel, err)
		return
	}

	proc := textio.NewProcessor(shifter, cfg.Encoding, cfg.BufferSize)
	result, err := proc.ProcessFile(filePath, outPath)
	if err != nil {
		failFile(stats, cfg, rel, err)
		return
	}

	stats.addResult(result)
	stats.incrementSuccessful()

	if cfg.Verbose {
		t := stats.totals()
		fmt.Printf("✅ [%d/%d] %s: %d dates shifted\n", t.processed, t.total, rel, result.Shifted)
	}
}

func failFile(stats *AnonymizationStats, cfg *config.Config, name string, err error) {
	if cfg.Verbose {
		fmt.Printf("❌ [Failed] %s: %v\n", name, err)
	}
	stats.incrementFailed()
}

func printFinalStats(stats *AnonymizationStats, duration time.Duration) {
	t := stats.totals()

	fmt.Printf("\n📊 Anonymization Complete!\n")
	fmt.Printf("   ✅ Successful: %d\n", t.successful)
	fmt.Printf("   ❌ Failed: %d\n", t.failed)
	fmt.Printf("   📄 Lines: %d\n", t.lines)
	fmt.Printf("   📆 Dates: %d examined, %d shifted, %d kept\n", t.examined, t.shifted, t.kept)

	if t.successful > 0 && duration > 0 {
		filesPerSec := float64(t.successful) / duration.Seconds()
		fmt.Printf("   ⏱️  Time: %.2f seconds\n", duration.Seconds())
		fmt.Printf("   📈 Rate: %.1f files/sec\n", filesPerSec)

		if t.bytesRead > 0 {
			bytesPerSec := float64(t.bytesRead) / duration.Seconds()
			fmt.Printf("   💾 Throughput: %s\n", formatRate(bytesPerSec))
		}
	}
}

func describeEncoding(result *textio.Result) string {
	if result.Detected {
		return fmt.Sprintf("%s (detected, %d%% confidence)", result.Encoding, result.Confidence)
	}
	return fmt.Sprintf("%s (explicit)", result.Encoding)
}

func writeReport(cfg *config.Config, sum *report.Summary) {
	if !report.Enabled(cfg) {
		return
	}
	res, err := report.Write(cfg, sum)
	if err != nil {
		fmt.Printf("⚠️  Failed to write report: %v\n", err)
		return
	}
	if res != nil && !cfg.Quiet {
		fmt.Printf("\n🧾 Report saved to %s\n", res.Path)
	}
}

func parseGlobList(csv string) []string {
	var res []string
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

func matchAnyGlob(path string, patterns []string) bool {
	unix := strings.ReplaceAll(path, "\\", "/")
	for _, pat := range patterns {
		pat = strings.ReplaceAll(pat, "\\", "/")
		// doublestar supports ** so policy globs can match nested directories.
		if ok, err := doublestar.Match(pat, unix); err == nil && ok {
			return true
		}
	}
	return false
}

func formatRate(bytesPerSec float64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytesPerSec >= GB:
		return fmt.Sprintf("%.1f GB/s", bytesPerSec/GB)
	case bytesPerSec >= MB:
		return fmt.Sprintf("%.1f MB/s", bytesPerSec/MB)
	case bytesPerSec >= KB:
		return fmt.Sprintf("%.1f KB/s", bytesPerSec/KB)
	default:
		return fmt.Sprintf("%.1f B/s", bytesPerSec)
	}
}

func confirmProceed(prompt string) bool {
	fmt.Print(prompt)
	r := bufio.NewReader(os.Stdin)
	line, _ := r.ReadString('\n')
	s := strings.TrimSpace(strings.ToLower(line))
	if s == "" {
		return true
	}
	return s == "y" || s == "yes"
}
