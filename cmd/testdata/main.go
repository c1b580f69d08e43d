package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/encoding/charmap"
)

type config struct {
	OutDir        string
	NoteCount     int
	ScheduleCount int
	LogCount      int
	ManifestCount int
	Seed          int64
	Force         bool
	Profile       string
}
type generator struct {
	cfg config
	rnd *rand.Rand
}

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if cfg.Force {
		if err := os.RemoveAll(cfg.OutDir); err != nil {
			fmt.Fprintf(os.Stderr, "❌ failed to clear output directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := ensureEmptyDir(cfg.OutDir); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	rnd := rand.New(rand.NewSource(cfg.seed()))
	gen := generator{cfg: cfg, rnd: rnd}
	if err := gen.run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✨ Test data generated in %s\n", cfg.OutDir)
}
func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.OutDir, "out", "testdata", "Output directory for the generated corpus")
	flag.IntVar(&cfg.NoteCount, "notes", 8, "Number of meeting notes to generate")
	flag.IntVar(&cfg.ScheduleCount, "schedules", 4, "Number of CSV schedules to generate")
	flag.IntVar(&cfg.LogCount, "logs", 6, "Number of service logs to generate")
	flag.IntVar(&cfg.ManifestCount, "manifests", 3, "Number of JSON release manifests to generate")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Optional deterministic seed (defaults to current time)")
	flag.BoolVar(&cfg.Force, "force", false, "Allow overwriting an existing directory by clearing it first")
	flag.StringVar(&cfg.Profile, "profile", "office", "Dataset profile: office (shared drive) or logs (server logs)")
	flag.Parse()
	cfg.Profile = strings.ToLower(strings.TrimSpace(cfg.Profile))
	switch cfg.Profile {
	case "", "office", "corp", "share", "shared", "drive":
		cfg.Profile = "office"
	case "logs", "log", "server", "ops":
		cfg.Profile = "logs"
	}
	return cfg
}
func (c config) validate() error {
	if c.OutDir == "" {
		return errors.New("output directory is required")
	}
	if c.NoteCount < 0 || c.ScheduleCount < 0 || c.LogCount < 0 || c.ManifestCount < 0 {
		return errors.New("file counts cannot be negative")
	}
	switch c.Profile {
	case "office", "logs":
	default:
		return fmt.Errorf("invalid profile %q (must be 'office' or 'logs')", c.Profile)
	}
	return nil
}
func (c config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
func ensureEmptyDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, 0o755)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty (use -force to overwrite)", path)
	}
	return nil
}
func (g *generator) run() error {
	switch g.cfg.Profile {
	case "office":
		return g.generateOfficeCorpus()
	case "logs":
		return g.generateLogCorpus()
	default:
		return fmt.Errorf("unsupported profile %q", g.cfg.Profile)
	}
}

// --- Office profile ---
func (g *generator) generateOfficeCorpus() error {
	root := g.cfg.OutDir
	structure := []string{
		filepath.Join(root, "Documents", "Notes"),
		filepath.Join(root, "Documents", "Plans"),
		filepath.Join(root, "Finance", "Schedules"),
		filepath.Join(root, "HR", "Reviews"),
		filepath.Join(root, "IT", "Manifests"),
		filepath.Join(root, "Operations", "Exports"),
	}
	for _, dir := range structure {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	for i := 0; i < g.cfg.NoteCount; i++ {
		title := fmt.Sprintf("%s %s Sync", g.pick(meetingPrefixes), titleCase(g.pick(departments)))
		ext := ".md"
		if i%3 == 2 {
			ext = ".txt"
		}
		name := fmt.Sprintf("%s-%02d%s", slugify(title), i+1, ext)
		path := filepath.Join(root, "Documents", "Notes", name)
		if err := os.WriteFile(path, []byte(g.renderMeetingNotes(title)), 0o644); err != nil {
			return fmt.Errorf("notes: %w", err)
		}
	}
	for i := 0; i < g.cfg.ScheduleCount; i++ {
		name := fmt.Sprintf("%s-%d-schedule-%02d.csv", strings.ToLower(g.pick(quarters)), 2019+g.rnd.Intn(4), i+1)
		path := filepath.Join(root, "Finance", "Schedules", name)
		if err := os.WriteFile(path, []byte(g.renderScheduleCSV()), 0o644); err != nil {
			return fmt.Errorf("schedules: %w", err)
		}
	}
	reviewCount := min(len(attendees), (g.cfg.NoteCount+1)/2)
	for i := 0; i < reviewCount; i++ {
		name := attendees[i]
		path := filepath.Join(root, "HR", "Reviews", fmt.Sprintf("%s-review.txt", slugify(name)))
		if err := os.WriteFile(path, []byte(g.renderReviewNotes(name)), 0o644); err != nil {
			return fmt.Errorf("reviews: %w", err)
		}
	}
	for i := 0; i < g.cfg.ManifestCount; i++ {
		app := g.pick(applications)
		path := filepath.Join(root, "IT", "Manifests", fmt.Sprintf("%s-release-%02d.json", slugify(app), i+1))
		if err := os.WriteFile(path, g.renderReleaseManifest(app), 0o644); err != nil {
			return fmt.Errorf("manifests: %w", err)
		}
	}
	if err := writeLatin1(filepath.Join(root, "Documents", "Notes", "comite-pilotage-latin1.txt"), g.renderLatin1Memo()); err != nil {
		return fmt.Errorf("latin1 memo: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Documents", "Plans", "rollout-plan.txt"), []byte(g.renderRolloutPlan()), 0o644); err != nil {
		return fmt.Errorf("rollout plan: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Documents", "Plans", "release-checklist.txt"), []byte(g.renderReleaseChecklist()), 0o644); err != nil {
		return fmt.Errorf("checklist: %w", err)
	}
	if err := writeLZ4(filepath.Join(root, "Operations", "Exports", "audit-trail.log.lz4"), g.renderAuditTrail()); err != nil {
		return fmt.Errorf("audit trail: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Operations", "Exports", "import-holdout.txt"), []byte(g.renderHoldoutRows()), 0o644); err != nil {
		return fmt.Errorf("holdout: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Operations", "Exports", "chart.png"), g.pngDecoy(), 0o644); err != nil {
		return fmt.Errorf("png decoy: %w", err)
	}
	return os.WriteFile(filepath.Join(root, "README.md"), []byte(g.renderOfficeReadme()), 0o644)
}

// --- Log profile ---
func (g *generator) generateLogCorpus() error {
	root := g.cfg.OutDir
	structure := []string{
		filepath.Join(root, "var", "log", "apps"),
		filepath.Join(root, "var", "log", "rotated"),
		filepath.Join(root, "var", "exports"),
	}
	for _, dir := range structure {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	for i := 0; i < g.cfg.LogCount; i++ {
		service := g.randomServiceName()
		path := filepath.Join(root, "var", "log", "apps", fmt.Sprintf("%s-%02d.log", service, i+1))
		if err := os.WriteFile(path, []byte(g.renderServiceLog(service)), 0o644); err != nil {
			return fmt.Errorf("service logs: %w", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "var", "log", "auth.log"), []byte(g.renderAuthLog()), 0o600); err != nil {
		return fmt.Errorf("auth log: %w", err)
	}
	rotated := g.randomServiceName()
	if err := writeLZ4(filepath.Join(root, "var", "log", "rotated", rotated+".log.lz4"), g.renderServiceLog(rotated)); err != nil {
		return fmt.Errorf("rotated log: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "var", "exports", "accounts-export.csv"), []byte(g.renderAccountExport()), 0o644); err != nil {
		return fmt.Errorf("account export: %w", err)
	}
	return os.WriteFile(filepath.Join(root, "var", "log", "edge-cases.log"), []byte(g.renderHoldoutRows()), 0o644)
}

// --- Content renderers ---
func (g *generator) renderMeetingNotes(title string) string {
	date := g.randomDate()
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "# %s\n\n", title)
	fmt.Fprintf(builder, "Date: %s\n", isoDate(date))
	fmt.Fprintf(builder, "Attendees: %s, %s, %s\n\n", g.pick(attendees), g.pick(attendees), g.pick(attendees))
	builder.WriteString("Agenda:\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(builder, "- %s\n", g.randomSentence())
	}
	builder.WriteString("\nDecisions:\n")
	for i := 0; i < 2+g.rnd.Intn(2); i++ {
		fmt.Fprintf(builder, "- %s: %s\n", isoDate(g.randomDate()), g.randomSentence())
	}
	builder.WriteString("\nAction items:\n")
	for i := 0; i < 3; i++ {
		due := date.AddDate(0, 0, 7+g.rnd.Intn(21))
		fmt.Fprintf(builder, "- %s to %s by %s\n", g.pick(attendees), g.pick(actionItems), isoDate(due))
	}
	fmt.Fprintf(builder, "\nNext review: %s\n", isoDate(date.AddDate(0, 1, 0)))
	return builder.String()
}
func (g *generator) renderScheduleCSV() string {
	builder := &strings.Builder{}
	builder.WriteString("employee,start_date,check_in,follow_up,notes\n")
	rows := 8 + g.rnd.Intn(6)
	for i := 0; i < rows; i++ {
		start := g.randomDate()
		checkIn := start.AddDate(0, 0, 14+g.rnd.Intn(30))
		followUp := checkIn.AddDate(0, 1, g.rnd.Intn(10))
		fmt.Fprintf(builder, "%s,%s,%s,%s,%s\n", g.pick(attendees), isoDate(start), isoDate(checkIn), isoDate(followUp), g.pick(actionItems))
	}
	return builder.String()
}
func (g *generator) renderReviewNotes(name string) string {
	reviewDate := g.randomDate()
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Performance review: %s\n", name)
	fmt.Fprintf(builder, "Review date: %s\n", isoDate(reviewDate))
	fmt.Fprintf(builder, "Previous review: %s\n\n", isoDate(reviewDate.AddDate(0, -6, -g.rnd.Intn(20))))
	builder.WriteString("Summary:\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(builder, "%s\n", g.randomSentence())
	}
	builder.WriteString("\nGoals:\n")
	for i := 0; i < 2+g.rnd.Intn(2); i++ {
		fmt.Fprintf(builder, "- %s by %s\n", g.pick(actionItems), isoDate(reviewDate.AddDate(0, 1+i, g.rnd.Intn(15))))
	}
	return builder.String()
}

type releaseMilestone struct {
	Name string `json:"name"`
	Due  string `json:"due"`
}
type releaseManifest struct {
	Application  string             `json:"application"`
	Version      string             `json:"version"`
	Region       string             `json:"region"`
	Cohort       string             `json:"cohort"`
	Released     string             `json:"released"`
	SupportUntil string             `json:"support_until"`
	Milestones   []releaseMilestone `json:"milestones"`
}

func (g *generator) renderReleaseManifest(app string) []byte {
	released := g.randomDate()
	manifest := releaseManifest{
		Application:  app,
		Version:      fmt.Sprintf("%d.%d.%d", 1+g.rnd.Intn(4), g.rnd.Intn(10), g.rnd.Intn(20)),
		Region:       g.pick(regions),
		Cohort:       g.pick(releaseCohorts),
		Released:     isoDate(released),
		SupportUntil: isoDate(released.AddDate(1, 6, 0)),
	}
	for i := 0; i < 3+g.rnd.Intn(3); i++ {
		manifest.Milestones = append(manifest.Milestones, releaseMilestone{
			Name: g.pick(initiatives),
			Due:  isoDate(released.AddDate(0, 1+i, g.rnd.Intn(15))),
		})
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return []byte("{}\n")
	}
	return append(data, '\n')
}
func (g *generator) renderServiceLog(service string) string {
	lines := make([]string, 0, 22)
	ts := g.randomTime()
	for i := 0; i < 18; i++ {
		ts = ts.Add(time.Duration(2+g.rnd.Intn(18)) * time.Minute)
		level := g.pick(logLevels)
		message := g.pick(logMessages)
		lines = append(lines, fmt.Sprintf("%s %s %s: %s", ts.Format("2006-01-02 15:04:05"), level, service, message))
		if i%7 == 6 {
			lines = append(lines, "    retrying in 30s")
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
func (g *generator) renderAuthLog() string {
	lines := make([]string, 0, 14)
	ts := g.randomTime()
	for i := 0; i < 14; i++ {
		ts = ts.Add(time.Duration(5+g.rnd.Intn(25)) * time.Minute)
		user := g.pick(authUsers)
		event := g.pick(authEvents)
		lines = append(lines, fmt.Sprintf("%s sshd[%d]: %s for %s from 10.%d.%d.%d port %d ssh2",
			ts.Format(time.RFC3339), 400+g.rnd.Intn(500), event, user,
			10+g.rnd.Intn(20), g.rnd.Intn(200), g.rnd.Intn(200), 40000+g.rnd.Intn(2000)))
	}
	return strings.Join(lines, "\n") + "\n"
}
func (g *generator) renderAccountExport() string {
	builder := &strings.Builder{}
	builder.WriteString("account_id,account,opened,last_active,plan\n")
	rows := 10 + g.rnd.Intn(8)
	for i := 0; i < rows; i++ {
		opened := g.randomDate()
		lastActive := opened.AddDate(0, g.rnd.Intn(18), g.rnd.Intn(28))
		fmt.Fprintf(builder, "%06d,%s,%s,%s,%s\n", 100000+g.rnd.Intn(900000), slugify(g.pick(applications)), isoDate(opened), isoDate(lastActive), g.pick(accountPlans))
	}
	return builder.String()
}
func (g *generator) renderAuditTrail() string {
	lines := make([]string, 0, 16)
	ts := g.randomTime()
	for i := 0; i < 16; i++ {
		ts = ts.Add(time.Duration(10+g.rnd.Intn(50)) * time.Minute)
		lines = append(lines, fmt.Sprintf("%s user=%s action=%s object=%s", ts.Format("2006-01-02 15:04:05"), slugify(g.pick(attendees)), g.pick(auditActions), g.pick(nouns)))
	}
	return strings.Join(lines, "\n") + "\n"
}
func (g *generator) renderLatin1Memo() string {
	builder := &strings.Builder{}
	builder.WriteString("Compte rendu: comité de pilotage\n")
	fmt.Fprintf(builder, "Date: %s\n", isoDate(g.randomDate()))
	builder.WriteString("Présents: Hélène Dubois, Jürgen Möller, André Petit\n\n")
	builder.WriteString("Décisions:\n")
	fmt.Fprintf(builder, "- %s: budget révisé approuvé\n", isoDate(g.randomDate()))
	fmt.Fprintf(builder, "- %s: migration reportée au %s\n", isoDate(g.randomDate()), isoDate(g.randomDate()))
	fmt.Fprintf(builder, "\nProchaine réunion: %s\n", isoDate(g.randomDate()))
	return builder.String()
}
func (g *generator) renderRolloutPlan() string {
	start := g.randomDate()
	lines := []string{
		"ROLLOUT PLAN",
		"",
		fmt.Sprintf("Phase 1 begins %s and covers the %s cohort.", isoDate(start), g.pick(releaseCohorts)),
		fmt.Sprintf("Phase 2 begins %s once %s sign-off lands.", isoDate(start.AddDate(0, 0, 14)), g.pick(departments)),
		fmt.Sprintf("Freeze window: %s to %s.", isoDate(start.AddDate(0, 1, 0)), isoDate(start.AddDate(0, 1, 5))),
		"",
		fmt.Sprintf("Rollback owner: %s", g.pick(attendees)),
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
func (g *generator) renderReleaseChecklist() string {
	lines := []string{
		"Release checklist",
		fmt.Sprintf("[x] branch cut %s", isoDate(g.randomDate())),
		fmt.Sprintf("[x] staging verified %s", isoDate(g.randomDate())),
		fmt.Sprintf("[ ] production window %s", isoDate(g.randomDate())),
		"[ ] announcement draft",
	}
	return strings.Join(lines, "\n")
}
func (g *generator) renderHoldoutRows() string {
	builder := &strings.Builder{}
	builder.WriteString("Rows held back by import validation, kept for reprocessing.\n")
	fmt.Fprintf(builder, "row %d: hired 2023-02-30 (day out of range)\n", 100+g.rnd.Intn(100))
	fmt.Fprintf(builder, "row %d: contract ends 2021-13-05 (month out of range)\n", 200+g.rnd.Intn(100))
	fmt.Fprintf(builder, "row %d: serial 98765-43-21098 logged twice\n", 300+g.rnd.Intn(100))
	fmt.Fprintf(builder, "row %d: audit window %s to %s passed checks\n", 400+g.rnd.Intn(100), isoDate(g.randomDate()), isoDate(g.randomDate()))
	return builder.String()
}
func (g *generator) renderOfficeReadme() string {
	builder := &strings.Builder{}
	builder.WriteString("# Synthetic shared-drive corpus\n\n")
	builder.WriteString("Generated rehearsal data for anonymization runs. Every document carries\n")
	builder.WriteString("calendar dates in ISO form so shifted output is easy to eyeball.\n\n")
	builder.WriteString("Special cases:\n\n")
	builder.WriteString("- `comite-pilotage-latin1.txt` is ISO-8859-1 encoded\n")
	builder.WriteString("- `rollout-plan.txt` uses CRLF line endings\n")
	builder.WriteString("- `release-checklist.txt` has no trailing newline\n")
	builder.WriteString("- `audit-trail.log.lz4` is LZ4 compressed\n")
	builder.WriteString("- `import-holdout.txt` contains impossible dates that should survive unchanged\n")
	builder.WriteString("- `chart.png` is a binary decoy that batch mode should skip\n")
	return builder.String()
}

// --- Encoding and framing variants ---
func (g *generator) pngDecoy() []byte {
	header := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	blob := make([]byte, 256)
	g.rnd.Read(blob)
	return append(header, blob...)
}
func writeLatin1(path, text string) error {
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
func writeLZ4(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := lz4.NewWriter(file)
	if _, err := zw.Write([]byte(content)); err != nil {
		file.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// --- Text helpers ---
func (g *generator) randomDate() time.Time {
	base := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, g.rnd.Intn(1500))
}
func (g *generator) randomTime() time.Time {
	day := g.randomDate()
	return day.Add(time.Duration(6+g.rnd.Intn(12))*time.Hour + time.Duration(g.rnd.Intn(60))*time.Minute + time.Duration(g.rnd.Intn(60))*time.Second)
}
func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
func (g *generator) randomServiceName() string {
	return g.pick(serviceNamePrefixes) + "-" + g.pick(serviceNameSuffixes)
}
func (g *generator) randomSentence() string {
	template := sentenceTemplates[g.rnd.Intn(len(sentenceTemplates))]
	var builder strings.Builder
	remaining := template
	for {
		start := strings.Index(remaining, "{{")
		if start == -1 {
			builder.WriteString(remaining)
			break
		}
		builder.WriteString(remaining[:start])
		end := strings.Index(remaining[start:], "}}")
		if end == -1 {
			builder.WriteString(remaining[start:])
			break
		}
		token := remaining[start+2 : start+end]
		builder.WriteString(g.resolveToken(token))
		remaining = remaining[start+end+2:]
	}
	sentence := strings.TrimSpace(builder.String())
	if sentence == "" {
		sentence = strings.TrimSpace(template)
	}
	if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") && !strings.HasSuffix(sentence, "?") {
		sentence += "."
	}
	return sentence
}
func (g *generator) resolveToken(token string) string {
	switch token {
	case "dept":
		return titleCase(g.pick(departments))
	case "verb":
		return g.pick(verbs)
	case "noun":
		return g.pick(nouns)
	case "metric":
		return g.pick(metrics)
	case "initiative":
		return g.pick(initiatives)
	case "adjective":
		return g.pick(adjectives)
	case "result":
		return g.pick(results)
	default:
		return g.pick(nouns)
	}
}
func (g *generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}
func slugify(title string) string {
	title = strings.ToLower(title)
	var buf strings.Builder
	buf.Grow(len(title))
	lastHyphen := false
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			buf.WriteRune(r)
			lastHyphen = false
			continue
		}
		if r == ' ' || r == '-' || r == '_' {
			if !lastHyphen && buf.Len() > 0 {
				buf.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	result := buf.String()
	result = strings.Trim(result, "-")
	if result == "" {
		result = fmt.Sprintf("file-%d", time.Now().UnixNano())
	}
	return result
}
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	words := strings.Fields(value)
	for i, word := range words {
		words[i] = titleCaseWord(word)
	}
	return strings.Join(words, " ")
}
func titleCaseWord(word string) string {
	parts := strings.Split(word, "-")
	for i, part := range parts {
		lower := strings.ToLower(part)
		if lower == "" {
			continue
		}
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, "-")
}

// --- Data tables ---
var (
	quarters        = []string{"Q1", "Q2", "Q3", "Q4"}
	meetingPrefixes = []string{"Weekly", "Quarterly", "All-Hands", "Leadership", "Steering", "Project"}
	departments     = []string{"finance", "operations", "engineering", "people", "customer success", "security", "sales", "product"}

	attendees   = []string{"Jordan Li", "Priya Raman", "Alex Chen", "Maria Ortiz", "Samir Patel", "Fatima Alvi", "Noah Johnson", "Grace Muller", "Evelyn Price", "Mateo Silva"}
	actionItems = []string{"publish the finalized brief", "update the budget tracker", "deliver revised projections", "schedule stakeholder interviews", "review vendor compliance", "refresh the onboarding materials", "draft the communication plan", "prepare the rollout dashboard"}

	verbs       = []string{"accelerated", "completed", "piloted", "evaluated", "benchmarked", "finalized", "rescoped"}
	nouns       = []string{"roadmap", "program", "initiative", "deployment", "pilot", "dashboard", "playbook", "workflow"}
	metrics     = []string{"customer retention", "operating margin", "deployment velocity", "incident response time", "support backlog", "feature adoption"}
	initiatives = []string{"comms refresh", "risk assessment", "platform migration", "training plan", "automation suite", "client outreach"}
	adjectives  = []string{"cross-functional", "data-informed", "scalable", "measurable", "high-impact", "long-term"}
	results     = []string{"measurable gains", "notable savings", "strong engagement", "steady growth", "reduced variance"}

	applications   = []string{"atlas api", "compass portal", "horizon sync", "ledger ops", "pulse analytics", "relay gateway", "vector scheduler"}
	regions        = []string{"us-east-1", "us-west-2", "eu-central-1", "ap-southeast-2"}
	releaseCohorts = []string{"beta", "internal", "early-access", "general"}
	accountPlans   = []string{"starter", "team", "business", "enterprise"}

	serviceNamePrefixes = []string{"billing", "ledger", "relay", "pulse", "atlas", "compass"}
	serviceNameSuffixes = []string{"sync", "api", "worker", "exporter", "gateway"}
	logLevels           = []string{"INFO", "INFO", "INFO", "WARN", "ERROR"}
	logMessages         = []string{"request completed", "cache refreshed", "retention sweep finished", "upstream timeout", "queue drained", "batch window opened", "checkpoint persisted", "connection pool resized"}
	authUsers           = []string{"admin", "deploy", "svc-export", "ops", "root"}
	authEvents          = []string{"Accepted publickey", "Accepted password", "Failed password", "session opened", "session closed"}
	auditActions        = []string{"export.create", "export.download", "policy.update", "seed.rotate", "report.view"}

	sentenceTemplates = []string{
		"The {{dept}} team {{verb}} the {{noun}} to bolster {{metric}}.",
		"We observed {{adjective}} momentum across the {{initiative}}, yielding {{result}}.",
		"Leadership requested a deeper dive on {{metric}} following the latest {{noun}}.",
		"A {{adjective}} {{initiative}} is underway to improve {{metric}}.",
		"The {{noun}} review confirmed {{result}} for the {{dept}} group.",
	}
)
