package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ncruces/go-strftime"

	"date-shift/internal/dateshift"
	"date-shift/internal/textio"
)

// verify checks that an anonymized file could have been produced from its
// original: identical bytes outside date tokens, every shifted date within
// the allowed window, and unparseable dates untouched.

type verifier struct {
	layout  string
	maxDays int64
	verbose bool

	datesChecked int64
	datesShifted int64
	datesKept    int64
}

func main() {
	var (
		maxShiftDays  int64
		dateFormat    string
		encodingLabel string
		verbose       bool
	)

	flag.Int64Var(&maxShiftDays, "max_shift_days", 365, "Maximum shift the anonymization run was allowed to apply")
	flag.StringVar(&dateFormat, "date_format", "%Y-%m-%d", "strftime format the anonymization run used")
	flag.StringVar(&encodingLabel, "encoding", "", "Text encoding of both files (omit for auto-detection)")
	flag.BoolVar(&verbose, "v", false, "Print every shifted date pair")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: verify [options] original_file anonymized_file\n\n")
		fmt.Fprintf(os.Stderr, "Checks an anonymized file against its original: bytes outside date tokens\n")
		fmt.Fprintf(os.Stderr, "must match exactly and every shifted date must stay within the window.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExit codes: 0 consistent, 1 violations found, 2 usage error\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if maxShiftDays <= 0 {
		fmt.Fprintln(os.Stderr, "error: max_shift_days must be a positive integer")
		os.Exit(2)
	}
	layout, err := strftime.Layout(dateFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: unsupported date_format %q: %v\n", dateFormat, err)
		os.Exit(2)
	}

	origPath := flag.Arg(0)
	anonPath := flag.Arg(1)

	origLines, origEnc, err := textio.ReadLines(origPath, encodingLabel, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", origPath, err)
		os.Exit(1)
	}
	anonLines, anonEnc, err := textio.ReadLines(anonPath, encodingLabel, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", anonPath, err)
		os.Exit(1)
	}

	if verbose && origEnc != anonEnc {
		fmt.Printf("ℹ️  Encoding resolved differently: %s vs %s\n", origEnc, anonEnc)
	}

	v := &verifier{layout: layout, maxDays: maxShiftDays, verbose: verbose}
	violations := v.compare(origLines, anonLines)

	for _, violation := range violations {
		fmt.Printf("❌ %s\n", violation)
	}

	if len(violations) > 0 {
		fmt.Printf("\n❌ Verification failed: %d violation(s) across %d lines\n", len(violations), len(origLines))
		os.Exit(1)
	}

	fmt.Printf("✅ Files are consistent: %d lines, %d dates checked (%d shifted, %d kept)\n",
		len(origLines), v.datesChecked, v.datesShifted, v.datesKept)
}

func (v *verifier) compare(origLines, anonLines []string) []string {
	var violations []string

	if len(origLines) != len(anonLines) {
		violations = append(violations,
			fmt.Sprintf("line count differs: %d vs %d", len(origLines), len(anonLines)))
	}

	n := len(origLines)
	if len(anonLines) < n {
		n = len(anonLines)
	}
	for i := 0; i < n; i++ {
		violations = append(violations, v.compareLine(i+1, origLines[i], anonLines[i])...)
	}
	return violations
}

func (v *verifier) compareLine(num int, orig, anon string) []string {
	origSpans := dateshift.Pattern.FindAllStringIndex(orig, -1)
	anonSpans := dateshift.Pattern.FindAllStringIndex(anon, -1)

	if len(origSpans) != len(anonSpans) {
		return []string{fmt.Sprintf("line %d: date token count differs (%d vs %d)",
			num, len(origSpans), len(anonSpans))}
	}

	var problems []string
	if outsideTokens(orig, origSpans) != outsideTokens(anon, anonSpans) {
		problems = append(problems, fmt.Sprintf("line %d: bytes outside date tokens differ", num))
	}

	for i := range origSpans {
		origToken := orig[origSpans[i][0]:origSpans[i][1]]
		anonToken := anon[anonSpans[i][0]:anonSpans[i][1]]
		v.datesChecked++

		origDay, origErr := time.Parse(v.layout, origToken)
		anonDay, anonErr := time.Parse(v.layout, anonToken)

		switch {
		case origErr != nil:
			// Unparseable originals pass through the anonymizer untouched.
			if origToken != anonToken {
				problems = append(problems, fmt.Sprintf("line %d: unparseable date %q was altered to %q",
					num, origToken, anonToken))
			} else {
				v.datesKept++
			}
		case anonErr != nil:
			problems = append(problems, fmt.Sprintf("line %d: date %q became unparseable %q",
				num, origToken, anonToken))
		default:
			delta := int64(anonDay.Sub(origDay).Hours() / 24)
			if delta < -v.maxDays || delta > v.maxDays {
				problems = append(problems, fmt.Sprintf("line %d: date %q shifted %+d days to %q, beyond ±%d",
					num, origToken, delta, anonToken, v.maxDays))
				continue
			}
			if delta != 0 {
				v.datesShifted++
			}
			if v.verbose {
				fmt.Printf("   line %d: %s -> %s (%+d days)\n", num, origToken, anonToken, delta)
			}
		}
	}
	return problems
}

// outsideTokens concatenates the segments of a line not covered by date
// tokens. With equal token counts, equal remainders mean everything except
// the dates survived byte-for-byte.
func outsideTokens(line string, spans [][]int) string {
	var rest string
	prev := 0
	for _, span := range spans {
		rest += line[prev:span[0]]
		prev = span[1]
	}
	return rest + line[prev:]
}
