package dateshift

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"github.com/ncruces/go-strftime"
)

// Pattern is the lexical shape the scanner looks for. It is fixed on purpose:
// the parse/render format is configurable, the scan shape is not. With a
// non-default date format, YYYY-MM-DD shaped tokens are still the only ones
// found; they then fail to parse and pass through unchanged.
var Pattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

const maxShiftDaysLimit = 1 << 31

// Shifter rewrites matched date tokens by a bounded random day offset.
// It owns one random stream; draws happen only after a successful parse, in
// strict left-to-right match order, so a fixed seed reproduces a run exactly
// and malformed tokens never perturb later shifts. Not safe for concurrent
// use; batch callers build one Shifter per file.
type Shifter struct {
	format  string
	layout  string
	maxDays int64
	rng     *rand.Rand

	// Per-stream counters, read after processing.
	Examined int64
	Shifted  int64
	Kept     int64
}

// NewShifter validates the strftime format up front and binds the stream.
// Formats that cannot be expressed as a Go time layout are rejected here,
// before any file is touched.
func NewShifter(format string, maxShiftDays int64, rng *rand.Rand) (*Shifter, error) {
	if maxShiftDays <= 0 {
		return nil, fmt.Errorf("max shift days must be greater than 0, got %d", maxShiftDays)
	}
	if maxShiftDays > maxShiftDaysLimit {
		return nil, fmt.Errorf("max shift days must be at most %d, got %d", maxShiftDaysLimit, maxShiftDays)
	}
	if rng == nil {
		return nil, fmt.Errorf("random stream is required")
	}

	layout, err := strftime.Layout(format)
	if err != nil {
		return nil, fmt.Errorf("unsupported date format %q: %w", format, err)
	}

	return &Shifter{
		format:  format,
		layout:  layout,
		maxDays: maxShiftDays,
		rng:     rng,
	}, nil
}

// Format returns the configured strftime format string.
func (s *Shifter) Format() string { return s.format }

// MaxShiftDays returns the inclusive shift bound in days.
func (s *Shifter) MaxShiftDays() int64 { return s.maxDays }

// ShiftLine rewrites every matched token in line and returns the result plus
// one warning per token that was kept unmodified. Matches are replaced
// left-to-right without overlap; everything outside the matches, terminator
// bytes included, is copied through verbatim.
func (s *Shifter) ShiftLine(line string) (string, []error) {
	var warnings []error
	out := Pattern.ReplaceAllStringFunc(line, func(token string) string {
		s.Examined++
		replacement, err := s.shiftToken(token)
		if err != nil {
			s.Kept++
			warnings = append(warnings, err)
			return token
		}
		s.Shifted++
		return replacement
	})
	return out, warnings
}

// shiftToken parses, draws, shifts, and re-renders a single matched token.
// The draw happens only after the parse succeeds.
func (s *Shifter) shiftToken(token string) (string, error) {
	parsed, err := time.Parse(s.layout, token)
	if err != nil {
		return "", fmt.Errorf("could not parse date %q with format %q: %v (keeping original)", token, s.format, err)
	}

	delta := s.rng.Int63n(2*s.maxDays+1) - s.maxDays
	shifted := parsed.AddDate(0, 0, int(delta))

	// The scan shape and Go's numeric layouts only round-trip four-digit
	// years; a shift that leaves that range is kept out of the output.
	if year := shifted.Year(); year < 0 || year > 9999 {
		return "", fmt.Errorf("shift of %d days moved %q outside the representable year range (keeping original)", delta, token)
	}

	return shifted.Format(s.layout), nil
}
