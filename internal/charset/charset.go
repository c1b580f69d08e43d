package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUndetected signals that statistical detection produced no usable result.
// Callers treat it as fatal for the affected file; there is no retry.
var ErrUndetected = errors.New("unable to detect character encoding")

// Detection is the detector's best guess for a byte stream.
type Detection struct {
	Charset    string
	Language   string
	Confidence int
}

// Detect runs statistical charset detection over the entire raw content.
func Detect(data []byte) (*Detection, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrUndetected)
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndetected, err)
	}

	return &Detection{
		Charset:    best.Charset,
		Language:   best.Language,
		Confidence: best.Confidence,
	}, nil
}

// Resolve maps an encoding label (user-supplied or detector output) to a
// concrete encoding. WHATWG labels are tried first so common spellings like
// "latin-1" or "utf8" work, then the IANA registry for the detector's more
// formal names. The canonical name is returned alongside the encoding.
func Resolve(label string) (encoding.Encoding, string, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	if name == "" {
		return nil, "", errors.New("encoding label cannot be empty")
	}

	if enc, err := htmlindex.Get(name); err == nil {
		if canonical, nerr := htmlindex.Name(enc); nerr == nil {
			return enc, canonical, nil
		}
		return enc, label, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		// ianaindex returns a nil encoding without error for registered
		// but unsupported names.
		return nil, "", fmt.Errorf("unsupported encoding %q", label)
	}
	if canonical, nerr := ianaindex.IANA.Name(enc); nerr == nil {
		return enc, canonical, nil
	}
	return enc, label, nil
}

// NewReader decodes r from enc into UTF-8. Malformed bytes become U+FFFD
// instead of failing the stream.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}

// NewWriter encodes UTF-8 written to it into enc. Runes the target encoding
// cannot represent are replaced rather than aborting the write. Close must be
// called to flush the transformer.
func NewWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}
