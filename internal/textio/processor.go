package textio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/encoding"

	"date-shift/internal/charset"
	"date-shift/internal/dateshift"
	"date-shift/internal/fs"
)

// Processor runs the anonymization pipeline for one file: raw read,
// transparent LZ4 decompression, encoding resolution, line-by-line
// substitution, and write-through in the same encoding. Line chunks keep
// their terminators, so everything outside matched tokens round-trips
// byte-for-byte within the encoding's fidelity.
type Processor struct {
	shifter    *dateshift.Shifter
	encoding   string // explicit label, empty means auto-detect
	bufferSize int
}

// Result summarizes one processed file.
type Result struct {
	Encoding   string
	Detected   bool
	Confidence int
	Lines      int64
	Examined   int64
	Shifted    int64
	Kept       int64
	BytesIn    int64
	BytesOut   int64
}

func NewProcessor(shifter *dateshift.Shifter, encodingLabel string, bufferSize int) *Processor {
	if bufferSize <= 0 {
		bufferSize = 64 * 1024
	}
	return &Processor{
		shifter:    shifter,
		encoding:   encodingLabel,
		bufferSize: bufferSize,
	}
}

// ProcessFile anonymizes inputPath into outputPath. Parse warnings are logged
// with file and line context and the affected tokens pass through unchanged;
// everything else is fatal for this file and reported as an error.
func (p *Processor) ProcessFile(inputPath, outputPath string) (*Result, error) {
	ops := fs.NewFileOperations(p.bufferSize)

	raw, err := ops.ReadRaw(inputPath)
	if err != nil {
		return nil, err
	}
	bytesIn := int64(len(raw))

	if fs.IsLZ4Path(inputPath) {
		raw, err = decompressLZ4(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", inputPath, err)
		}
	}

	enc, encName, detection, err := p.resolveEncoding(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Encoding: encName,
		BytesIn:  bytesIn,
	}
	if detection != nil {
		result.Detected = true
		result.Confidence = detection.Confidence
	}

	reader := bufio.NewReaderSize(charset.NewReader(bytes.NewReader(raw), enc), p.bufferSize)

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}

	var sink io.Writer = out
	var lzWriter *lz4.Writer
	if fs.IsLZ4Path(outputPath) {
		lzWriter = lz4.NewWriter(out)
		sink = lzWriter
	}
	encWriter := charset.NewWriter(sink, enc)
	writer := bufio.NewWriterSize(encWriter, p.bufferSize)

	// Flush order is load-bearing: buffered text, then the encoder's
	// transform state, then the LZ4 frame trailer, then the file itself.
	finalize := func() error {
		var firstErr error
		if err := writer.Flush(); err != nil {
			firstErr = err
		}
		if err := encWriter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		if lzWriter != nil {
			if err := lzWriter.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if err := out.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr
	}

	examined0, shifted0, kept0 := p.shifter.Examined, p.shifter.Shifted, p.shifter.Kept

	var lineNum int64
	for {
		chunk, readErr := reader.ReadString('\n')
		if len(chunk) > 0 {
			lineNum++
			shifted, warnings := p.shifter.ShiftLine(chunk)
			for _, warning := range warnings {
				log.Printf("⚠️  %s:%d: %v", inputPath, lineNum, warning)
			}
			if _, werr := writer.WriteString(shifted); werr != nil {
				finalize()
				return nil, fmt.Errorf("failed to write to %s: %w", outputPath, werr)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			finalize()
			return nil, fmt.Errorf("failed to read from %s: %w", inputPath, readErr)
		}
	}

	if err := finalize(); err != nil {
		return nil, fmt.Errorf("failed to finalize %s: %w", outputPath, err)
	}

	result.Lines = lineNum
	result.Examined = p.shifter.Examined - examined0
	result.Shifted = p.shifter.Shifted - shifted0
	result.Kept = p.shifter.Kept - kept0
	if size, serr := fs.GetFileSize(outputPath); serr == nil {
		result.BytesOut = size
	}
	return result, nil
}

func (p *Processor) resolveEncoding(raw []byte) (encoding.Encoding, string, *charset.Detection, error) {
	if p.encoding != "" {
		enc, name, err := charset.Resolve(p.encoding)
		if err != nil {
			return nil, "", nil, err
		}
		return enc, name, nil, nil
	}

	detection, err := charset.Detect(raw)
	if err != nil {
		return nil, "", nil, err
	}
	enc, name, err := charset.Resolve(detection.Charset)
	if err != nil {
		return nil, "", nil, fmt.Errorf("detected charset %q is not supported: %w", detection.Charset, charset.ErrUndetected)
	}
	return enc, name, detection, nil
}

// ReadLines decodes a file with the same pipeline the anonymizer uses (raw
// read, LZ4 transparency, encoding resolution) and returns its line chunks
// with terminators intact. The verifier reads both sides of a pair this way.
func ReadLines(path, encodingLabel string, bufferSize int) ([]string, string, error) {
	if bufferSize <= 0 {
		bufferSize = 64 * 1024
	}
	ops := fs.NewFileOperations(bufferSize)

	raw, err := ops.ReadRaw(path)
	if err != nil {
		return nil, "", err
	}
	if fs.IsLZ4Path(path) {
		raw, err = decompressLZ4(raw)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decompress %s: %w", path, err)
		}
	}

	var (
		enc     encoding.Encoding
		encName string
	)
	if encodingLabel != "" {
		enc, encName, err = charset.Resolve(encodingLabel)
		if err != nil {
			return nil, "", err
		}
	} else {
		detection, derr := charset.Detect(raw)
		if derr != nil {
			return nil, "", derr
		}
		enc, encName, err = charset.Resolve(detection.Charset)
		if err != nil {
			return nil, "", fmt.Errorf("detected charset %q is not supported: %w", detection.Charset, charset.ErrUndetected)
		}
	}

	reader := bufio.NewReaderSize(charset.NewReader(bytes.NewReader(raw), enc), bufferSize)
	var lines []string
	for {
		chunk, readErr := reader.ReadString('\n')
		if len(chunk) > 0 {
			lines = append(lines, chunk)
		}
		if readErr == io.EOF {
			return lines, encName, nil
		}
		if readErr != nil {
			return nil, "", fmt.Errorf("failed to read from %s: %w", path, readErr)
		}
	}
}

func decompressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	decompressed, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}
