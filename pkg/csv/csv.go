// Package csv reads, writes, and tidy-formats rows of delimited text.
//
// A row is an ordered slice of field strings. Reading turns delimited
// text into rows, stripping unquoted edge whitespace and honoring
// quoted spans in which separators and newlines are literal content.
// Writing serializes rows back with minimal-but-correct quoting, and
// tidy writing column-aligns the output for human readers.
//
// The field separator can be fixed by the caller or auto-detected
// from a sample of the input by the Sniffer.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by
// multiple goroutines. Each call owns its own reader or writer state;
// there is no package-level mutable state.
//
//	// Safe: concurrent reads of independent streams
//	go func() { csv.ReadString(input1) }()
//	go func() { csv.ReadString(input2) }()
//
// # Reading APIs
//
//   - ReadString / ReadStringWithOptions - read from a string
//   - ReadAll / ReadAllWithOptions - read from an io.Reader
//   - ReadStringDetect / ReadAllDetect - detect the separator first
//   - RowScanner - row-at-a-time streaming reads
//
// Example:
//
//	rows, err := csv.ReadString("name,age\nAlice,30\nBob,25")
//	// rows: [["name" "age"] ["Alice" "30"] ["Bob" "25"]]
package csv

import (
	"bytes"
	"io"
	"strings"

	"github.com/rowset/tidycsv/internal/parser"
)

// detectSampleSize caps the number of input bytes handed to the
// Sniffer by the detecting read entry points.
const detectSampleSize = 4096

// ReadString reads all rows from input using the ',' separator.
//
// Blank lines produce no row; every returned row has at least one
// field. A line holding only a separator is a row of two empty
// fields. Unquoted whitespace at either edge of a field is stripped.
func ReadString(input string) ([][]string, error) {
	return ReadAll(strings.NewReader(input))
}

// ReadStringWithOptions reads all rows from input with custom options.
//
// Example:
//
//	opts := csv.DefaultReaderOptions()
//	opts.Separator = '\t'
//	rows, err := csv.ReadStringWithOptions("a\tb\nc\td", opts)
func ReadStringWithOptions(input string, opts ReaderOptions) ([][]string, error) {
	return ReadAllWithOptions(strings.NewReader(input), opts)
}

// ReadAll reads all rows from r using the ',' separator.
func ReadAll(r io.Reader) ([][]string, error) {
	return ReadAllWithOptions(r, DefaultReaderOptions())
}

// ReadAllWithOptions reads all rows from r with custom options.
//
// A structural failure is returned as a *ParseError; an I/O failure
// from r is returned unchanged. Rows read before the failure are
// returned alongside the error.
func ReadAllWithOptions(r io.Reader, opts ReaderOptions) ([][]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return parser.New(r, opts.Separator).ReadAll()
}

// ReadStringDetect reads all rows from input, detecting the separator
// from the default candidate set first. It returns the separator used.
func ReadStringDetect(input string) ([][]string, rune, error) {
	return ReadAllDetect(strings.NewReader(input))
}

// ReadAllDetect reads all rows from r, detecting the separator from
// the default candidate set on a prefix of the input first. It
// returns the separator used.
func ReadAllDetect(r io.Reader) ([][]string, rune, error) {
	return ReadAllDetectWithOptions(r, DefaultReaderOptions())
}

// ReadAllDetectWithOptions is like ReadAllDetect with a caller-chosen
// candidate set. The Separator option is ignored; detection picks it.
func ReadAllDetectWithOptions(r io.Reader, opts ReaderOptions) ([][]string, rune, error) {
	candidates := opts.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, c := range candidates {
		if !validSeparator(c) {
			return nil, 0, &OptionsError{Field: "Candidates", Message: "invalid candidate separator"}
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}

	sep := NewSnifferWithCandidates(detectionSample(data), candidates).DetectSeparator()
	rows, err := parser.New(bytes.NewReader(data), sep).ReadAll()
	return rows, sep, err
}

// detectionSample cuts a detection prefix out of data, preferring to
// end the sample on a line boundary so no candidate is penalized by a
// truncated final row.
func detectionSample(data []byte) string {
	if len(data) <= detectSampleSize {
		return string(data)
	}
	sample := data[:detectSampleSize]
	if i := bytes.LastIndexByte(sample, '\n'); i > 0 {
		sample = sample[:i]
	}
	return string(sample)
}
