package csv

import (
	"bytes"
	"io"

	"github.com/rowset/tidycsv/internal/parser"
)

// RowScanner provides a streaming interface for reading CSV rows one
// at a time.
//
// Example usage:
//
//	file, _ := os.Open("data.csv")
//	defer file.Close()
//
//	sc := csv.NewRowScanner(file)
//	for sc.Scan() {
//	    fmt.Println(sc.Row())
//	}
//	if err := sc.Err(); err != nil {
//	    // handle error
//	}
type RowScanner struct {
	reader  io.Reader
	sep     rune
	detect  bool
	p       *parser.Parser
	row     []string
	err     error
	started bool
}

// NewRowScanner creates a RowScanner reading CSV from r with the ','
// separator.
func NewRowScanner(r io.Reader) *RowScanner {
	return &RowScanner{
		reader: r,
		sep:    ',',
	}
}

// SetSeparator sets the field separator. Returns the RowScanner for
// method chaining. It must be called before the first Scan.
func (s *RowScanner) SetSeparator(sep rune) *RowScanner {
	s.sep = sep
	s.detect = false
	return s
}

// DetectSeparator makes the scanner detect the separator from a
// prefix of the input on the first Scan, using the default candidate
// set. Returns the RowScanner for method chaining.
func (s *RowScanner) DetectSeparator() *RowScanner {
	s.detect = true
	return s
}

// Scan advances the scanner to the next row. It returns false when
// the input is exhausted or a failure occurs; Err reports the failure
// afterwards.
func (s *RowScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.started {
		if err := s.start(); err != nil {
			s.err = err
			return false
		}
		s.started = true
	}

	row, err := s.p.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		s.err = err
		return false
	}
	s.row = row
	return true
}

// Row returns the current row. It is only valid after Scan returned
// true and may be overwritten by the next Scan.
func (s *RowScanner) Row() []string {
	return s.row
}

// Separator returns the separator in use. When detection is enabled
// the result is meaningful only after the first Scan.
func (s *RowScanner) Separator() rune {
	return s.sep
}

// Err returns the first failure encountered while scanning, or nil.
// Reaching the end of the input is not a failure.
func (s *RowScanner) Err() error {
	return s.err
}

// start builds the row parser, running separator detection first when
// it was requested.
func (s *RowScanner) start() error {
	if !s.detect {
		s.p = parser.New(s.reader, s.sep)
		return nil
	}

	// Detection needs the whole prefix anyway; buffering the input
	// keeps the scanner a single-pass consumer of the caller's stream.
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return err
	}
	s.sep = NewSniffer(detectionSample(data)).DetectSeparator()
	s.p = parser.New(bytes.NewReader(data), s.sep)
	return nil
}
