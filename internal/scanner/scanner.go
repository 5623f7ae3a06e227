// Package scanner splits a character stream into CSV fields.
// It implements the quote-aware field grammar used by the row parser:
// optional quoted spans, doubled-quote escapes, and separator/newline
// field boundaries.
package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote reports a quoted span that never closes before
// end of input.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// state tracks the scanner's position relative to quoted spans.
// Kept as an explicit enumeration so the transition table stays
// auditable and testable on its own.
type state int

const (
	// stateUnquoted means the scanner is outside any quoted span.
	stateUnquoted state = iota
	// stateQuoted means the scanner is inside a quoted span, where
	// separators and newlines are literal content.
	stateQuoted
	// stateQuoteSeen means a quote was just read inside a quoted span.
	// The next rune decides between an escaped quote and span end.
	stateQuoteSeen
)

// Boundary describes what terminated a field.
type Boundary int

const (
	// FieldSep means the field ended at the separator; more fields
	// follow on the same row.
	FieldSep Boundary = iota
	// EndOfRow means the field ended at a newline.
	EndOfRow
	// EndOfInput means the field ended at the end of the stream.
	EndOfInput
)

// Field is one scanned field. Quoted records whether any quote
// character occurred in the field, which the parser uses to tell an
// explicitly quoted empty field from a blank line.
type Field struct {
	Value  string
	Quoted bool
}

// Scanner produces one field at a time from a character stream.
// No scanning state outlives a single field; a fresh Scanner per
// stream is all the setup required.
type Scanner struct {
	r    *bufio.Reader
	sep  rune
	line int
}

// New returns a Scanner reading fields from r, split on sep.
func New(r io.Reader, sep rune) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		sep:  sep,
		line: 1,
	}
}

// Line returns the 1-indexed line number the scanner is currently on.
func (s *Scanner) Line() int {
	return s.line
}

// Next scans and returns the next field together with the boundary
// that terminated it.
//
// Unquoted leading and trailing whitespace is stripped. When a field
// contains a quoted span, the span's content is the authoritative
// value and any unquoted text around it is discarded. Within a span a
// doubled quote is an escaped literal quote, and separators and
// newlines are ordinary content.
//
// A stream that ends inside an open quoted span yields
// ErrUnterminatedQuote. I/O errors from the underlying reader are
// returned unchanged.
func (s *Scanner) Next() (Field, Boundary, error) {
	var raw, quoted strings.Builder
	sawQuote := false
	st := stateUnquoted

	emit := func() Field {
		if sawQuote {
			return Field{Value: quoted.String(), Quoted: true}
		}
		return Field{Value: strings.TrimFunc(raw.String(), unicode.IsSpace)}
	}

	for {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			if st == stateQuoted {
				return Field{}, EndOfInput, ErrUnterminatedQuote
			}
			return emit(), EndOfInput, nil
		}
		if err != nil {
			return Field{}, EndOfInput, err
		}

		switch st {
		case stateUnquoted:
			switch {
			case r == '"':
				sawQuote = true
				st = stateQuoted
			case r == s.sep:
				return emit(), FieldSep, nil
			case r == '\n':
				s.line++
				return emit(), EndOfRow, nil
			default:
				// A preceding \r is trimmed with the rest of the
				// unquoted edge whitespace, so CRLF needs no case.
				raw.WriteRune(r)
			}

		case stateQuoted:
			if r == '"' {
				st = stateQuoteSeen
				break
			}
			if r == '\n' {
				s.line++
			}
			quoted.WriteRune(r)

		case stateQuoteSeen:
			switch {
			case r == '"':
				// Doubled quote: escaped literal quote, span continues.
				quoted.WriteRune('"')
				st = stateQuoted
			case r == s.sep:
				return emit(), FieldSep, nil
			case r == '\n':
				s.line++
				return emit(), EndOfRow, nil
			default:
				// Span closed. Text from here to the field boundary is
				// discarded because the quoted content wins.
				st = stateUnquoted
				raw.WriteRune(r)
			}
		}
	}
}
