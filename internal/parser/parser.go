// Package parser reads rows of CSV fields from a character stream.
// It drives the field scanner across the input, groups fields into
// rows, and skips blank rows.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/rowset/tidycsv/internal/scanner"
)

// ParseError reports a structural parse failure with the 1-indexed
// line on which the failing row started.
type ParseError struct {
	Line int
	Err  error
}

// Error returns the formatted message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads rows from a single input stream. It owns the stream
// for the duration of the calls made on it and holds no state shared
// with other Parser values.
type Parser struct {
	sc   *scanner.Scanner
	done bool
}

// New returns a Parser reading rows from r, split on sep.
func New(r io.Reader, sep rune) *Parser {
	return &Parser{sc: scanner.New(r, sep)}
}

// ReadAll reads rows until end of input. Blank rows are skipped;
// every returned row has at least one field.
//
// A structural failure is returned as a *ParseError. I/O failures
// from the underlying stream are propagated unchanged. In both cases
// the rows read before the failure are returned alongside the error.
func (p *Parser) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := p.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

// Read returns the next non-blank row, or io.EOF when the input is
// exhausted.
func (p *Parser) Read() ([]string, error) {
	for {
		row, err := p.readRow()
		if err != nil {
			return nil, err
		}
		if row != nil {
			return row, nil
		}
	}
}

// readRow reads one physical row. It returns nil fields (and nil
// error) for a blank row so Read can keep scanning.
func (p *Parser) readRow() ([]string, error) {
	if p.done {
		return nil, io.EOF
	}

	startLine := p.sc.Line()
	var fields []string
	sawQuote := false

	for {
		f, boundary, err := p.sc.Next()
		if err != nil {
			p.done = true
			if errors.Is(err, scanner.ErrUnterminatedQuote) {
				return nil, &ParseError{Line: startLine, Err: err}
			}
			return nil, err
		}

		fields = append(fields, f.Value)
		if f.Quoted {
			sawQuote = true
		}

		switch boundary {
		case scanner.FieldSep:
			continue
		case scanner.EndOfRow, scanner.EndOfInput:
			if boundary == scanner.EndOfInput {
				p.done = true
			}
			// A lone empty unquoted field is an empty line, not a
			// one-field row.
			if len(fields) == 1 && fields[0] == "" && !sawQuote {
				return nil, nil
			}
			return fields, nil
		}
	}
}
