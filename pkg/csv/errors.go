// Package csv provides error types for CSV parsing.
package csv

import (
	"github.com/rowset/tidycsv/internal/parser"
	"github.com/rowset/tidycsv/internal/scanner"
)

// ErrUnterminatedQuote indicates a quoted field that never closes
// before end of input. It is surfaced wrapped in a *ParseError; match
// it with errors.Is.
var ErrUnterminatedQuote = scanner.ErrUnterminatedQuote

// ParseError reports a structural parse failure with the 1-indexed
// line on which the failing row started.
//
// I/O failures from the underlying stream are never wrapped in a
// ParseError; they are propagated unchanged.
type ParseError = parser.ParseError
