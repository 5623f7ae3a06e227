// Package csv provides configurable options for CSV reading, writing,
// and tidy formatting.
package csv

import "unicode/utf8"

// DefaultCandidates is the separator candidate set used by detection
// when the caller supplies none. Order is priority order: earlier
// candidates win ties.
var DefaultCandidates = []rune{',', ';', ':', '\t'}

// ReaderOptions configures CSV reading.
type ReaderOptions struct {
	// Separator is the field separator. Default: ','
	Separator rune

	// Candidates is the ordered separator candidate set consulted by
	// separator detection. It is ignored by plain reads.
	// Default: ',', ';', ':', '\t'
	Candidates []rune
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Separator:  ',',
		Candidates: DefaultCandidates,
	}
}

// WriterOptions configures CSV writing.
type WriterOptions struct {
	// Separator is the field separator. Default: ','
	Separator rune

	// LineTerminator separates rows in the output. No terminator is
	// appended after the final row. Default: "\n"
	LineTerminator string
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		Separator:      ',',
		LineTerminator: "\n",
	}
}

// TidyOptions configures tidy (column-aligned) writing.
type TidyOptions struct {
	// Separator is the field separator. Default: ','
	Separator rune

	// LineTerminator separates rows in the output. Default: "\n"
	LineTerminator string
}

// DefaultTidyOptions returns the default tidy-writer configuration.
func DefaultTidyOptions() TidyOptions {
	return TidyOptions{
		Separator:      ',',
		LineTerminator: "\n",
	}
}

// validSeparator reports whether r can serve as a field separator.
func validSeparator(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the reader options are valid.
func (o ReaderOptions) Validate() error {
	if !validSeparator(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid separator"}
	}
	for _, c := range o.Candidates {
		if !validSeparator(c) {
			return &OptionsError{Field: "Candidates", Message: "invalid candidate separator"}
		}
	}
	return nil
}

// Validate checks if the writer options are valid.
func (o WriterOptions) Validate() error {
	if !validSeparator(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid separator"}
	}
	return nil
}

// Validate checks if the tidy-writer options are valid.
func (o TidyOptions) Validate() error {
	if !validSeparator(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid separator"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
