// Package csv provides row rendering to delimited text.
package csv

import (
	"io"
	"strings"
	"unicode"
)

// Format renders rows as CSV text with the default options.
//
// A field is quoted only when it contains the separator, a quote, a
// newline, a carriage return, or whitespace at either edge that an
// unquoted read would strip. Embedded quotes are doubled. Rows are
// joined by the line terminator with nothing appended after the last
// row.
//
// Example:
//
//	csv.Format([][]string{{"a", `"b"`, "c"}})
//	// a,"""b""",c
func Format(rows [][]string) string {
	return FormatWithOptions(rows, DefaultWriterOptions())
}

// FormatWithOptions renders rows as CSV text with custom options.
func FormatWithOptions(rows [][]string, opts WriterOptions) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(opts.LineTerminator)
		}
		renderRow(&sb, row, opts.Separator)
	}
	return sb.String()
}

// WriteAll renders rows to w with the default options.
func WriteAll(w io.Writer, rows [][]string) error {
	return WriteAllWithOptions(w, rows, DefaultWriterOptions())
}

// WriteAllWithOptions renders rows to w with custom options. Write
// failures from w are returned unchanged.
func WriteAllWithOptions(w io.Writer, rows [][]string, opts WriterOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	_, err := io.WriteString(w, FormatWithOptions(rows, opts))
	return err
}

// renderRow renders one row, fields joined by sep.
func renderRow(sb *strings.Builder, row []string, sep rune) {
	for i, field := range row {
		if i > 0 {
			sb.WriteRune(sep)
		}
		sb.WriteString(renderField(field, sep, len(row) == 1))
	}
}

// renderField returns the field as written: quoted and escaped when
// needed, verbatim otherwise. An empty field that is the only field
// on its row is quoted so the row survives a round trip instead of
// reading back as a blank line.
func renderField(field string, sep rune, soleField bool) string {
	if !fieldNeedsQuotes(field, sep, soleField) {
		return field
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range field {
		if r == '"' {
			sb.WriteString(`""`)
			continue
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}

// fieldNeedsQuotes reports whether a field must be quoted to read
// back with the same value.
func fieldNeedsQuotes(field string, sep rune, soleField bool) bool {
	if field == "" {
		return soleField
	}
	if strings.ContainsRune(field, sep) || strings.ContainsAny(field, "\"\n\r") {
		return true
	}
	// Edge whitespace would be stripped on read.
	return field != strings.TrimFunc(field, unicode.IsSpace)
}
